package repositoryutil

import (
	"context"
	"todo-api-backend/ent"
)

func WithTransactionalMutation(ctx context.Context) *ent.Client {
	return ent.FromContext(ctx)
}
