package todorepository

import (
	"context"
	"todo-api-backend/ent"
	"todo-api-backend/pkg/adapter/repository/repositoryutil"
	"todo-api-backend/pkg/entity/model"
)

func (r *todoRepository) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) (*model.Todo, error) {
	var updated *model.Todo
	err := repositoryutil.WithTransaction(ctx, r.client, func(ctx context.Context) error {
		u, err := repositoryutil.WithTransactionalMutation(ctx).Todo.
			UpdateOneID(input.ID).
			SetTitle(input.Title).
			SetIsCompleted(input.IsCompleted).
			Save(ctx)
		if err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, input.ID)
		}
		if verr, ok := toValidationError(err); ok {
			return nil, verr
		}
		return nil, model.NewDBError(err)
	}
	return updated, nil
}
