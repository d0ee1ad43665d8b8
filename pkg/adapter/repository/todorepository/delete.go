package todorepository

import (
	"context"
	"todo-api-backend/ent"
	"todo-api-backend/pkg/entity/model"
)

func (r *todoRepository) Delete(ctx context.Context, id model.ID) error {
	if err := r.client.Todo.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return model.NewNotFoundError(err, id)
		}
		return model.NewDBError(err)
	}
	return nil
}
