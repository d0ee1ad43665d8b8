package todorepository

import (
	"context"
	"todo-api-backend/pkg/entity/model"
)

func (r *todoRepository) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	t, err := r.client.Todo.Create().
		SetTitle(input.Title).
		SetIsCompleted(input.IsCompleted).
		Save(ctx)
	if err != nil {
		if verr, ok := toValidationError(err); ok {
			return nil, verr
		}
		return nil, model.NewDBError(err)
	}
	return t, nil
}
