package todorepository

import (
	"context"
	"todo-api-backend/ent"
	"todo-api-backend/ent/todo"
	"todo-api-backend/pkg/entity/model"
)

func (r *todoRepository) Get(ctx context.Context, id model.ID) (*model.Todo, error) {
	res, err := r.client.Todo.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *todoRepository) List(ctx context.Context) ([]*model.Todo, error) {
	todos, err := r.client.Todo.Query().
		Order(todo.ByID()).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return todos, nil
}
