package controller

import (
	"context"
	"todo-api-backend/pkg/entity/model"
	usecase "todo-api-backend/pkg/usecase/usecase/todo"
)

type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Get(ctx context.Context, id model.ID) (*model.Todo, error)
	Create(ctx context.Context, payload model.TodoPayload) (*model.Todo, error)
	Update(ctx context.Context, id model.ID, payload model.TodoPayload) (*model.Todo, error)
	Delete(ctx context.Context, id model.ID) error
}

type todoController struct {
	todoUseCase usecase.Todo
}

// Create new todo controller

func NewTodoController(tu usecase.Todo) Todo {
	return &todoController{todoUseCase: tu}
}

func (tc *todoController) List(ctx context.Context) ([]*model.Todo, error) {
	return tc.todoUseCase.List(ctx)
}

func (tc *todoController) Get(ctx context.Context, id model.ID) (*model.Todo, error) {
	return tc.todoUseCase.Get(ctx, id)
}

func (tc *todoController) Create(
	ctx context.Context,
	payload model.TodoPayload,
) (*model.Todo, error) {
	return tc.todoUseCase.Create(ctx, payload)
}

func (tc *todoController) Update(
	ctx context.Context,
	id model.ID,
	payload model.TodoPayload,
) (*model.Todo, error) {
	return tc.todoUseCase.Update(ctx, id, payload)
}

func (tc *todoController) Delete(ctx context.Context, id model.ID) error {
	return tc.todoUseCase.Delete(ctx, id)
}
