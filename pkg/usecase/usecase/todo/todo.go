package usecase

import (
	"context"
	"todo-api-backend/pkg/entity/model"
	"todo-api-backend/pkg/usecase/repository"
)

type todoUseCase struct {
	todoRepository repository.Todo
}

type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Get(ctx context.Context, id model.ID) (*model.Todo, error)
	Create(ctx context.Context, payload model.TodoPayload) (*model.Todo, error)
	Update(ctx context.Context, id model.ID, payload model.TodoPayload) (*model.Todo, error)
	Delete(ctx context.Context, id model.ID) error
}

// This function creates new todo use case
func NewTodoUseCase(r repository.Todo) Todo {
	return &todoUseCase{todoRepository: r}
}

func (t *todoUseCase) List(ctx context.Context) ([]*model.Todo, error) {
	todos, err := t.todoRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*model.Todo{}
	}
	return todos, nil
}

func (t *todoUseCase) Get(ctx context.Context, id model.ID) (*model.Todo, error) {
	return t.lookup(ctx, id)
}

func (t *todoUseCase) Create(
	ctx context.Context,
	payload model.TodoPayload,
) (*model.Todo, error) {
	input, err := ValidateTodoPayload(payload)
	if err != nil {
		return nil, err
	}
	return t.todoRepository.Create(ctx, input)
}

// Update replaces title and completion of an existing todo. The lookup comes
// first, so a missing id is reported as not found whatever the payload holds.
func (t *todoUseCase) Update(
	ctx context.Context,
	id model.ID,
	payload model.TodoPayload,
) (*model.Todo, error) {
	if _, err := t.lookup(ctx, id); err != nil {
		return nil, err
	}

	input, err := ValidateUpdateTodoPayload(id, payload)
	if err != nil {
		return nil, err
	}
	return t.todoRepository.Update(ctx, input)
}

func (t *todoUseCase) Delete(ctx context.Context, id model.ID) error {
	if _, err := t.lookup(ctx, id); err != nil {
		return err
	}
	return t.todoRepository.Delete(ctx, id)
}

func (t *todoUseCase) lookup(ctx context.Context, id model.ID) (*model.Todo, error) {
	todo, err := t.todoRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, model.NewNotFoundError(nil, id)
	}
	return todo, nil
}
