//go:generate mockgen -source=todo.go -destination=./mocks/todo_repository_mock.go -package=mocks
package repository

import (
	"context"
	"todo-api-backend/pkg/entity/model"
)

// Todo is an interface of repository
//
// Get returns a nil Todo and a nil error when no record has the given id.
type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Get(ctx context.Context, id model.ID) (*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Update(ctx context.Context, input model.UpdateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id model.ID) error
}
