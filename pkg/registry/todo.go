package registry

import (
	"todo-api-backend/pkg/adapter/controller"
	"todo-api-backend/pkg/adapter/repository/todorepository"
	usecase "todo-api-backend/pkg/usecase/usecase/todo"
)

func (r *registry) NewTodoController() controller.Todo {
	repo := todorepository.NewTodoRepository(r.client)
	u := usecase.NewTodoUseCase(repo)

	return controller.NewTodoController(u)
}
