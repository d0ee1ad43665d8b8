package todorepository

import (
	"todo-api-backend/ent"
	"todo-api-backend/pkg/entity/model"
	ur "todo-api-backend/pkg/usecase/repository"

	"github.com/pkg/errors"
)

type todoRepository struct {
	client *ent.Client
}

func NewTodoRepository(client *ent.Client) ur.Todo {
	return &todoRepository{client}
}

// toValidationError reports the schema validator failure of an ent builder
// under the name of the field that failed.
func toValidationError(err error) (error, bool) {
	var ve *ent.ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	return model.NewValidationError(model.FieldErrors{
		ve.Name: {ve.Error()},
	}), true
}
