package usecase_test

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"todo-api-backend/pkg/entity/model"
	usecase "todo-api-backend/pkg/usecase/usecase/todo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) model.FieldErrors {
	t.Helper()
	e, ok := model.AsError(err)
	require.True(t, ok, "expected a model error, got %v", err)
	require.Equal(t, model.ValidationErrorCode, e.Code)
	return e.Fields
}

func TestValidateTodoPayload(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() model.TodoPayload
		act     func(payload model.TodoPayload) (model.CreateTodoInput, error)
		assert  func(t *testing.T, input model.CreateTodoInput, err error)
	}{
		{
			name: "Should pass when payload is valid",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": "Valid Todo", "is_completed": true}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, input model.CreateTodoInput, err error) {
				assert.Nil(t, err)
				assert.Equal(t, model.CreateTodoInput{Title: "Valid Todo", IsCompleted: true}, input)
			},
		},
		{
			name: "Should default is_completed to false",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": "No flag"}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, input model.CreateTodoInput, err error) {
				assert.Nil(t, err)
				assert.False(t, input.IsCompleted)
			},
		},
		{
			name: "Empty title",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": "", "is_completed": false}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				assert.Equal(t, []string{usecase.MsgBlank}, fieldErrors(t, err)["title"])
			},
		},
		{
			name: "Whitespace title",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": "   \t"}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				assert.Equal(t, []string{usecase.MsgBlank}, fieldErrors(t, err)["title"])
			},
		},
		{
			name: "Missing title",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"is_completed": true}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				assert.Equal(t, []string{usecase.MsgRequired}, fieldErrors(t, err)["title"])
			},
		},
		{
			name: "Null title",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": nil}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				assert.Equal(t, []string{usecase.MsgNull}, fieldErrors(t, err)["title"])
			},
		},
		{
			name: "Title of 200 characters",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": strings.Repeat("é", 200)}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, input model.CreateTodoInput, err error) {
				assert.Nil(t, err)
				assert.Equal(t, strings.Repeat("é", 200), input.Title)
			},
		},
		{
			name: "Title too long",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": strings.Repeat("A", 201)}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				assert.Equal(t, []string{usecase.MsgMaxLength}, fieldErrors(t, err)["title"])
			},
		},
		{
			name: "Title with a null character",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": "a\x00b"}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				assert.Equal(t, []string{usecase.MsgNullCharacters}, fieldErrors(t, err)["title"])
			},
		},
		{
			name: "Long title with a null character reports both",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": strings.Repeat("A", 201) + "\x00"}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				assert.Equal(t, []string{usecase.MsgMaxLength, usecase.MsgNullCharacters}, fieldErrors(t, err)["title"])
			},
		},
		{
			name: "Title is not a string",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": []any{"a"}}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				assert.Equal(t, []string{usecase.MsgInvalidString}, fieldErrors(t, err)["title"])
			},
		},
		{
			name: "Numeric title is converted",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": json.Number("42")}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, input model.CreateTodoInput, err error) {
				assert.Nil(t, err)
				assert.Equal(t, "42", input.Title)
			},
		},
		{
			name: "String booleans are coerced",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": "t", "is_completed": "Yes"}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, input model.CreateTodoInput, err error) {
				assert.Nil(t, err)
				assert.True(t, input.IsCompleted)
			},
		},
		{
			name: "Numeric booleans are coerced",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": "t", "is_completed": json.Number("0")}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, input model.CreateTodoInput, err error) {
				assert.Nil(t, err)
				assert.False(t, input.IsCompleted)
			},
		},
		{
			name: "Every invalid field is reported",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": "", "is_completed": "maybe"}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				fields := fieldErrors(t, err)
				assert.Equal(t, []string{usecase.MsgBlank}, fields["title"])
				assert.Equal(t, []string{usecase.MsgInvalidBoolean}, fields["is_completed"])
			},
		},
		{
			name: "Null is_completed",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"title": "x", "is_completed": nil}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, _ model.CreateTodoInput, err error) {
				assert.Equal(t, []string{usecase.MsgNull}, fieldErrors(t, err)["is_completed"])
			},
		},
		{
			name: "Read-only and unknown keys are ignored",
			arrange: func() model.TodoPayload {
				return model.TodoPayload{"id": json.Number("7"), "title": "x", "owner": "me"}
			},
			act: usecase.ValidateTodoPayload,
			assert: func(t *testing.T, input model.CreateTodoInput, err error) {
				assert.Nil(t, err)
				assert.Equal(t, "x", input.Title)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := tt.arrange()
			input, err := tt.act(payload)
			tt.assert(t, input, err)
		})
	}
}

func TestValidateUpdateTodoPayload(t *testing.T) {
	input, err := usecase.ValidateUpdateTodoPayload(3, model.TodoPayload{"title": " Updated Todo ", "is_completed": true})
	require.NoError(t, err)
	assert.Equal(t, model.UpdateTodoInput{ID: 3, Title: "Updated Todo", IsCompleted: true}, input)

	_, err = usecase.ValidateUpdateTodoPayload(3, model.TodoPayload{})
	assert.True(t, model.IsValidationError(err))
}

func TestValidateTodoPayload_BooleanStrings(t *testing.T) {
	tests := []struct {
		values []string
		want   bool
	}{
		{values: []string{"t", "T", "y", "Y", "yes", "Yes", "YES", "true", "True", "TRUE", "on", "On", "ON", "1"}, want: true},
		{values: []string{"f", "F", "n", "N", "no", "No", "NO", "false", "False", "FALSE", "off", "Off", "OFF", "0"}, want: false},
	}

	for _, tt := range tests {
		for _, v := range tt.values {
			t.Run(v, func(t *testing.T) {
				input, err := usecase.ValidateTodoPayload(model.TodoPayload{"title": "t", "is_completed": v})
				require.NoError(t, err)
				assert.Equal(t, tt.want, input.IsCompleted)
			})
		}
	}

	for _, v := range []string{"tRuE", " yes ", "yEs", "oN", "FaLse", "true\n", ""} {
		t.Run("rejects "+strconv.Quote(v), func(t *testing.T) {
			_, err := usecase.ValidateTodoPayload(model.TodoPayload{"title": "t", "is_completed": v})
			assert.Equal(t, []string{usecase.MsgInvalidBoolean}, fieldErrors(t, err)["is_completed"])
		})
	}
}
