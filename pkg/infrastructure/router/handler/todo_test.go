package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"todo-api-backend/pkg/adapter/controller"
	"todo-api-backend/pkg/entity/model"
	"todo-api-backend/pkg/infrastructure/router/handler"
	"todo-api-backend/pkg/usecase/repository/mocks"
	usecase "todo-api-backend/pkg/usecase/usecase/todo"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*handler.TodoHandler, *mocks.MockTodo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTodo(ctrl)
	h := handler.NewTodoHandler(controller.Controller{
		Todo: controller.NewTodoController(usecase.NewTodoUseCase(repo)),
	})
	return h, repo
}

func newContext(method, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func TestTodoHandler_List(t *testing.T) {
	h, repo := setup(t)

	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	c, rec := newContext(http.MethodGet, "", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTodoHandler_Create(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		arrange func(repo *mocks.MockTodo)
		status  int
		want    string
	}{
		{
			name: "It should create a todo",
			body: `{"title": "New Todo", "is_completed": false}`,
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().
					Create(gomock.Any(), model.CreateTodoInput{Title: "New Todo"}).
					Return(&model.Todo{ID: 1, Title: "New Todo"}, nil)
			},
			status: http.StatusCreated,
			want:   `{"id": 1, "title": "New Todo", "is_completed": false}`,
		},
		{
			name:    "It should report field errors",
			body:    `{"title": ""}`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    `{"title": ["This field may not be blank."]}`,
		},
		{
			name:    "It should report a body that is not an object",
			body:    `"Todo"`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    `{"non_field_errors": ["Invalid data. Expected a dictionary, but got str."]}`,
		},
		{
			name:    "It should treat an empty body as an empty object",
			body:    ``,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    `{"title": ["This field is required."]}`,
		},
		{
			name: "It should hide database failures",
			body: `{"title": "New Todo"}`,
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, model.NewDBError(errors.New("connection refused")))
			},
			status: http.StatusInternalServerError,
			want:   `{"detail": "A server error occurred."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := setup(t)
			tt.arrange(repo)

			c, rec := newContext(http.MethodPost, tt.body, "")
			require.NoError(t, h.Create(c))
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestTodoHandler_Get(t *testing.T) {
	t.Run("It should return the todo", func(t *testing.T) {
		h, repo := setup(t)
		repo.EXPECT().Get(gomock.Any(), model.ID(1)).
			Return(&model.Todo{ID: 1, Title: "Todo 1", IsCompleted: true}, nil)

		c, rec := newContext(http.MethodGet, "", "1")
		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id": 1, "title": "Todo 1", "is_completed": true}`, rec.Body.String())
	})

	t.Run("It should answer not found without a body", func(t *testing.T) {
		h, repo := setup(t)
		repo.EXPECT().Get(gomock.Any(), model.ID(999)).Return(nil, nil)

		c, rec := newContext(http.MethodGet, "", "999")
		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("It should answer not found for an id that is not all digits", func(t *testing.T) {
		for _, id := range []string{"abc", "+1", "-1", " 1", "1.0", "١"} {
			h, _ := setup(t)

			c, rec := newContext(http.MethodGet, "", id)
			require.NoError(t, h.Get(c))
			assert.Equal(t, http.StatusNotFound, rec.Code, id)
			assert.Empty(t, rec.Body.String(), id)
		}
	})
}

func TestTodoHandler_Update(t *testing.T) {
	t.Run("It should replace the todo", func(t *testing.T) {
		h, repo := setup(t)
		repo.EXPECT().Get(gomock.Any(), model.ID(1)).Return(&model.Todo{ID: 1, Title: "Todo 1"}, nil)
		repo.EXPECT().
			Update(gomock.Any(), model.UpdateTodoInput{ID: 1, Title: "Updated Todo", IsCompleted: true}).
			Return(&model.Todo{ID: 1, Title: "Updated Todo", IsCompleted: true}, nil)

		c, rec := newContext(http.MethodPut, `{"title": "Updated Todo", "is_completed": true}`, "1")
		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id": 1, "title": "Updated Todo", "is_completed": true}`, rec.Body.String())
	})

	t.Run("It should prefer not found over a malformed body", func(t *testing.T) {
		h, repo := setup(t)
		repo.EXPECT().Get(gomock.Any(), model.ID(999)).Return(nil, nil)

		c, rec := newContext(http.MethodPut, `{"title": `, "999")
		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("It should report a malformed body of an existing todo", func(t *testing.T) {
		h, repo := setup(t)
		repo.EXPECT().Get(gomock.Any(), model.ID(1)).Return(&model.Todo{ID: 1, Title: "Todo 1"}, nil)

		c, rec := newContext(http.MethodPut, `{"title": `, "1")
		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "JSON parse error")
	})
}

func TestTodoHandler_Delete(t *testing.T) {
	t.Run("It should delete the todo", func(t *testing.T) {
		h, repo := setup(t)
		repo.EXPECT().Get(gomock.Any(), model.ID(1)).Return(&model.Todo{ID: 1}, nil)
		repo.EXPECT().Delete(gomock.Any(), model.ID(1)).Return(nil)

		c, rec := newContext(http.MethodDelete, "", "1")
		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("It should answer not found for a missing todo", func(t *testing.T) {
		h, repo := setup(t)
		repo.EXPECT().Get(gomock.Any(), model.ID(999)).Return(nil, nil)

		c, rec := newContext(http.MethodDelete, "", "999")
		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
