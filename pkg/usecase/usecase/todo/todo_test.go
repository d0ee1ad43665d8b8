package usecase_test

import (
	"context"
	"errors"
	"testing"
	"todo-api-backend/pkg/entity/model"
	"todo-api-backend/pkg/usecase/repository/mocks"
	usecase "todo-api-backend/pkg/usecase/usecase/todo"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupMockTodo(t *testing.T) (*mocks.MockTodo, func()) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockTodo(ctrl)
	teardown := func() {
		// Finish will assert that all the expected calls were made.
		ctrl.Finish()
	}
	return mockRepo, teardown
}

func TestCreateTodo(t *testing.T) {
	mockRepo, teardown := setupMockTodo(t)

	defer teardown()

	tests := []struct {
		name    string
		payload model.TodoPayload
		arrange func()
		act     func(uc usecase.Todo, payload model.TodoPayload) (*model.Todo, error)
		assert  func(t *testing.T, todo *model.Todo, err error)
	}{
		{
			name:    "Should create todo",
			payload: model.TodoPayload{"title": "New Todo", "is_completed": false},
			arrange: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), model.CreateTodoInput{Title: "New Todo"}).
					Return(&model.Todo{ID: 3, Title: "New Todo"}, nil)
			},
			act: func(uc usecase.Todo, payload model.TodoPayload) (*model.Todo, error) {
				return uc.Create(context.Background(), payload)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.NoError(t, err, "expected no error when creating todo")
				require.NotNil(t, todo, "expected a non-nil todo")
				require.Equal(t, model.ID(3), todo.ID)
				require.Equal(t, "New Todo", todo.Title)
			},
		},
		{
			name:    "Should not create todo with an empty title",
			payload: model.TodoPayload{"title": "", "is_completed": false},
			arrange: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			act: func(uc usecase.Todo, payload model.TodoPayload) (*model.Todo, error) {
				return uc.Create(context.Background(), payload)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.Nil(t, todo)
				require.True(t, model.IsValidationError(err))
				require.Contains(t, fieldErrors(t, err), "title")
			},
		},
		{
			name:    "Should surface database errors",
			payload: model.TodoPayload{"title": "x"},
			arrange: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, model.NewDBError(errors.New("connection refused")))
			},
			act: func(uc usecase.Todo, payload model.TodoPayload) (*model.Todo, error) {
				return uc.Create(context.Background(), payload)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.Nil(t, todo)
				e, ok := model.AsError(err)
				require.True(t, ok)
				require.Equal(t, model.DBErrorCode, e.Code)
			},
		},
	}

	// Run the test cases.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.arrange()

			uc := usecase.NewTodoUseCase(mockRepo)

			todo, err := tt.act(uc, tt.payload)
			tt.assert(t, todo, err)
		})
	}
}

func TestListTodo(t *testing.T) {
	mockRepo, teardown := setupMockTodo(t)
	defer teardown()

	uc := usecase.NewTodoUseCase(mockRepo)

	t.Run("Should return todos in repository order", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]*model.Todo{
			{ID: 1, Title: "Todo 1"},
			{ID: 2, Title: "Todo 2", IsCompleted: true},
		}, nil)

		todos, err := uc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, todos, 2)
		require.Equal(t, "Todo 1", todos[0].Title)
		require.Equal(t, "Todo 2", todos[1].Title)
	})

	t.Run("Should return an empty slice when there are no todos", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		todos, err := uc.List(context.Background())
		require.NoError(t, err)
		require.NotNil(t, todos)
		require.Empty(t, todos)
	})
}

func TestGetTodo(t *testing.T) {
	mockRepo, teardown := setupMockTodo(t)
	defer teardown()

	uc := usecase.NewTodoUseCase(mockRepo)

	t.Run("Should get todo by id", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), model.ID(1)).Return(&model.Todo{ID: 1, Title: "Todo 1"}, nil)

		todo, err := uc.Get(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, "Todo 1", todo.Title)
	})

	t.Run("Should return not found for a missing todo", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), model.ID(999)).Return(nil, nil)

		todo, err := uc.Get(context.Background(), 999)
		require.Nil(t, todo)
		require.True(t, model.IsNotFoundError(err))
	})
}

func TestUpdateTodo(t *testing.T) {
	mockRepo, teardown := setupMockTodo(t)

	defer teardown()

	tests := []struct {
		name    string
		id      model.ID
		payload model.TodoPayload
		arrange func()
		assert  func(t *testing.T, todo *model.Todo, err error)
	}{
		{
			name:    "Should replace title and completion",
			id:      1,
			payload: model.TodoPayload{"title": "Updated Todo", "is_completed": true},
			arrange: func() {
				gomock.InOrder(
					mockRepo.EXPECT().Get(gomock.Any(), model.ID(1)).
						Return(&model.Todo{ID: 1, Title: "Todo 1"}, nil),
					mockRepo.EXPECT().
						Update(gomock.Any(), model.UpdateTodoInput{ID: 1, Title: "Updated Todo", IsCompleted: true}).
						Return(&model.Todo{ID: 1, Title: "Updated Todo", IsCompleted: true}, nil),
				)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.NoError(t, err)
				require.Equal(t, "Updated Todo", todo.Title)
				require.True(t, todo.IsCompleted)
			},
		},
		{
			name:    "Should return not found before looking at the payload",
			id:      999,
			payload: model.TodoPayload{"title": ""},
			arrange: func() {
				mockRepo.EXPECT().Get(gomock.Any(), model.ID(999)).Return(nil, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.Nil(t, todo)
				require.True(t, model.IsNotFoundError(err))
			},
		},
		{
			name:    "Should not update with an empty title",
			id:      1,
			payload: model.TodoPayload{"title": "", "is_completed": true},
			arrange: func() {
				mockRepo.EXPECT().Get(gomock.Any(), model.ID(1)).
					Return(&model.Todo{ID: 1, Title: "Todo 1"}, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
			},
			assert: func(t *testing.T, todo *model.Todo, err error) {
				require.Nil(t, todo)
				require.Contains(t, fieldErrors(t, err), "title")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.arrange()

			uc := usecase.NewTodoUseCase(mockRepo)

			todo, err := uc.Update(context.Background(), tt.id, tt.payload)
			tt.assert(t, todo, err)
		})
	}
}

func TestDeleteTodo(t *testing.T) {
	mockRepo, teardown := setupMockTodo(t)
	defer teardown()

	uc := usecase.NewTodoUseCase(mockRepo)

	t.Run("Should delete an existing todo", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), model.ID(1)).Return(&model.Todo{ID: 1}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), model.ID(1)).Return(nil)

		require.NoError(t, uc.Delete(context.Background(), 1))
	})

	t.Run("Should return not found for a missing todo", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), model.ID(999)).Return(nil, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		require.True(t, model.IsNotFoundError(uc.Delete(context.Background(), 999)))
	})
}
