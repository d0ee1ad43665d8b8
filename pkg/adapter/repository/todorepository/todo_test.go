package todorepository_test

import (
	"context"
	"strings"
	"testing"
	"todo-api-backend/ent"
	"todo-api-backend/pkg/adapter/repository/todorepository"
	"todo-api-backend/pkg/entity/model"
	"todo-api-backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*ent.Client, func()) {
	client := testutil.NewSQLiteDBClient(t)
	return client, func() {
		testutil.DropAll(t, client)
		_ = client.Close()
	}
}

func TestTodoRepository_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)

	tests := []struct {
		name     string
		input    model.CreateTodoInput
		assert   func(t *testing.T, got *model.Todo, err error)
		teardown func(t *testing.T)
	}{
		{
			name:  "It should create todo",
			input: model.CreateTodoInput{Title: "Test Todo"},
			assert: func(t *testing.T, got *model.Todo, err error) {
				require.NoError(t, err)
				assert.NotZero(t, got.ID)
				assert.Equal(t, "Test Todo", got.Title)
				assert.False(t, got.IsCompleted)
				assert.False(t, got.CreatedAt.IsZero())

				stored, err := repo.Get(context.Background(), got.ID)
				require.NoError(t, err)
				require.NotNil(t, stored)
				assert.Equal(t, got.Title, stored.Title)
				assert.Equal(t, got.IsCompleted, stored.IsCompleted)
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name:  "It should refuse a title over the limit",
			input: model.CreateTodoInput{Title: strings.Repeat("A", 201)},
			assert: func(t *testing.T, got *model.Todo, err error) {
				assert.Nil(t, got)
				assert.True(t, model.IsValidationError(err))

				todos, err := repo.List(context.Background())
				require.NoError(t, err)
				assert.Empty(t, todos)
			},
			teardown: func(t *testing.T) {},
		},
		{
			name:  "It should refuse an empty title",
			input: model.CreateTodoInput{Title: ""},
			assert: func(t *testing.T, got *model.Todo, err error) {
				assert.Nil(t, got)
				assert.True(t, model.IsValidationError(err))
			},
			teardown: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Create(context.Background(), tt.input)
			tt.assert(t, got, err)
			tt.teardown(t)
		})
	}
}

func TestTodoRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)
	ctx := context.Background()

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	for _, in := range []model.CreateTodoInput{
		{Title: "Todo 1"},
		{Title: "Todo 2", IsCompleted: true},
		{Title: "Todo 3"},
	} {
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	todos, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	assert.Equal(t, "Todo 1", todos[0].Title)
	assert.Equal(t, "Todo 2", todos[1].Title)
	assert.True(t, todos[1].IsCompleted)
	assert.Equal(t, "Todo 3", todos[2].Title)
	assert.Less(t, todos[0].ID, todos[1].ID)
	assert.Less(t, todos[1].ID, todos[2].ID)
}

func TestTodoRepository_Get(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)

	got, err := repo.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTodoRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateTodoInput{Title: "Todo 1"})
	require.NoError(t, err)

	t.Run("It should replace title and completion", func(t *testing.T) {
		updated, err := repo.Update(ctx, model.UpdateTodoInput{ID: created.ID, Title: "Updated Todo", IsCompleted: true})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Updated Todo", updated.Title)
		assert.True(t, updated.IsCompleted)

		stored, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated Todo", stored.Title)
		assert.True(t, stored.IsCompleted)
	})

	t.Run("It should report a missing todo", func(t *testing.T) {
		updated, err := repo.Update(ctx, model.UpdateTodoInput{ID: 999, Title: "Updated Todo"})
		assert.Nil(t, updated)
		assert.True(t, model.IsNotFoundError(err))
	})

	t.Run("It should keep the stored record on an invalid title", func(t *testing.T) {
		_, err := repo.Update(ctx, model.UpdateTodoInput{ID: created.ID, Title: ""})
		assert.True(t, model.IsValidationError(err))

		stored, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated Todo", stored.Title)
	})
}

func TestTodoRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)
	ctx := context.Background()

	first, err := repo.Create(ctx, model.CreateTodoInput{Title: "Todo 1"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, model.CreateTodoInput{Title: "Todo 2", IsCompleted: true})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, first.ID))

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, second.ID, todos[0].ID)

	assert.True(t, model.IsNotFoundError(repo.Delete(ctx, first.ID)))
}
