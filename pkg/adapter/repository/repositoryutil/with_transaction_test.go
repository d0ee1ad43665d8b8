package repositoryutil_test

import (
	"context"
	"errors"
	"testing"
	"todo-api-backend/pkg/adapter/repository/repositoryutil"
	"todo-api-backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test")
	}

	client := testutil.NewSQLiteDBClient(t)
	defer client.Close()
	ctx := context.Background()

	t.Run("It should commit when fn succeeds", func(t *testing.T) {
		defer testutil.DropTodo(t, client)

		err := repositoryutil.WithTransaction(ctx, client, func(ctx context.Context) error {
			_, err := repositoryutil.WithTransactionalMutation(ctx).Todo.Create().SetTitle("kept").Save(ctx)
			return err
		})
		require.NoError(t, err)

		n, err := client.Todo.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("It should roll back when fn fails", func(t *testing.T) {
		defer testutil.DropTodo(t, client)
		failure := errors.New("failure")

		err := repositoryutil.WithTransaction(ctx, client, func(ctx context.Context) error {
			if _, err := repositoryutil.WithTransactionalMutation(ctx).Todo.Create().SetTitle("dropped").Save(ctx); err != nil {
				return err
			}
			return failure
		})
		assert.ErrorIs(t, err, failure)

		n, err := client.Todo.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("It should roll back and re-panic", func(t *testing.T) {
		defer testutil.DropTodo(t, client)

		assert.Panics(t, func() {
			_ = repositoryutil.WithTransaction(ctx, client, func(ctx context.Context) error {
				_, _ = repositoryutil.WithTransactionalMutation(ctx).Todo.Create().SetTitle("dropped").Save(ctx)
				panic("boom")
			})
		})

		n, err := client.Todo.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
