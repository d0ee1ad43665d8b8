package testutil

import (
	"context"
	"fmt"
	"testing"
	"todo-api-backend/ent"
	"todo-api-backend/ent/enttest"
	"todo-api-backend/pkg/infrastructure/datastore"

	"entgo.io/ent/dialect"
	"github.com/oklog/ulid/v2"
)

// NewDBClient opens the database of the loaded config and creates the schema.
func NewDBClient(t *testing.T) *ent.Client {
	client, err := datastore.NewClient()
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		_ = client.Close()
		t.Fatalf("create schema: %v", err)
	}
	return client
}

// NewSQLiteDBClient opens a private in-memory SQLite database and creates the schema.
func NewSQLiteDBClient(t *testing.T) *ent.Client {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", ulid.Make().String())
	return enttest.Open(t, dialect.SQLite, dsn)
}

// DropAll drops all the data from database
func DropAll(t *testing.T, client *ent.Client) {
	t.Log("drop data from database")
	DropTodo(t, client)
}

// DropTodo drops all the data from todos.
func DropTodo(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.Todo.Delete().Exec(ctx)

	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}
