package model

import "todo-api-backend/ent"

// ID identifies a Todo. It is assigned by the database on creation.
type ID = int

// Todo is the model entity for the Todo schema.
type Todo = ent.Todo

// TodoPayload is an undecoded request body for creating or replacing a todo.
// Keys map to JSON object members as decoded, values are untrusted.
type TodoPayload map[string]any

// CreateTodoInput represents a validated input for creating todos.
type CreateTodoInput struct {
	Title       string
	IsCompleted bool
}

// UpdateTodoInput represents a validated input for replacing a todo.
type UpdateTodoInput struct {
	ID          ID
	Title       string
	IsCompleted bool
}
