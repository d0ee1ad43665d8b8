package handler

import (
	"net/http"
	"todo-api-backend/pkg/adapter/controller"

	"github.com/labstack/echo/v4"
)

// TodoHandler serves the collection and item endpoints of todos.
type TodoHandler struct {
	todo controller.Todo
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(ctrl controller.Controller) *TodoHandler {
	return &TodoHandler{todo: ctrl.Todo}
}

// List returns every todo ordered by id.
func (h *TodoHandler) List(c echo.Context) error {
	todos, err := h.todo.List(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Create validates the body and stores a new todo.
func (h *TodoHandler) Create(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return HandleError(c, err)
	}

	todo, err := h.todo.Create(c.Request().Context(), payload)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

// Get returns the todo with the id of the path.
func (h *TodoHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return HandleError(c, err)
	}

	todo, err := h.todo.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Update replaces title and completion of the todo with the id of the path.
func (h *TodoHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return HandleError(c, err)
	}

	payload, err := decodePayload(c)
	if err != nil {
		// A missing todo takes precedence over an unreadable body.
		if _, lookupErr := h.todo.Get(ctx, id); lookupErr != nil {
			return HandleError(c, lookupErr)
		}
		return HandleError(c, err)
	}

	todo, err := h.todo.Update(ctx, id, payload)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete removes the todo with the id of the path.
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return HandleError(c, err)
	}

	if err := h.todo.Delete(c.Request().Context(), id); err != nil {
		return HandleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
