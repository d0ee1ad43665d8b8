package handler

import (
	"fmt"
	"net/http"
	"todo-api-backend/pkg/entity/model"
	"todo-api-backend/pkg/infrastructure/router/middleware"

	"github.com/labstack/echo/v4"
)

// HandleError writes the response for err.
//
// Validation errors answer 400 with the field mapping, missing records and
// unparseable ids answer 404 with no body, everything else is logged and
// answers 500.
func HandleError(c echo.Context, err error) error {
	e, ok := model.AsError(err)
	if !ok {
		e, _ = model.AsError(model.NewInternalServerError(err))
	}

	switch e.Code {
	case model.ValidationErrorCode:
		return c.JSON(http.StatusBadRequest, e.Fields)
	case model.NotFoundErrorCode, model.InvalidParamErrorCode:
		return c.NoContent(http.StatusNotFound)
	default:
		// %+v prints the stack recorded by github.com/pkg/errors.
		middleware.Logger(c).Errorw("request failed", "code", e.Code, "error", fmt.Sprintf("%+v", e.Unwrap()))
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"detail": "A server error occurred.",
		})
	}
}
