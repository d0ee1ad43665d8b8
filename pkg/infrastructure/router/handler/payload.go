package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"todo-api-backend/pkg/entity/model"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// payloadAPI keeps numbers as json.Number so that validation sees what the
// client sent.
var payloadAPI = sonic.Config{
	EscapeHTML:       true,
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
	UseNumber:        true,
}.Froze()

// decodePayload reads the request body as a JSON object. An empty body is an
// empty object.
func decodePayload(c echo.Context) (model.TodoPayload, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, nonFieldError(fmt.Sprintf("JSON parse error - %v", err))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return model.TodoPayload{}, nil
	}

	var v interface{}
	if err := payloadAPI.Unmarshal(body, &v); err != nil {
		return nil, nonFieldError(fmt.Sprintf("JSON parse error - %v", err))
	}

	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, nonFieldError(fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", typeName(v)))
	}
	return model.TodoPayload(obj), nil
}

func nonFieldError(msg string) error {
	return model.NewValidationError(model.FieldErrors{
		model.NonFieldErrorsKey: {msg},
	})
}

func typeName(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "NoneType"
	case bool:
		return "bool"
	case string:
		return "str"
	case []interface{}:
		return "list"
	case json.Number:
		if _, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return "int"
		}
		return "float"
	case float64:
		if !strings.ContainsAny(strconv.FormatFloat(t, 'g', -1, 64), ".e") {
			return "int"
		}
		return "float"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// pathID accepts only plain ASCII digits, so signs and spaces never reach
// strconv.
func pathID(c echo.Context) (model.ID, error) {
	raw := c.Param("id")
	if !isDigits(raw) {
		return 0, model.NewInvalidParamError(fmt.Errorf("id %q is not a number", raw), map[string]any{"id": raw})
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewInvalidParamError(err, map[string]any{"id": raw})
	}
	return model.ID(id), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
