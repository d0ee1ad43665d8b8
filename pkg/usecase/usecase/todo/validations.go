package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"todo-api-backend/ent/schema"
	"todo-api-backend/ent/todo"
	"todo-api-backend/pkg/entity/model"
)

// Field error messages
const (
	MsgRequired       = "This field is required."
	MsgNull           = "This field may not be null."
	MsgBlank          = "This field may not be blank."
	MsgInvalidString  = "Not a valid string."
	MsgInvalidBoolean = "Must be a valid boolean."
	MsgNullCharacters = "Null characters are not allowed."
)

// MsgMaxLength is reported when the title is longer than schema.TitleMaxLen.
var MsgMaxLength = fmt.Sprintf("Ensure this field has no more than %d characters.", schema.TitleMaxLen)

// String spellings accepted for is_completed. Matching is exact.
var (
	trueValues = map[string]bool{
		"t": true, "T": true, "y": true, "Y": true,
		"yes": true, "Yes": true, "YES": true,
		"true": true, "True": true, "TRUE": true,
		"on": true, "On": true, "ON": true,
		"1": true,
	}
	falseValues = map[string]bool{
		"f": true, "F": true, "n": true, "N": true,
		"no": true, "No": true, "NO": true,
		"false": true, "False": true, "FALSE": true,
		"off": true, "Off": true, "OFF": true,
		"0": true,
	}
)

// ValidateTodoPayload checks an untrusted payload against the Todo field rules.
// Every field is checked so that all problems are reported together.
func ValidateTodoPayload(payload model.TodoPayload) (model.CreateTodoInput, error) {
	fields := model.FieldErrors{}
	input := model.CreateTodoInput{IsCompleted: todo.DefaultIsCompleted}

	if title, msgs := validateTitle(payload); len(msgs) > 0 {
		for _, msg := range msgs {
			fields.Add(todo.FieldTitle, msg)
		}
	} else {
		input.Title = title
	}

	if v, ok := payload[todo.FieldIsCompleted]; ok {
		done, msg := coerceBool(v)
		if msg != "" {
			fields.Add(todo.FieldIsCompleted, msg)
		} else {
			input.IsCompleted = done
		}
	}

	if len(fields) > 0 {
		return model.CreateTodoInput{}, model.NewValidationError(fields)
	}
	return input, nil
}

// ValidateUpdateTodoPayload validates a full replacement of the todo with id.
func ValidateUpdateTodoPayload(id model.ID, payload model.TodoPayload) (model.UpdateTodoInput, error) {
	in, err := ValidateTodoPayload(payload)
	if err != nil {
		return model.UpdateTodoInput{}, err
	}
	return model.UpdateTodoInput{ID: id, Title: in.Title, IsCompleted: in.IsCompleted}, nil
}

// validateTitle returns the cleaned title, or every message that applies to it.
func validateTitle(payload model.TodoPayload) (string, []string) {
	v, ok := payload[todo.FieldTitle]
	if !ok {
		return "", []string{MsgRequired}
	}

	var title string
	switch t := v.(type) {
	case nil:
		return "", []string{MsgNull}
	case string:
		title = t
	case json.Number:
		title = t.String()
	case float64:
		title = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return "", []string{MsgInvalidString}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return "", []string{MsgBlank}
	}

	var msgs []string
	if utf8.RuneCountInString(title) > schema.TitleMaxLen {
		msgs = append(msgs, MsgMaxLength)
	}
	if strings.ContainsRune(title, 0) {
		msgs = append(msgs, MsgNullCharacters)
	}
	if len(msgs) > 0 {
		return "", msgs
	}
	return title, nil
}

func coerceBool(v any) (bool, string) {
	switch b := v.(type) {
	case nil:
		return false, MsgNull
	case bool:
		return b, ""
	case string:
		if trueValues[b] {
			return true, ""
		}
		if falseValues[b] {
			return false, ""
		}
	case json.Number:
		if f, err := b.Float64(); err == nil {
			return numberToBool(f)
		}
	case float64:
		return numberToBool(b)
	}
	return false, MsgInvalidBoolean
}

func numberToBool(f float64) (bool, string) {
	switch f {
	case 1:
		return true, ""
	case 0:
		return false, ""
	}
	return false, MsgInvalidBoolean
}
