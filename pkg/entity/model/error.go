package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode classifies an Error for the transport layer.
type ErrorCode string

// Error codes
const (
	DBErrorCode             ErrorCode = "DB_ERROR"
	NotFoundErrorCode       ErrorCode = "NOT_FOUND"
	ValidationErrorCode     ErrorCode = "VALIDATION_ERROR"
	InvalidParamErrorCode   ErrorCode = "INVALID_PARAM"
	InternalServerErrorCode ErrorCode = "INTERNAL_SERVER_ERROR"
)

// NonFieldErrorsKey collects errors that do not belong to a single field.
const NonFieldErrorsKey = "non_field_errors"

// FieldErrors maps a field name to its human-readable error messages.
type FieldErrors map[string][]string

// Add appends msg to the messages of field.
func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// Error is the error type shared by every layer of the application.
type Error struct {
	Code    ErrorCode
	Message string
	Fields  FieldErrors
	Extra   map[string]any
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.err
}

// NewDBError returns an error raised by the database.
func NewDBError(e error) error {
	return &Error{
		Code:    DBErrorCode,
		Message: "database error",
		err:     errors.WithStack(e),
	}
}

// NewNotFoundError returns an error for a record that does not exist.
func NewNotFoundError(e error, id any) error {
	if e == nil {
		e = errors.New("record not found")
	}
	return &Error{
		Code:    NotFoundErrorCode,
		Message: "not found",
		Extra:   map[string]any{"id": id},
		err:     errors.WithStack(e),
	}
}

// NewValidationError returns an error carrying per-field messages.
func NewValidationError(fields FieldErrors) error {
	return &Error{
		Code:    ValidationErrorCode,
		Message: "invalid input",
		Fields:  fields,
	}
}

// NewInvalidParamError returns an error for a malformed request parameter.
func NewInvalidParamError(e error, extra map[string]any) error {
	return &Error{
		Code:    InvalidParamErrorCode,
		Message: "invalid parameter",
		Extra:   extra,
		err:     errors.WithStack(e),
	}
}

// NewInternalServerError returns an unexpected failure.
func NewInternalServerError(e error) error {
	return &Error{
		Code:    InternalServerErrorCode,
		Message: "internal server error",
		err:     errors.WithStack(e),
	}
}

// AsError unwraps err to an *Error if there is one in its chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNotFoundError reports whether err is a not-found error.
func IsNotFoundError(err error) bool {
	return hasCode(err, NotFoundErrorCode)
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	return hasCode(err, ValidationErrorCode)
}

func hasCode(err error, code ErrorCode) bool {
	e, ok := AsError(err)
	return ok && e.Code == code
}
