package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorCode string

const (
	ErrorInvalid  ErrorCode = "invalid"
	ErrorNotFound ErrorCode = "not_found"
	ErrorInternal ErrorCode = "internal"
)

// ServiceError is the only error type that crosses a service boundary.
// Repository and validation failures are wrapped before they reach a
// controller.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewInternalError(err error) error {
	return &ServiceError{Code: ErrorInternal, Message: err.Error()}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// validate is shared by all services; field names in error messages come
// from the json tag so callers see the name they actually sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// invalidFieldError turns a validator failure into a ValidationError naming
// the first offending field, e.g. "invalid gender value".
func invalidFieldError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		if fe.Tag() == "required" {
			return NewInvalidError("missing required field: " + fe.Field())
		}
		return NewInvalidError("invalid " + fe.Field() + " value")
	}
	return NewInvalidError("invalid request body")
}
