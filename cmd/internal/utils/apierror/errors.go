package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"stickynotes/cmd/internal/domain/entity"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// StructuredError carries field-level validation problems, keyed by the
// request field name.
type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

// Has reports whether field has at least one problem.
func (s *StructuredError) Has(field string) bool {
	return len(s.Errors[field]) > 0
}

var (
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed request body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	NotFoundError       = NewSimple(http.StatusNotFound, "Resource not found")

	/*
	 * Used for the admin surface
	 */
	UnauthorizedError      = NewSimple(http.StatusUnauthorized, "Missing or invalid admin token")
	ForbiddenError         = NewSimple(http.StatusForbidden, "Superuser access required")
	ExportUnavailableError = NewSimple(http.StatusServiceUnavailable, "Snapshot export is not configured")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required", "notblank":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "category":
			problems[field] = append(problems[field], "Value must be one of: "+joinValues(entity.Categories))
		case "priority":
			problems[field] = append(problems[field], "Value must be one of: "+joinValues(entity.Priorities))
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "))

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
