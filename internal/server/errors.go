package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-optimizer/internal/optimizer"
	"github.com/jonathan/cv-optimizer/internal/parsing"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a missing resource
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error. Model
// failures map to 502 even when they wrap a parsing error.
func HTTPStatus(err error) int {
	var (
		apiErr      *optimizer.APICallError
		replyErr    *optimizer.ParseError
		headerErr   *parsing.HeaderError
		kindErr     *parsing.UnknownKindError
		validErr    *ErrValidation
		fieldErrs   validator.ValidationErrors
		notFoundErr *ErrNotFound
		tooLargeErr *http.MaxBytesError
	)
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &apiErr), errors.As(err, &replyErr):
		return http.StatusBadGateway
	case errors.As(err, &headerErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &kindErr), errors.As(err, &validErr), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
