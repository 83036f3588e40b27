package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/aiservice/core/binder"
	"github.com/dmitrymomot/aiservice/core/embedding"
	"github.com/dmitrymomot/aiservice/core/handler"
	"github.com/dmitrymomot/aiservice/core/response"
)

// ErrInvalidInput indicates a request body of the wrong shape.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError names the offending field. It matches ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ToHTTPError maps service and binder errors to their HTTP form.
// Errors it does not recognize are left to response.ToHTTPError.
func ToHTTPError(err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return response.ErrUnprocessableEntity.
			WithMessage(verr.Error()).
			WithDetails(map[string]any{"field": verr.Field, "reason": verr.Reason})
	case errors.Is(err, ErrInvalidInput):
		return response.ErrUnprocessableEntity.WithMessage(err.Error())
	case errors.Is(err, binder.ErrRequestTooLarge):
		return response.ErrRequestEntityTooLarge.WithMessage(err.Error())
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return response.ErrUnsupportedMediaType.WithMessage(err.Error())
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return response.ErrBadRequest.WithMessage(err.Error())
	case errors.Is(err, embedding.ErrEmbeddingBackend):
		return response.ErrInternalServerError.WithMessage("embedding failed: " + backendCause(err))
	}
	return err
}

// ErrorHandler renders errors as JSON after mapping them with ToHTTPError.
func ErrorHandler[C handler.Context](ctx C, err error) {
	response.JSONErrorHandler(ctx, ToHTTPError(err))
}

// backendCause returns the text of the errors joined to ErrEmbeddingBackend.
func backendCause(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		joined, ok := e.(interface{ Unwrap() []error })
		if !ok {
			continue
		}
		var causes []string
		for _, c := range joined.Unwrap() {
			if c != nil && c != embedding.ErrEmbeddingBackend {
				causes = append(causes, strings.ReplaceAll(c.Error(), "\n", ": "))
			}
		}
		if len(causes) > 0 {
			return strings.Join(causes, "; ")
		}
	}
	return err.Error()
}
