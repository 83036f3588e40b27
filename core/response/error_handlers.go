package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/aiservice/core/handler"
)

// statusCode is implemented by errors that know their HTTP status.
type statusCode interface {
	StatusCode() int
}

// written is implemented by response writers that track whether a reply was sent.
type written interface {
	Written() bool
}

// ToHTTPError converts err to an HTTPError. An HTTPError anywhere in the
// chain is returned as is; otherwise the status comes from a StatusCode
// method in the chain, defaulting to 500, and err's text is kept as the cause.
func ToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base, ok := httpErrorsByStatus[status]
	if !ok {
		base = newHTTPError(status, "error")
		if base.Message == "" {
			base = ErrInternalServerError
		}
	}

	return base.WithError(err)
}

// ErrorHandler renders errors as plain text.
func ErrorHandler[C handler.Context](ctx C, err error) {
	if w, ok := ctx.ResponseWriter().(written); ok && w.Written() {
		return
	}
	httpErr := ToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler renders errors as {"code", "message", "details"} JSON.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	if w, ok := ctx.ResponseWriter().(written); ok && w.Written() {
		return
	}
	httpErr := ToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
