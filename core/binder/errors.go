package binder

import "errors"

var (
	// ErrUnsupportedMediaType indicates a Content-Type the binder cannot decode.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrMissingContentType indicates the request has no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")

	// ErrFailedToParseJSON indicates a body that is not valid JSON for the target.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrRequestTooLarge indicates a body above the binder's size limit.
	ErrRequestTooLarge = errors.New("request body too large")
)
