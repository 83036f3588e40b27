// Package binder decodes HTTP request bodies into Go values.
//
//	var req EmbedRequest
//	if err := binder.JSON()(r, &req); err != nil {
//		// errors.Is(err, binder.ErrUnsupportedMediaType), ErrRequestTooLarge, ...
//	}
//
// The JSON binder is strict: it requires an application/json Content-Type,
// rejects unknown fields and trailing data, and limits bodies to
// DefaultMaxJSONSize unless WithMaxSize is given.
package binder
