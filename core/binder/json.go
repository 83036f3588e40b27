package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSONOption configures the JSON binder.
type JSONOption func(*jsonBinder)

type jsonBinder struct {
	maxSize int64
}

// WithMaxSize sets the body size limit in bytes.
func WithMaxSize(n int64) JSONOption {
	return func(b *jsonBinder) {
		if n > 0 {
			b.maxSize = n
		}
	}
}

// JSON returns a strict JSON binder. The request must declare
// application/json, the body must fit the size limit, contain exactly one
// JSON value and no fields unknown to v. Strings are decoded verbatim.
func JSON(opts ...JSONOption) Binder {
	b := &jsonBinder{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(b)
	}
	return b.bind
}

func (b *jsonBinder) bind(r *http.Request, v any) error {
	if err := r.Context().Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
	}

	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	// Read one byte past the limit to detect oversized bodies.
	body, err := io.ReadAll(io.LimitReader(r.Body, b.maxSize+1))
	if err != nil {
		return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > b.maxSize {
		return fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, b.maxSize)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}

	return nil
}
