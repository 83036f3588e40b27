package handler

import (
	"context"
	"net/http"
)

// Context is the request context passed to handlers. It is a context.Context
// backed by the request's own context.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Param returns a URL path parameter, or "" if absent.
	Param(key string) string
	// SetValue stores a request-scoped value readable through Value and
	// through the request's context.
	SetValue(key, val any)
}
