package binder

import "net/http"

// Binder decodes request data into v.
type Binder func(r *http.Request, v any) error
