package binder

import "net/http"

// Binder binds data from an HTTP request into a Go value.
type Binder func(r *http.Request, v any) error
