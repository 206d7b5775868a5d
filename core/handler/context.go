package handler

import (
	"context"
	"net/http"
)

// Context is what a handler sees of the request: the standard library
// context plus the request pair, the parameters bound by the route pattern,
// and a bag for values middleware attaches (the session gate stores the
// authenticated session through SetValue). Router implementations provide
// the concrete type; handlers stay generic over it.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
