package handler

import "net/http"

// Response performs the write phase of a handler: headers, status code,
// body. Handlers return one instead of writing directly so middleware can
// wrap the write and so errors from rendering flow to the router's error
// handler instead of being half-written to the client.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc decides what a request gets. It runs against a typed context
// and returns the Response that will render the result. A nil return is a
// bug and the router answers it with an internal error.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders request failures: no matching route, a bind error, a
// Response that failed mid-write, or a recovered panic.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware decorates a handler with behavior that runs around it, like the
// session gate or request logging. The outermost middleware is the one
// registered first.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
