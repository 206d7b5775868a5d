package router

import (
	"net/http"
	"time"
)

// Context is the default request context. It satisfies handler.Context by
// delegating cancellation and deadlines to the request's context, and keeps
// request-scoped values in its own map so middleware can attach data without
// re-wrapping the request.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
	values map[any]any
}

// NewContext builds a default Context. Custom context types can embed it and
// supply their own factory through WithContextFactory.
func NewContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{
		w:      w,
		r:      r,
		params: params,
	}
}

// Deadline returns the deadline of the underlying request context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns the done channel of the underlying request context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns the error of the underlying request context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns a request-scoped value set via SetValue, falling back to the
// underlying request context.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value bound to a path parameter, or "" when absent.
func (c *Context) Param(key string) string {
	return c.params[key]
}

// SetValue stores a request-scoped value retrievable through Value.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}
