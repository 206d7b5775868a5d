package router

import (
	"net/http"
	"runtime/debug"
)

// ServeHTTP implements http.Handler. Each request is resolved against the
// route table and executed with panic recovery, so one failing request can
// never take down the accept loop or leak into another request.
func (r *Router[C]) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ww := newResponseWriter(w)

	// Use RawPath if available to preserve URL encoding
	path := req.URL.Path
	if req.URL.RawPath != "" {
		path = req.URL.RawPath
	}
	if path == "" {
		path = "/"
	}

	// Asterisk-form and authority-form targets never hit the route table.
	if path[0] != '/' {
		ctx := r.newContext(ww, req, nil)
		r.errorHandler(ctx, ErrMalformedPath)
		return
	}

	rt, params := r.lookup(req.Method, path)
	ctx := r.newContext(ww, req, params)

	// Recover from panics to prevent server crashes
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				// Can't send an error response anymore, just log the panic
				r.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", req.URL.Path,
					"method", req.Method,
					"status", ww.Status(),
				)
			} else {
				r.errorHandler(ctx, panicErr)
			}
		}
	}()

	if rt == nil {
		r.errorHandler(ctx, ErrNotFound)
		return
	}

	fn := rt.handler
	if len(r.middlewares) > 0 {
		fn = chain(r.middlewares, fn)
	}

	response := fn(ctx)
	if response == nil {
		r.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, req); err != nil {
		r.errorHandler(ctx, err)
		return
	}
}
