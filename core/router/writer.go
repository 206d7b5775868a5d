package router

import "net/http"

// responseWriter wraps the underlying http.ResponseWriter so dispatch can
// tell whether a handler already committed a response. Error handling and
// panic recovery branch on that: once the status line is out, the only safe
// move is to log, never to write a second response.
type responseWriter struct {
	http.ResponseWriter
	status  int
	bytes   int64
	written bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

// Written reports whether the status line has been sent.
func (w *responseWriter) Written() bool { return w.written }

// Status returns the committed status code, or zero before the first write.
func (w *responseWriter) Status() int { return w.status }

// BytesWritten returns how much body has been sent so far.
func (w *responseWriter) BytesWritten() int64 { return w.bytes }

func (w *responseWriter) WriteHeader(status int) {
	if w.written {
		return
	}
	w.status = status
	w.written = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Flush passes through so streaming responses keep working behind the wrap.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
