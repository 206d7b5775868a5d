package response

import (
	"net/http"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// Error returns a response that writes nothing and yields err to the
// dispatch loop, where the router's error handler renders it. This is how
// handlers and middleware hand failures upward without picking a wire
// format themselves.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
