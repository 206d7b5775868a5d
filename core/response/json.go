package response

import (
	"encoding/json"
	"net/http"

	"github.com/WebeWizard/flashcard-server/core/handler"
)

// JSON responds 200 with v encoded as application/json. Encoding streams to
// the writer, so a marshal failure after the header is out surfaces as a
// truncated body rather than a new response.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus responds with v encoded as application/json and the given
// status. A zero status resolves to 200, or 204 when v is nil; 204 and 304
// are sent without a body per the HTTP spec.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if status == 0 {
			status = http.StatusOK
			if v == nil {
				status = http.StatusNoContent
			}
		}
		w.WriteHeader(status)

		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}

		return json.NewEncoder(w).Encode(v)
	}
}
