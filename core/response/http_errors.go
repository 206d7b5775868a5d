package response

import "net/http"

// HTTPError is the error shape the API serves: an HTTP status, a stable
// machine-readable code, a human-readable message, and optional details.
// It implements error so handlers can return one through response.Error,
// and StatusCode so the router's error handling resolves its status.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e HTTPError) Error() string { return e.Message }

// StatusCode returns the HTTP status the error maps to.
func (e HTTPError) StatusCode() int { return e.Status }

// WithMessage returns a copy with the message replaced. The catalog values
// below carry the generic status text; call sites substitute something the
// client can act on, like "email already registered".
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy with the details replaced.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns a copy carrying err under the "cause" detail key.
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = err.Error()
	e.Details = details
	return e
}

// The error catalog: one value per status this service produces, with the
// standard status text as the default message.
var (
	ErrBadRequest            = catalogError(http.StatusBadRequest, "bad_request")
	ErrUnauthorized          = catalogError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden             = catalogError(http.StatusForbidden, "forbidden")
	ErrNotFound              = catalogError(http.StatusNotFound, "not_found")
	ErrConflict              = catalogError(http.StatusConflict, "conflict")
	ErrRequestEntityTooLarge = catalogError(http.StatusRequestEntityTooLarge, "request_entity_too_large")
	ErrUnprocessableEntity   = catalogError(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrInternalServerError   = catalogError(http.StatusInternalServerError, "internal_server_error")
	ErrServiceUnavailable    = catalogError(http.StatusServiceUnavailable, "service_unavailable")
)

func catalogError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}

// byStatus maps a bare status code back to its catalog entry, for errors
// that carry a StatusCode but are not HTTPErrors themselves.
var byStatus = map[int]HTTPError{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrRequestEntityTooLarge,
	http.StatusUnprocessableEntity:   ErrUnprocessableEntity,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}
