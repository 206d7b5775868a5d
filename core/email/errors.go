package email

import "errors"

// Sentinel errors returned by senders. Providers wrap these with the
// underlying failure so callers can branch with errors.Is.
var (
	ErrFailedToSendEmail = errors.New("failed to send email")
	ErrInvalidConfig     = errors.New("invalid email configuration")
	ErrInvalidParams     = errors.New("invalid email parameters")
)
