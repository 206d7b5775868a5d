package auth

import "errors"

var (
	// ErrInvalidEmail rejects addresses that cannot receive a verification
	// email.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPassword rejects passwords outside the 8-72 byte range
	// bcrypt can hash.
	ErrInvalidPassword = errors.New("password must be between 8 and 72 bytes")

	// ErrEmailTaken means an account with that email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrVerificationInvalid means the email/token pair does not match a
	// pending verification or the token expired.
	ErrVerificationInvalid = errors.New("verification token is invalid or expired")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotVerified means the account exists but has not completed email
	// verification.
	ErrNotVerified = errors.New("account is not verified")

	// ErrSessionInvalid means the session token is unknown or expired.
	ErrSessionInvalid = errors.New("session is invalid or expired")
)
