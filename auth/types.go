package auth

import (
	"time"

	"github.com/WebeWizard/flashcard-server/pkg/webeid"
)

// Account is a registered user. Secret (the bcrypt hash) never leaves the
// package.
type Account struct {
	ID        webeid.ID
	Email     string
	Verified  bool
	CreatedAt time.Time
}

// Session is a login session. Token is the value clients present in the
// x-webe-token header.
type Session struct {
	Token     string
	AccountID webeid.ID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
