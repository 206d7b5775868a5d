package auth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/WebeWizard/flashcard-server/core/email"
	"github.com/WebeWizard/flashcard-server/core/logger"
	"github.com/WebeWizard/flashcard-server/integration/database/pg"
	"github.com/WebeWizard/flashcard-server/pkg/webeid"
)

const (
	insertAccountSQL = `INSERT INTO accounts (id, email, secret, verified, verify_token, verify_expires, created_at)
		VALUES ($1, $2, $3, FALSE, $4, $5, $6)`
	deleteAccountSQL = `DELETE FROM accounts WHERE id = $1`
	verifyAccountSQL = `UPDATE accounts SET verified = TRUE, verify_token = NULL, verify_expires = NULL
		WHERE email = $1 AND verify_token = $2 AND verify_expires > $3 AND NOT verified`
	selectCredentialsSQL = `SELECT id, secret, verified FROM accounts WHERE email = $1`

	insertSessionSQL = `INSERT INTO sessions (token, account_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)`
	deleteSessionSQL = `DELETE FROM sessions WHERE token = $1`
	selectSessionSQL = `SELECT token, account_id, expires_at, created_at FROM sessions WHERE token = $1`
)

// Manager implements the account lifecycle on Postgres: signup with email
// verification, login/logout sessions, and the session validation the auth
// gate runs on every protected request.
type Manager struct {
	pool       *pgxpool.Pool
	ids        *webeid.Generator
	sender     email.EmailSender
	log        *slog.Logger
	sessionTTL time.Duration
	verifyTTL  time.Duration
	bcryptCost int
	verifyURL  string
	now        func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger for account events.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithSessionTTL sets how long login sessions stay valid.
func WithSessionTTL(ttl time.Duration) ManagerOption {
	return func(m *Manager) {
		if ttl > 0 {
			m.sessionTTL = ttl
		}
	}
}

// WithVerifyTTL sets how long verification tokens stay valid.
func WithVerifyTTL(ttl time.Duration) ManagerOption {
	return func(m *Manager) {
		if ttl > 0 {
			m.verifyTTL = ttl
		}
	}
}

// WithBcryptCost sets the bcrypt cost for new password hashes.
func WithBcryptCost(cost int) ManagerOption {
	return func(m *Manager) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			m.bcryptCost = cost
		}
	}
}

// WithVerificationURL sets the page the verification email links to.
func WithVerificationURL(u string) ManagerOption {
	return func(m *Manager) {
		if u != "" {
			m.verifyURL = u
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates an account manager over the given pool. IDs come from
// the shared generator; verification emails go out through sender.
func NewManager(pool *pgxpool.Pool, ids *webeid.Generator, sender email.EmailSender, opts ...ManagerOption) *Manager {
	m := &Manager{
		pool:       pool,
		ids:        ids,
		sender:     sender,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionTTL: 30 * 24 * time.Hour,
		verifyTTL:  24 * time.Hour,
		bcryptCost: bcrypt.DefaultCost,
		verifyURL:  "http://localhost:1234/verify",
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateAccount registers a new unverified account and emails a verification
// link. The email is normalized before use; duplicates map to ErrEmailTaken.
func (m *Manager) CreateAccount(ctx context.Context, emailAddr, password string) (Account, error) {
	emailAddr = NormalizeEmail(emailAddr)
	if !validEmail(emailAddr) {
		return Account{}, ErrInvalidEmail
	}
	if len(password) < 8 || len(password) > 72 {
		return Account{}, ErrInvalidPassword
	}

	secret, err := bcrypt.GenerateFromPassword([]byte(password), m.bcryptCost)
	if err != nil {
		return Account{}, fmt.Errorf("hashing password: %w", err)
	}

	id, err := m.ids.Next()
	if err != nil {
		return Account{}, fmt.Errorf("minting account id: %w", err)
	}

	var (
		token   = uuid.NewString()
		now     = m.now()
		expires = now.Add(m.verifyTTL)
	)

	q := pg.QuerierFromContext(ctx, m.pool)
	if _, err := q.Exec(ctx, insertAccountSQL, id.Int64(), emailAddr, string(secret), token, expires, now); err != nil {
		if pg.IsDuplicateKeyError(err) {
			return Account{}, ErrEmailTaken
		}
		return Account{}, fmt.Errorf("inserting account: %w", err)
	}

	if err := m.sendVerificationEmail(ctx, emailAddr, token); err != nil {
		// Without the email the account can never verify, and the unique
		// constraint would block a retry. Remove the row so signup can be
		// attempted again.
		if _, derr := q.Exec(ctx, deleteAccountSQL, id.Int64()); derr != nil {
			m.log.ErrorContext(ctx, "failed to remove account after email failure",
				logger.Error(derr), logger.UserID(id.String()))
		}
		return Account{}, fmt.Errorf("sending verification email: %w", err)
	}

	m.log.InfoContext(ctx, "account created", logger.UserID(id.String()))
	return Account{ID: id, Email: emailAddr, Verified: false, CreatedAt: now}, nil
}

// VerifyAccount marks the account verified when the token matches and has
// not expired.
func (m *Manager) VerifyAccount(ctx context.Context, emailAddr, token string) error {
	emailAddr = NormalizeEmail(emailAddr)
	if emailAddr == "" || token == "" {
		return ErrVerificationInvalid
	}

	q := pg.QuerierFromContext(ctx, m.pool)
	tag, err := q.Exec(ctx, verifyAccountSQL, emailAddr, token, m.now())
	if err != nil {
		return fmt.Errorf("verifying account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVerificationInvalid
	}

	m.log.InfoContext(ctx, "account verified", logger.Event("account_verified"))
	return nil
}

// Login checks the credentials against the stored hash and opens a session.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (m *Manager) Login(ctx context.Context, emailAddr, password string) (Session, error) {
	emailAddr = NormalizeEmail(emailAddr)

	q := pg.QuerierFromContext(ctx, m.pool)

	var (
		accountID int64
		secret    string
		verified  bool
	)
	err := q.QueryRow(ctx, selectCredentialsSQL, emailAddr).Scan(&accountID, &secret, &verified)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("looking up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	if !verified {
		return Session{}, ErrNotVerified
	}

	session := Session{
		Token:     uuid.NewString(),
		AccountID: webeid.ID(accountID),
		CreatedAt: m.now(),
	}
	session.ExpiresAt = session.CreatedAt.Add(m.sessionTTL)

	if _, err := q.Exec(ctx, insertSessionSQL, session.Token, accountID, session.ExpiresAt, session.CreatedAt); err != nil {
		return Session{}, fmt.Errorf("creating session: %w", err)
	}

	m.log.InfoContext(ctx, "login", logger.UserID(session.AccountID.String()))
	return session, nil
}

// Logout deletes the session. Deleting an already-gone session is not an
// error; logout is idempotent.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrSessionInvalid
	}

	q := pg.QuerierFromContext(ctx, m.pool)
	if _, err := q.Exec(ctx, deleteSessionSQL, token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// ValidateSession resolves the token to a live session. Expired sessions are
// reaped on the way out and reported as invalid.
func (m *Manager) ValidateSession(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrSessionInvalid
	}

	q := pg.QuerierFromContext(ctx, m.pool)

	var (
		session   Session
		accountID int64
	)
	err := q.QueryRow(ctx, selectSessionSQL, token).Scan(&session.Token, &accountID, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Session{}, ErrSessionInvalid
		}
		return Session{}, fmt.Errorf("looking up session: %w", err)
	}
	session.AccountID = webeid.ID(accountID)

	if session.Expired(m.now()) {
		if _, err := q.Exec(ctx, deleteSessionSQL, token); err != nil {
			m.log.WarnContext(ctx, "failed to reap expired session", logger.Error(err))
		}
		return Session{}, ErrSessionInvalid
	}

	return session, nil
}

func (m *Manager) sendVerificationEmail(ctx context.Context, emailAddr, token string) error {
	link := fmt.Sprintf("%s?email=%s&token=%s", m.verifyURL, url.QueryEscape(emailAddr), url.QueryEscape(token))
	return m.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   emailAddr,
		Subject:  "Verify your flashcards account",
		BodyHTML: verificationEmailBody(link),
		Tag:      "account_verification",
	})
}

func verificationEmailBody(link string) string {
	return fmt.Sprintf(`<html>
<body style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
	<h2>Welcome to Flashcards</h2>
	<p>Click the link below to verify your account. The link expires, so use it soon.</p>
	<p><a href="%s">Verify my account</a></p>
	<p>If you did not sign up, you can ignore this email.</p>
</body>
</html>`, link)
}

// NormalizeEmail lowercases and trims an address so lookups and the unique
// index agree on a single form.
func NormalizeEmail(emailAddr string) string {
	return strings.ToLower(strings.TrimSpace(emailAddr))
}

// emailRegex is a simple regex for validating email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validEmail(emailAddr string) bool {
	return emailRegex.MatchString(emailAddr)
}
