package auth

import "time"

// Config carries the account service settings read from the environment.
// VerificationURL is the SPA page the verification email links to; the email
// and token ride along as query parameters.
type Config struct {
	DatabaseURL     string        `env:"AUTH_DATABASE_URL,required"`
	SessionTTL      time.Duration `env:"AUTH_SESSION_TTL" envDefault:"720h"`
	VerifyTTL       time.Duration `env:"AUTH_VERIFY_TTL" envDefault:"24h"`
	BcryptCost      int           `env:"AUTH_BCRYPT_COST" envDefault:"10"`
	VerificationURL string        `env:"AUTH_VERIFY_URL" envDefault:"http://localhost:1234/verify"`
}
