package postmark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebeWizard/flashcard-server/core/email"
	"github.com/WebeWizard/flashcard-server/integration/email/postmark"
)

func validConfig() postmark.Config {
	return postmark.Config{
		ServerToken:  "server-token",
		AccountToken: "account-token",
		SenderEmail:  "sender@example.com",
		SupportEmail: "support@example.com",
	}
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*postmark.Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*postmark.Config) {},
		},
		{
			name:    "missing server token",
			mutate:  func(c *postmark.Config) { c.ServerToken = "" },
			wantErr: true,
			errMsg:  "ServerToken is required",
		},
		{
			name:    "missing account token",
			mutate:  func(c *postmark.Config) { c.AccountToken = "" },
			wantErr: true,
			errMsg:  "AccountToken is required",
		},
		{
			name:    "invalid sender email",
			mutate:  func(c *postmark.Config) { c.SenderEmail = "nope" },
			wantErr: true,
			errMsg:  "SenderEmail must be a valid email address",
		},
		{
			name:   "empty support email falls back to sender",
			mutate: func(c *postmark.Config) { c.SupportEmail = "" },
		},
		{
			name:    "invalid support email",
			mutate:  func(c *postmark.Config) { c.SupportEmail = "bad@" },
			wantErr: true,
			errMsg:  "SupportEmail must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			client, err := postmark.New(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, client)
				assert.ErrorIs(t, err, email.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestMustNewClientPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		postmark.MustNewClient(postmark.Config{})
	})
}

func TestSendEmailValidatesParams(t *testing.T) {
	t.Parallel()

	client, err := postmark.New(validConfig())
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), email.SendEmailParams{
		SendTo: "not-an-email",
	})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
