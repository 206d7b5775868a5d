package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebeWizard/flashcard-server/core/email"
)

func TestSendEmailParamsValidate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Verify your account",
		BodyHTML: "<p>hello</p>",
		Tag:      "account_verification",
	}

	tests := []struct {
		name    string
		mutate  func(*email.SendEmailParams)
		wantErr bool
	}{
		{
			name:    "valid params",
			mutate:  func(*email.SendEmailParams) {},
			wantErr: false,
		},
		{
			name:    "empty recipient",
			mutate:  func(p *email.SendEmailParams) { p.SendTo = "" },
			wantErr: true,
		},
		{
			name:    "recipient without domain",
			mutate:  func(p *email.SendEmailParams) { p.SendTo = "user@" },
			wantErr: true,
		},
		{
			name:    "empty subject",
			mutate:  func(p *email.SendEmailParams) { p.Subject = "" },
			wantErr: true,
		},
		{
			name:    "empty body",
			mutate:  func(p *email.SendEmailParams) { p.BodyHTML = "" },
			wantErr: true,
		},
		{
			name:    "tag is optional",
			mutate:  func(p *email.SendEmailParams) { p.Tag = "" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.mutate(&params)

			err := params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDevSenderWritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Verify your account",
		BodyHTML: "<p>click the link</p>",
		Tag:      "account_verification",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var htmlPath, jsonPath string
	for _, entry := range entries {
		switch filepath.Ext(entry.Name()) {
		case ".html":
			htmlPath = filepath.Join(dir, entry.Name())
		case ".json":
			jsonPath = filepath.Join(dir, entry.Name())
		}
		// Tag drives the filename so related emails group together.
		assert.Contains(t, entry.Name(), "account_verification")
	}
	require.NotEmpty(t, htmlPath)
	require.NotEmpty(t, jsonPath)

	body, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, "<p>click the link</p>", string(body))

	meta, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(meta, &decoded))
	assert.Equal(t, "user@example.com", decoded["send_to"])
	assert.Equal(t, "Verify your account", decoded["subject"])
	assert.Equal(t, "account_verification", decoded["tag"])
}

func TestDevSenderSanitizesFilenames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Weird / Subject: with <chars>!",
		BodyHTML: "<p>x</p>",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		assert.NotContains(t, name, "/")
		assert.NotContains(t, name, "<")
		assert.Equal(t, strings.ToLower(name), name)
	}
}

func TestDevSenderRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "not-an-email",
		Subject:  "x",
		BodyHTML: "<p>x</p>",
	})
	require.ErrorIs(t, err, email.ErrInvalidParams)

	entries, err := os.ReadDir(dir)
	if err == nil {
		assert.Empty(t, entries)
	}
}
