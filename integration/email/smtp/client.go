package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/WebeWizard/flashcard-server/core/email"
)

// Client implements email.EmailSender over plain SMTP. It supports STARTTLS,
// implicit TLS, and unencrypted connections and is safe for concurrent use;
// every send opens its own connection.
type Client struct {
	config Config
	host   string
	auth   smtp.Auth
}

// New creates an SMTP-backed email sender. Configuration is validated up
// front so a misconfigured relay fails at startup, not on the first send.
func New(cfg Config) (email.EmailSender, error) {
	host, port, err := net.SplitHostPort(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: Address must be host:port", email.ErrInvalidConfig)
	}
	if p, err := strconv.Atoi(port); err != nil || p <= 0 || p > 65535 {
		return nil, fmt.Errorf("%w: Address port must be between 1 and 65535", email.ErrInvalidConfig)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: Username is required", email.ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", email.ErrInvalidConfig)
	}
	if cfg.TLSMode != "starttls" && cfg.TLSMode != "tls" && cfg.TLSMode != "plain" {
		return nil, fmt.Errorf("%w: TLSMode must be starttls, tls, or plain", email.ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" || !isValidEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.SupportEmail == "" {
		cfg.SupportEmail = cfg.SenderEmail
	} else if !isValidEmail(cfg.SupportEmail) {
		return nil, fmt.Errorf("%w: SupportEmail must be a valid email address", email.ErrInvalidConfig)
	}

	return &Client{
		config: cfg,
		host:   host,
		auth:   smtp.PlainAuth("", cfg.Username, cfg.Password, host),
	}, nil
}

// MustNewClient creates an SMTP client that panics on invalid config.
func MustNewClient(cfg Config) email.EmailSender {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements email.EmailSender. The connection strategy follows
// the configured TLS mode.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	message := c.buildMessage(params)

	var err error
	switch c.config.TLSMode {
	case "tls":
		err = c.sendWithTLS(params.SendTo, message)
	case "starttls":
		err = c.sendWithSTARTTLS(params.SendTo, message)
	case "plain":
		err = c.sendPlain(params.SendTo, message)
	}
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	return nil
}

// buildMessage assembles the MIME message. Headers are written in a fixed
// order so messages are reproducible.
func (c *Client) buildMessage(params email.SendEmailParams) []byte {
	messageID := fmt.Sprintf("<%d.%s@%s>",
		time.Now().UnixNano(),
		strings.ReplaceAll(params.Tag, " ", "_"),
		c.host,
	)

	var message strings.Builder
	writeHeader := func(key, value string) {
		message.WriteString(key)
		message.WriteString(": ")
		message.WriteString(value)
		message.WriteString("\r\n")
	}
	writeHeader("From", c.config.SenderEmail)
	writeHeader("To", params.SendTo)
	writeHeader("Reply-To", c.config.SupportEmail)
	writeHeader("Subject", params.Subject)
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", messageID)
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/html; charset="UTF-8"`)
	message.WriteString("\r\n")
	message.WriteString(params.BodyHTML)

	return []byte(message.String())
}

// sendWithTLS connects over implicit TLS.
func (c *Client) sendWithTLS(recipient string, message []byte) error {
	conn, err := tls.Dial("tcp", c.config.Address, &tls.Config{ServerName: c.host})
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server with TLS: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, c.host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	return c.transact(client, recipient, message)
}

// sendWithSTARTTLS connects in the clear and upgrades before authenticating.
func (c *Client) sendWithSTARTTLS(recipient string, message []byte) error {
	client, err := smtp.Dial(c.config.Address)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.StartTLS(&tls.Config{ServerName: c.host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	return c.transact(client, recipient, message)
}

// sendPlain connects without encryption.
func (c *Client) sendPlain(recipient string, message []byte) error {
	client, err := smtp.Dial(c.config.Address)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = client.Close() }()

	return c.transact(client, recipient, message)
}

// transact runs the AUTH/MAIL/RCPT/DATA sequence on an open connection.
func (c *Client) transact(client *smtp.Client, recipient string, message []byte) error {
	if err := client.Auth(c.auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	if err := client.Mail(c.config.SenderEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := writer.Write(message); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	// Some servers drop the connection right after DATA; the message is
	// already accepted at that point, so Quit errors are not failures.
	_ = client.Quit()
	return nil
}

// emailRegex is a simple regex for validating email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail checks if the provided string is a valid email address.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
