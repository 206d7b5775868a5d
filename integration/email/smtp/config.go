package smtp

// Config holds SMTP server configuration. Address carries host:port in a
// single value, matching how deployments hand the relay endpoint around.
// SupportEmail is optional and falls back to SenderEmail for Reply-To.
type Config struct {
	Address      string `env:"SMTP_ADDRESS,required"`
	Username     string `env:"SMTP_USER,required"`
	Password     string `env:"SMTP_PASS,required"`
	TLSMode      string `env:"SMTP_TLS_MODE" envDefault:"starttls"` // starttls, tls, or plain
	SenderEmail  string `env:"SMTP_SENDER,required"`
	SupportEmail string `env:"SMTP_SUPPORT"`
}
