package postmark

// Config holds Postmark API credentials and sender identity.
// SupportEmail is optional and falls back to SenderEmail for Reply-To.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
	SenderEmail  string `env:"POSTMARK_SENDER,required"`
	SupportEmail string `env:"POSTMARK_SUPPORT"`
}
