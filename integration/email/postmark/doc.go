// Package postmark implements email.EmailSender through Postmark's
// transactional email API.
//
// The client tracks opens and HTML link clicks and sets Reply-To to the
// configured support address. Credentials are validated in New so missing
// tokens fail at startup.
//
//	sender, err := postmark.New(postmark.Config{
//		ServerToken:  os.Getenv("POSTMARK_SERVER_TOKEN"),
//		AccountToken: os.Getenv("POSTMARK_ACCOUNT_TOKEN"),
//		SenderEmail:  "noreply@example.com",
//	})
package postmark
