// Package email defines the EmailSender interface the account flows send
// through, plus a development sender that writes emails to disk instead of
// delivering them.
//
// Production senders live under integration/email (SMTP and Postmark); all
// of them validate SendEmailParams the same way and wrap failures in the
// package sentinels, so callers pick a provider purely through configuration:
//
//	sender := email.NewDevSender("./dev_emails")
//
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Verify your account",
//		BodyHTML: body,
//		Tag:      "account_verification",
//	})
package email
