// Package smtp implements email.EmailSender over a plain SMTP relay.
//
// The client supports three connection modes selected by Config.TLSMode:
// "starttls" (connect in the clear, upgrade before auth; port 587),
// "tls" (implicit TLS; port 465), and "plain" (no encryption; local
// development relays only). Configuration is validated in New so a broken
// relay setup fails at startup.
//
//	cfg := smtp.Config{
//		Address:     "smtp.example.com:587",
//		Username:    "mailer",
//		Password:    "app-password",
//		TLSMode:     "starttls",
//		SenderEmail: "noreply@example.com",
//	}
//
//	sender, err := smtp.New(cfg)
//	if err != nil {
//		return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Verify your account",
//		BodyHTML: body,
//		Tag:      "account_verification",
//	})
package smtp
