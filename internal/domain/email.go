package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TokenIssuedEmailData holds data for the new API token notice.
type TokenIssuedEmailData struct {
	Email      string
	Name       string
	DeviceName string
	IssuedAt   string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendTokenIssued(ctx context.Context, data *TokenIssuedEmailData) error
}
