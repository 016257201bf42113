package services

import (
	"context"
	"fmt"
	"log/slog"

	"translationhub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendTokenIssued notifies a user that a new API token was issued for their account.
func (s *emailService) SendTokenIssued(ctx context.Context, data *domain.TokenIssuedEmailData) error {
	if data == nil {
		return fmt.Errorf("token issued email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("token_issued", data)
	if err != nil {
		return fmt.Errorf("failed to render token_issued template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send token issued email: %w", err)
	}
	s.logger.InfoContext(ctx, "token issued email sent", "to", data.Email)
	return nil
}
