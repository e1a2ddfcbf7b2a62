package services

import (
	"context"
	"fmt"
	"log/slog"

	"ipe/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	appName  string
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
// appName fills WelcomeMessageEmailData.AppName when the caller leaves it empty.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, appName string, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, appName: appName, logger: logger}
}

// SendWelcomeMessage sends a welcome email using the "welcome" template and the given data.
func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome message data is nil")
	}
	msg := *data
	if msg.AppName == "" {
		msg.AppName = s.appName
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", &msg)
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	s.logger.InfoContext(ctx, "welcome email sent", "to", data.Email)
	return nil
}
