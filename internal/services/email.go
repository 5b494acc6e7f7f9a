package services

import (
	"context"
	"fmt"
	"log"

	"acaradashboard/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendAcaraCreated notifies an owner that their event was saved, using the "acara_created" template.
func (s *emailService) SendAcaraCreated(ctx context.Context, data *domain.AcaraCreatedEmailData) error {
	if data == nil {
		return fmt.Errorf("acara created email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("acara_created", data)
	if err != nil {
		return fmt.Errorf("failed to render acara_created template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send acara created email: %w", err)
	}
	log.Printf("[EMAIL] Acara created email sent to %s", data.Email)
	return nil
}
