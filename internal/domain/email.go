package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// AcaraCreatedEmailData holds data for the "event created" notification.
type AcaraCreatedEmailData struct {
	Email        string
	AcaraName    string
	Tanggal      time.Time
	Tempat       string
	IsFree       bool
	Harga        string // already formatted for display
	DashboardURL string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendAcaraCreated(ctx context.Context, data *AcaraCreatedEmailData) error
}
