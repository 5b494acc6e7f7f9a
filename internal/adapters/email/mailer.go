package email

import (
	"context"
	"fmt"
	"log/slog"

	"acaradashboard/internal/domain"
)

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string // "ses" or "noop"
	FromAddress string
	FromName    string
	SES         SESConfig
	Logger      *slog.Logger
}

// NewMailer creates a mailer from config. Unknown providers fall back to noop
// with a warning so a typo never blocks event creation.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	switch config.Provider {
	case "ses":
		if config.FromAddress == "" {
			return nil, fmt.Errorf("ses mailer: from address is required")
		}
		return newSESMailer(config, logger), nil
	case "noop", "":
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown mail provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, _, _ string) error {
	n.logger.InfoContext(ctx, "email not sent (noop mailer)", "to", to, "subject", subject)
	return nil
}
