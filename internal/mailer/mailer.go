package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Message is one rendered email ready for delivery.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message. Implementations report per-message
// success or failure; the caller decides how failures aggregate.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ResendSender delivers mail through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewResendSender(apiKey, from string, logger *zap.Logger) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: logger,
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Warn("Email send failed",
			zap.String("to", msg.To),
			zap.Error(err),
		)
		return fmt.Errorf("send email: %w", err)
	}

	s.logger.Info("Email sent",
		zap.String("to", msg.To),
		zap.String("message_id", sent.Id),
	)
	return nil
}
