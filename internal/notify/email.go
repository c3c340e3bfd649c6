package notify

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// EmailSender sends the optional order confirmation email. Like the
// other collaborators, failures are logged and swallowed by the caller.
type EmailSender interface {
	SendOrderConfirmation(to string, order *model.Order) error
}

// EmailConfig configures the SendGrid sender.
type EmailConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// SendGridSender implements EmailSender using SendGrid.
type SendGridSender struct {
	cfg     EmailConfig
	builder *WhatsAppBuilder
}

// NewSendGridSender creates a sender. The message body reuses the order
// summary rendered for the WhatsApp handoff.
func NewSendGridSender(cfg EmailConfig, builder *WhatsAppBuilder) *SendGridSender {
	return &SendGridSender{cfg: cfg, builder: builder}
}

// SendOrderConfirmation sends a plain-text confirmation of the order.
func (s *SendGridSender) SendOrderConfirmation(to string, order *model.Order) error {
	if s.cfg.APIKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if to == "" {
		return fmt.Errorf("recipient address is empty")
	}

	body := s.builder.MessageText(order)
	subject := fmt.Sprintf("Order %s received", order.ID)

	message := mail.NewSingleEmail(
		mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail),
		subject,
		mail.NewEmail(order.Customer.Name, to),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	client := sendgrid.NewSendClient(s.cfg.APIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", response.StatusCode, response.Body)
	}

	log.Debug().Str("order_id", order.ID).Int("status", response.StatusCode).Msg("confirmation email sent")
	return nil
}

// NoopEmailSender discards confirmations. Used when email is not
// configured.
type NoopEmailSender struct{}

// SendOrderConfirmation does nothing.
func (NoopEmailSender) SendOrderConfirmation(string, *model.Order) error { return nil }
