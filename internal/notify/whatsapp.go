// Package notify hands submitted orders to the outside world: a WhatsApp
// message for the customer to send, a Kafka event for downstream systems,
// and an optional confirmation email. The ordering core never depends on
// any of these succeeding.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// WhatsAppConfig configures the WhatsApp handoff target.
type WhatsAppConfig struct {
	// BusinessPhone is the destination number in international digits
	// without a leading plus, e.g. "972501234567".
	BusinessPhone string
}

// WhatsAppBuilder renders a submitted order as a prefilled WhatsApp
// message. The customer reviews and sends it themselves; nothing is
// transmitted by the server.
type WhatsAppBuilder struct {
	cfg WhatsAppConfig
}

// NewWhatsAppBuilder creates a builder for the given configuration.
func NewWhatsAppBuilder(cfg WhatsAppConfig) *WhatsAppBuilder {
	return &WhatsAppBuilder{cfg: cfg}
}

// MessageText renders the order as plain text, one line per cart line.
func (b *WhatsAppBuilder) MessageText(order *model.Order) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "New order %s\n", order.ID)
	if order.Customer.Name != "" {
		fmt.Fprintf(&sb, "Customer: %s", order.Customer.Name)
		if order.Customer.Phone != "" {
			fmt.Fprintf(&sb, " (%s)", order.Customer.Phone)
		}
		sb.WriteString("\n")
	}
	if order.Event.TotalGuests() > 0 {
		fmt.Fprintf(&sb, "Event: %s, %d adults", order.Event.EventType, order.Event.Adults)
		if order.Event.Children > 0 {
			fmt.Fprintf(&sb, " + %d children", order.Event.Children)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, line := range order.Lines {
		fmt.Fprintf(&sb, "%d x %s — %.2f\n", line.Quantity, line.Name.Primary, line.Subtotal())
		if line.Notes != "" {
			fmt.Fprintf(&sb, "   note: %s\n", line.Notes)
		}
		if len(line.Customizations) > 0 {
			fmt.Fprintf(&sb, "   %s\n", strings.Join(line.Customizations, ", "))
		}
	}

	fmt.Fprintf(&sb, "\nTotal: %.2f\n", order.Total)

	if order.Customer.AddressText != "" {
		fmt.Fprintf(&sb, "Delivery: %s", order.Customer.AddressText)
		if order.Customer.DistanceKnown() {
			fmt.Fprintf(&sb, " (~%.0f km)", order.Customer.DistanceKm)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Link returns a wa.me deep link opening a chat with the business phone
// and the message prefilled. Empty when no business phone is configured.
func (b *WhatsAppBuilder) Link(text string) string {
	if b.cfg.BusinessPhone == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.cfg.BusinessPhone, url.QueryEscape(text))
}
