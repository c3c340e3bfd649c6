package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/metrics"
	"github.com/guttosm/catering-service/internal/notify"
	"github.com/guttosm/catering-service/internal/repository"
)

// CheckoutResult is everything the checkout surface needs to hand the
// order off: the persisted order plus the prefilled WhatsApp message.
type CheckoutResult struct {
	Order        *model.Order
	Eligibility  model.Eligibility
	WhatsAppText string
	WhatsAppLink string
}

// CheckoutService submits carts as orders. Submission re-evaluates
// eligibility with the contact details applied, persists the order, and
// hands it to the messaging collaborators best effort.
type CheckoutService interface {
	Checkout(ctx context.Context, sessionID string, req dto.CheckoutRequest) (*CheckoutResult, error)
	// Eligibility returns the current evaluation for the session without
	// submitting anything.
	Eligibility(ctx context.Context, sessionID string) (model.Eligibility, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	carts     repository.CartRepositoryInterface
	orders    repository.OrderRepositoryInterface
	evaluator EligibilityEvaluator
	whatsapp  *notify.WhatsAppBuilder
	publisher notify.OrderPublisher
	emails    notify.EmailSender
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	carts repository.CartRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	evaluator EligibilityEvaluator,
	whatsapp *notify.WhatsAppBuilder,
	publisher notify.OrderPublisher,
	emails notify.EmailSender,
) CheckoutService {
	return &CheckoutServiceImpl{
		carts:     carts,
		orders:    orders,
		evaluator: evaluator,
		whatsapp:  whatsapp,
		publisher: publisher,
		emails:    emails,
	}
}

// Checkout validates eligibility and submits the cart as an order. The
// cart is cleared on success; the customer and delivery state survive for
// follow-up orders.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, sessionID string, req dto.CheckoutRequest) (*CheckoutResult, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil || cart.Total() <= 0 {
		metrics.RecordCheckout("empty")
		return nil, ErrCartEmpty
	}

	cart.Customer.Name = req.Name
	cart.Customer.Phone = req.Phone

	elig, err := s.evaluator.Evaluate(ctx, cart)
	if err != nil {
		return nil, err
	}
	if !elig.CheckoutEnabled {
		return nil, s.rejection(elig)
	}

	order := &model.Order{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Lines:     cart.Lines,
		Total:     cart.Total(),
		Customer:  cart.Customer,
		Event: model.EventConfig{
			Adults:    req.Adults,
			Children:  req.Children,
			EventType: req.EventType,
			Hunger:    req.Hunger,
		},
		Status:    model.OrderStatusSubmitted,
		CreatedAt: time.Now(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		metrics.RecordCheckout("error")
		return nil, err
	}

	cart.Clear()
	if err := s.carts.Save(ctx, cart); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("clear cart after checkout failed")
	}

	if err := s.publisher.PublishOrderSubmitted(order); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("publish order event failed")
	}
	if req.Email != "" {
		if err := s.emails.SendOrderConfirmation(req.Email, order); err != nil {
			log.Warn().Err(err).Str("order_id", order.ID).Msg("send confirmation email failed")
		}
	}

	text := s.whatsapp.MessageText(order)
	metrics.RecordCheckout("success")
	log.Info().
		Str("order_id", order.ID).
		Str("session_id", sessionID).
		Float64("total", order.Total).
		Msg("order submitted")

	return &CheckoutResult{
		Order:        order,
		Eligibility:  elig,
		WhatsAppText: text,
		WhatsAppLink: s.whatsapp.Link(text),
	}, nil
}

// Eligibility returns the current evaluation for the session.
func (s *CheckoutServiceImpl) Eligibility(ctx context.Context, sessionID string) (model.Eligibility, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return model.Eligibility{}, err
	}
	return s.evaluator.Evaluate(ctx, cart)
}

// rejection maps a failed evaluation to its typed error.
func (s *CheckoutServiceImpl) rejection(elig model.Eligibility) error {
	switch {
	case elig.OutOfServiceArea:
		metrics.RecordCheckout("out_of_service_area")
		return ErrOutOfServiceArea
	case elig.State == model.CheckoutBelowMinimum:
		metrics.RecordCheckout("below_minimum")
		return ErrBelowMinimum
	case elig.State == model.CheckoutMissingContact:
		metrics.RecordCheckout("missing_contact")
		return ErrMissingContact
	default:
		metrics.RecordCheckout("empty")
		return ErrCartEmpty
	}
}
