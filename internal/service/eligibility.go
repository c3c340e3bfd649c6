package service

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
)

// EligibilityEvaluator derives the checkout state for a cart. The output
// is recomputed on demand from the cart and the current settings; nothing
// here is stored.
type EligibilityEvaluator interface {
	Evaluate(ctx context.Context, cart *model.Cart) (model.Eligibility, error)
}

// EligibilityService implements EligibilityEvaluator against the stored
// order settings, falling back to defaults when none are stored or the
// settings store is unreachable.
type EligibilityService struct {
	settings repository.SettingsRepositoryInterface
}

// NewEligibilityService creates a new eligibility service.
func NewEligibilityService(settings repository.SettingsRepositoryInterface) *EligibilityService {
	return &EligibilityService{settings: settings}
}

// Evaluate loads the current thresholds and computes eligibility.
func (s *EligibilityService) Evaluate(ctx context.Context, cart *model.Cart) (model.Eligibility, error) {
	settings := model.DefaultOrderSettings()
	if stored, err := s.settings.GetActive(ctx); err == nil && stored != nil {
		settings = *stored
	}
	return EvaluateEligibility(cart, settings), nil
}

// EvaluateEligibility is the pure evaluation. State precedence: an empty
// cart beats everything, value beats contact, and a known out-of-radius
// distance disables checkout regardless of state. An unknown distance is
// neutral and never blocks.
func EvaluateEligibility(cart *model.Cart, settings model.OrderSettings) model.Eligibility {
	elig := model.Eligibility{
		State: CheckoutStateOf(cart, settings),
	}
	if cart == nil {
		elig.DeliveryProgressPct = 0
		elig.FreeDeliveryRemaining = settings.FreeDeliveryThreshold
		return elig
	}

	total := cart.Total()
	elig.Total = total
	elig.CheckoutEnabled = elig.State == model.CheckoutEligible

	if elig.State == model.CheckoutBelowMinimum {
		elig.Shortfall = settings.MinOrderAmount - total
	}

	if settings.FreeDeliveryThreshold > 0 {
		if total >= settings.FreeDeliveryThreshold {
			elig.FreeDelivery = true
			elig.DeliveryProgressPct = 100
		} else {
			elig.DeliveryProgressPct = total / settings.FreeDeliveryThreshold * 100
			elig.FreeDeliveryRemaining = settings.FreeDeliveryThreshold - total
		}
	}

	if cart.Customer.DistanceKnown() {
		elig.DistanceKnown = true
		if settings.ServiceRadiusKm > 0 && cart.Customer.DistanceKm > settings.ServiceRadiusKm {
			elig.OutOfServiceArea = true
			elig.CheckoutEnabled = false
		}
	}

	return elig
}

// CheckoutStateOf derives the value-and-contact state for a cart.
func CheckoutStateOf(cart *model.Cart, settings model.OrderSettings) model.CheckoutState {
	if cart == nil || cart.Total() <= 0 {
		return model.CheckoutEmpty
	}
	if cart.Total() < settings.MinOrderAmount {
		return model.CheckoutBelowMinimum
	}
	if !cart.Customer.HasContact() {
		return model.CheckoutMissingContact
	}
	return model.CheckoutEligible
}
