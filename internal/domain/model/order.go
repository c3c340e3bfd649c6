package model

import "time"

// OrderSettings are the externally configurable ordering thresholds. They
// are injected configuration read at call time, never constants baked into
// the evaluator.
type OrderSettings struct {
	MinOrderAmount        float64   `bson:"min_order_amount" json:"min_order_amount"`
	FreeDeliveryThreshold float64   `bson:"free_delivery_threshold" json:"free_delivery_threshold"`
	ServiceRadiusKm       float64   `bson:"service_radius_km" json:"service_radius_km"`
	DefaultTrayCapacity   int       `bson:"default_tray_capacity" json:"default_tray_capacity"`
	UpdatedAt             time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedBy             string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// DefaultOrderSettings returns the thresholds used when none have been
// stored yet.
func DefaultOrderSettings() OrderSettings {
	return OrderSettings{
		MinOrderAmount:        500,
		FreeDeliveryThreshold: 1500,
		ServiceRadiusKm:       30,
		DefaultTrayCapacity:   10,
	}
}

// CheckoutState is the derived order-eligibility state.
type CheckoutState string

const (
	// CheckoutEmpty means the cart has no value; checkout is disabled.
	CheckoutEmpty CheckoutState = "empty"
	// CheckoutBelowMinimum means the total is under the minimum order.
	CheckoutBelowMinimum CheckoutState = "below_minimum"
	// CheckoutMissingContact means value is sufficient but name or phone
	// is absent; the customer may keep browsing.
	CheckoutMissingContact CheckoutState = "missing_contact"
	// CheckoutEligible means the order can be submitted.
	CheckoutEligible CheckoutState = "eligible"
)

// Eligibility is the full evaluator output consumed by the checkout
// surface. It is derived, never stored.
type Eligibility struct {
	State           CheckoutState `json:"state"`
	Total           float64       `json:"total"`
	CheckoutEnabled bool          `json:"checkout_enabled"`

	// Shortfall is minOrder - total while below the minimum, else 0.
	Shortfall float64 `json:"shortfall,omitempty"`

	// Delivery tier feedback.
	FreeDelivery          bool    `json:"free_delivery"`
	DeliveryProgressPct   float64 `json:"delivery_progress_pct"`
	FreeDeliveryRemaining float64 `json:"free_delivery_remaining,omitempty"`

	// Distance-based state. OutOfServiceArea is only set once a distance
	// is known; an unknown distance is neutral.
	DistanceKnown    bool `json:"distance_known"`
	OutOfServiceArea bool `json:"out_of_service_area"`
}

// OrderStatus tracks a submitted order through handoff.
type OrderStatus string

const (
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is the payload produced at checkout and handed to the messaging
// collaborators. The core is agnostic to the transmission channel.
type Order struct {
	ID        string                `bson:"_id" json:"id"`
	SessionID string                `bson:"session_id" json:"session_id"`
	Lines     []CartLine            `bson:"lines" json:"lines"`
	Total     float64               `bson:"total" json:"total"`
	Customer  CustomerDeliveryState `bson:"customer" json:"customer"`
	Event     EventConfig           `bson:"event,omitempty" json:"event,omitempty"`
	Status    OrderStatus           `bson:"status" json:"status"`
	CreatedAt time.Time             `bson:"created_at" json:"created_at"`
}
