// Package dto defines Data Transfer Objects for HTTP request and response
// handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import "github.com/guttosm/catering-service/internal/domain/model"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidItemID is returned when item_id is missing.
	ErrInvalidItemID = &ValidationError{Field: "item_id", Message: "must not be empty"}
	// ErrInvalidGuests is returned when the guest counts are negative.
	ErrInvalidGuests = &ValidationError{Field: "guests", Message: "must not be negative"}
	// ErrInvalidDistance is returned when distance_km is negative.
	ErrInvalidDistance = &ValidationError{Field: "distance_km", Message: "must not be negative"}
)

// SuggestQuantityRequest asks for a pre-fill quantity for one menu item
// under the current event configuration.
//
// @Description Request for a guest-driven quantity suggestion
type SuggestQuantityRequest struct {
	ItemID      string            `json:"item_id" binding:"required" example:"antipasti-tray"`
	Adults      int               `json:"adults" example:"40"`
	Children    int               `json:"children,omitempty" example:"7"`
	ChildWeight float64           `json:"child_weight,omitempty" example:"0.5"`
	EventType   model.EventType   `json:"event_type" example:"brunch"`
	Hunger      model.HungerLevel `json:"hunger" example:"medium"`
} // @name SuggestQuantityRequest

// Validate performs custom validation on the request.
func (r *SuggestQuantityRequest) Validate() error {
	if r.ItemID == "" {
		return ErrInvalidItemID
	}
	if r.Adults < 0 || r.Children < 0 {
		return ErrInvalidGuests
	}
	return nil
}

// EventConfig converts the request fields into the domain configuration.
func (r *SuggestQuantityRequest) EventConfig() model.EventConfig {
	return model.EventConfig{
		Adults:      r.Adults,
		Children:    r.Children,
		ChildWeight: r.ChildWeight,
		EventType:   r.EventType,
		Hunger:      r.Hunger,
	}
}

// AddToCartRequest adds an item to the session cart. Quantity defaults
// to 1; differing notes or customizations always open a new line.
type AddToCartRequest struct {
	ItemID         string   `json:"item_id" binding:"required" example:"antipasti-tray"`
	Quantity       int      `json:"quantity" example:"2"`
	Notes          string   `json:"notes,omitempty" example:"no olives"`
	Customizations []string `json:"customizations,omitempty" example:"gluten free"`
} // @name AddToCartRequest

// Validate performs custom validation on the request.
func (r *AddToCartRequest) Validate() error {
	if r.ItemID == "" {
		return ErrInvalidItemID
	}
	return nil
}

// UpdateQuantityRequest sets a cart line to an exact quantity. Zero or
// negative removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" example:"3"`
} // @name UpdateQuantityRequest

// LocationRequest carries free-text address input. Each submission
// restarts the debounced distance resolution for the session.
type LocationRequest struct {
	Address string `json:"address" binding:"required" example:"12 Herzl St, Haifa"`
} // @name LocationRequest

// ManualDistanceRequest sets the delivery distance by hand. Rejected while
// the distance field is locked by a completed resolution.
type ManualDistanceRequest struct {
	DistanceKm float64 `json:"distance_km" example:"14"`
} // @name ManualDistanceRequest

// Validate performs custom validation on the request.
func (r *ManualDistanceRequest) Validate() error {
	if r.DistanceKm < 0 {
		return ErrInvalidDistance
	}
	return nil
}

// CheckoutRequest submits the session's cart as an order.
type CheckoutRequest struct {
	Name        string            `json:"name" binding:"required" example:"Dana Levi"`
	Phone       string            `json:"phone" binding:"required" example:"0501234567"`
	Email       string            `json:"email,omitempty" example:"dana@example.com"`
	EventType   model.EventType   `json:"event_type,omitempty" example:"brunch"`
	Adults      int               `json:"adults,omitempty" example:"40"`
	Children    int               `json:"children,omitempty" example:"7"`
	Hunger      model.HungerLevel `json:"hunger,omitempty" example:"medium"`
} // @name CheckoutRequest

// UpsertMenuItemRequest creates or replaces a catalog entry (admin).
type UpsertMenuItemRequest struct {
	Item model.MenuItem `json:"item" binding:"required"`
} // @name UpsertMenuItemRequest

// Validate performs custom validation on the request.
func (r *UpsertMenuItemRequest) Validate() error {
	if r.Item.ID == "" {
		return ErrInvalidItemID
	}
	if r.Item.Price < 0 {
		return &ValidationError{Field: "item.price", Message: "must not be negative"}
	}
	if !r.Item.Category.Valid() {
		return &ValidationError{Field: "item.category", Message: "unknown category"}
	}
	if r.Item.ServesMin > 0 && r.Item.ServesMax > 0 && r.Item.ServesMin > r.Item.ServesMax {
		return &ValidationError{Field: "item.serves_min", Message: "must not exceed serves_max"}
	}
	return nil
}

// UpdateRatiosRequest replaces the ratio row for one event type (admin).
type UpdateRatiosRequest struct {
	Ratios model.CategoryRatios `json:"ratios" binding:"required"`
} // @name UpdateRatiosRequest

// UpdateHungerRequest replaces the hunger multipliers (admin).
type UpdateHungerRequest struct {
	Hunger model.HungerMultipliers `json:"hunger" binding:"required"`
} // @name UpdateHungerRequest

// UpdateSettingsRequest replaces the ordering thresholds (admin).
type UpdateSettingsRequest struct {
	MinOrderAmount        float64 `json:"min_order_amount" example:"500"`
	FreeDeliveryThreshold float64 `json:"free_delivery_threshold" example:"1500"`
	ServiceRadiusKm       float64 `json:"service_radius_km" example:"30"`
	DefaultTrayCapacity   int     `json:"default_tray_capacity" example:"10"`
} // @name UpdateSettingsRequest

// Validate performs custom validation on the request.
func (r *UpdateSettingsRequest) Validate() error {
	if r.MinOrderAmount < 0 || r.FreeDeliveryThreshold < 0 || r.ServiceRadiusKm < 0 {
		return &ValidationError{Field: "settings", Message: "thresholds must not be negative"}
	}
	if r.DefaultTrayCapacity < 1 {
		return &ValidationError{Field: "default_tray_capacity", Message: "must be at least 1"}
	}
	return nil
}
