// Package service contains the business logic for the catering service.
package service

import "errors"

var (
	// ErrItemNotFound is returned when a catalog item id is unknown.
	ErrItemNotFound = errors.New("menu item not found")

	// ErrItemUnavailable is returned when the item exists but is not
	// currently orderable.
	ErrItemUnavailable = errors.New("menu item unavailable")

	// ErrLineNotFound is returned when a cart line id is absent from the
	// session cart.
	ErrLineNotFound = errors.New("cart line not found")

	// ErrOrderNotFound is returned when an order id is unknown.
	ErrOrderNotFound = errors.New("order not found")

	// ErrCartEmpty is returned when checkout is attempted on an empty or
	// absent cart.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrDistanceLocked is returned when a manual distance edit is
	// attempted while a resolver result holds the distance lock.
	ErrDistanceLocked = errors.New("distance is locked by a resolved address")

	// ErrBelowMinimum is returned when checkout is attempted under the
	// minimum order amount.
	ErrBelowMinimum = errors.New("order total below minimum")

	// ErrOutOfServiceArea is returned when checkout is attempted with a
	// known distance beyond the service radius.
	ErrOutOfServiceArea = errors.New("delivery address out of service area")

	// ErrMissingContact is returned when checkout is attempted without a
	// name and phone.
	ErrMissingContact = errors.New("contact details missing")

	// ErrInvalidCredentials is returned for unknown admin emails and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for malformed or expired access tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnknownEventType is returned when an admin update names an event
	// type outside the ratio table vocabulary.
	ErrUnknownEventType = errors.New("unknown event type")
)
