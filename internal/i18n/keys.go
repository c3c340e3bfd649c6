// Package i18n provides internationalization support for the catering
// service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid admin credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyItemNotFound indicates an unknown menu item id.
	ErrKeyItemNotFound = "error.item_not_found"
	// ErrKeyItemUnavailable indicates the item cannot currently be ordered.
	ErrKeyItemUnavailable = "error.item_unavailable"
	// ErrKeyLineNotFound indicates an unknown cart line id.
	ErrKeyLineNotFound = "error.line_not_found"
	// ErrKeyDistanceLocked indicates the distance field is resolver-locked.
	ErrKeyDistanceLocked = "error.distance_locked"
	// ErrKeyBelowMinimum indicates the cart total is under the minimum order.
	ErrKeyBelowMinimum = "error.below_minimum"
	// ErrKeyMissingContact indicates name or phone is absent at submit time.
	ErrKeyMissingContact = "error.missing_contact"
	// ErrKeyCartEmpty indicates checkout was attempted with an empty cart.
	ErrKeyCartEmpty = "error.cart_empty"
	// ErrKeyUnknownEventType indicates an event type outside the ratio table.
	ErrKeyUnknownEventType = "error.unknown_event_type"
)

// Informational message translation keys.
const (
	// MsgKeyOutOfServiceArea is the distance-based delivery disclaimer.
	MsgKeyOutOfServiceArea = "message.out_of_service_area"
	// MsgKeyResolutionFailed asks the customer to enter a distance manually.
	MsgKeyResolutionFailed = "message.resolution_failed"
	// SuccessKeyOrderSubmitted indicates successful order submission.
	SuccessKeyOrderSubmitted = "success.order_submitted"
)
