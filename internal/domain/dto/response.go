package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response payload.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"item_id: must not be empty"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// SuggestionResponse is the suggestion endpoint payload.
type SuggestionResponse struct {
	ItemID   string `json:"item_id" example:"antipasti-tray"`
	Quantity int    `json:"quantity" example:"5"`
} // @name SuggestionResponse

// CartResponse is the cart snapshot returned after every mutation.
type CartResponse struct {
	SessionID string      `json:"session_id"`
	Lines     interface{} `json:"lines"`
	LineCount int         `json:"line_count" example:"3"`
	Total     float64     `json:"total" example:"430"`
} // @name CartResponse

// DeliveryStateResponse reports the session's location and distance state.
type DeliveryStateResponse struct {
	AddressText      string  `json:"address_text,omitempty"`
	ResolvedName     string  `json:"resolved_name,omitempty"`
	DistanceKm       float64 `json:"distance_km,omitempty"`
	DistanceResolved bool    `json:"distance_resolved"`
	DistanceLocked   bool    `json:"distance_locked"`
	Resolving        bool    `json:"resolving"`
} // @name DeliveryStateResponse

// CheckoutResponse is returned after a successful order submission.
type CheckoutResponse struct {
	OrderID      string      `json:"order_id"`
	Total        float64     `json:"total"`
	WhatsAppText string      `json:"whatsapp_text"`
	WhatsAppLink string      `json:"whatsapp_link,omitempty"`
	Eligibility  interface{} `json:"eligibility"`
} // @name CheckoutResponse
