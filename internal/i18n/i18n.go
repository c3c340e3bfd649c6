// Package i18n provides internationalization support for the catering
// service. It handles translation of user-facing messages and error
// messages. The storefront ships English and Hebrew tables.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale or key is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context. Checks the
// Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language (e.g. "he-IL,he;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid email or password",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.item_not_found":       "Menu item not found",
			"error.item_unavailable":     "This item is currently unavailable",
			"error.line_not_found":       "Cart line not found",
			"error.distance_locked":      "Distance was resolved from the address and cannot be edited",
			"error.below_minimum":        "Order total is below the minimum order amount",
			"error.missing_contact":      "Name and phone are required to submit an order",
			"error.cart_empty":           "The cart is empty",
			"error.unknown_event_type":   "Unknown event type",

			"message.out_of_service_area": "Delivery outside our service area is quoted separately",
			"message.resolution_failed":   "We could not locate this address, please enter the distance manually",
			"success.order_submitted":     "Order submitted successfully",
		},
		"he": {
			"error.invalid_request":      "בקשה לא תקינה",
			"error.invalid_request_body": "גוף הבקשה אינו תקין",
			"error.internal_error":       "אירעה שגיאה בלתי צפויה",
			"error.unauthorized":         "אין הרשאה",
			"error.invalid_credentials":  "דוא\"ל או סיסמה שגויים",
			"error.api_key_required":     "נדרש מפתח API",
			"error.invalid_api_key":      "מפתח API שגוי",
			"error.forbidden":            "הגישה נדחתה",
			"error.not_found":            "לא נמצא",
			"error.rate_limit_exceeded":  "יותר מדי בקשות, נסו שוב מאוחר יותר",
			"error.invalid_token":        "אסימון לא תקין או שפג תוקפו",
			"error.token_required":       "נדרש אסימון הזדהות",
			"error.item_not_found":       "הפריט לא נמצא בתפריט",
			"error.item_unavailable":     "הפריט אינו זמין כעת",
			"error.line_not_found":       "השורה לא נמצאה בסל",
			"error.distance_locked":      "המרחק חושב מהכתובת ואינו ניתן לעריכה",
			"error.below_minimum":        "סכום ההזמנה נמוך ממינימום ההזמנה",
			"error.missing_contact":      "נדרשים שם וטלפון לשליחת הזמנה",
			"error.cart_empty":           "הסל ריק",
			"error.unknown_event_type":   "סוג אירוע לא מוכר",

			"message.out_of_service_area": "משלוח מחוץ לאזור השירות מתומחר בנפרד",
			"message.resolution_failed":   "לא הצלחנו לאתר את הכתובת, נא להזין מרחק ידנית",
			"success.order_submitted":     "ההזמנה נשלחה בהצלחה",
		},
	}
}
