package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english key", key: ErrKeyItemNotFound, locale: "en", expected: "Menu item not found"},
		{name: "hebrew key", key: ErrKeyItemNotFound, locale: "he", expected: "הפריט לא נמצא בתפריט"},
		{name: "empty locale falls back to english", key: ErrKeyCartEmpty, locale: "", expected: "The cart is empty"},
		{name: "unknown locale falls back to english", key: ErrKeyCartEmpty, locale: "fr", expected: "The cart is empty"},
		{name: "unknown key returns key", key: "error.nope", locale: "en", expected: "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header", header: "", expected: "en"},
		{name: "hebrew with region", header: "he-IL,he;q=0.9,en;q=0.8", expected: "he"},
		{name: "english", header: "en-US,en;q=0.9", expected: "en"},
		{name: "unsupported language", header: "fr-FR,fr;q=0.9", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestGetTranslator_Singleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}
