package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAPIKeyAuth(t *testing.T) {
	validKeys := map[string]bool{
		"key-one": true,
		"key-two": true,
	}

	tests := []struct {
		name           string
		keys           map[string]bool
		header         string
		query          string
		expectedStatus int
	}{
		{
			name:           "disabled when no keys configured",
			keys:           nil,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid key in header",
			keys:           validKeys,
			header:         "key-one",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid key in query param",
			keys:           validKeys,
			query:          "key-two",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing key",
			keys:           validKeys,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid key",
			keys:           validKeys,
			header:         "nope",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "header wins over query",
			keys:           validKeys,
			header:         "key-one",
			query:          "nope",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.Use(APIKeyAuth(tt.keys))
			router.GET("/metrics", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			target := "/metrics"
			if tt.query != "" {
				target += "?" + APIKeyQuery + "=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
