package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/mocks"
)

func TestRequestLogger(t *testing.T) {
	t.Run("nil logging service only logs to stdout", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.Use(RequestLogger(nil))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("persists entry with session and status", func(t *testing.T) {
		mockService := new(mocks.MockLoggingService)
		mockService.On("CreateLog", mock.Anything, mock.MatchedBy(func(entry *model.LogEntry) bool {
			return entry.Method == http.MethodGet &&
				entry.Path == "/cart/sess-9" &&
				entry.SessionID == "sess-9" &&
				entry.StatusCode == http.StatusOK &&
				entry.Level == "info" &&
				entry.RequestID != ""
		})).Return(nil)

		router := gin.New()
		router.Use(RequestID())
		router.Use(RequestLogger(mockService))
		router.GET("/cart/:session", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/cart/sess-9", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		// Entry is persisted on a background goroutine
		time.Sleep(100 * time.Millisecond)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error responses are logged at error level", func(t *testing.T) {
		mockService := new(mocks.MockLoggingService)
		mockService.On("CreateLog", mock.Anything, mock.MatchedBy(func(entry *model.LogEntry) bool {
			return entry.StatusCode == http.StatusInternalServerError &&
				entry.Level == "error"
		})).Return(nil)

		router := gin.New()
		router.Use(RequestID())
		router.Use(RequestLogger(mockService))
		router.GET("/boom", func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		time.Sleep(100 * time.Millisecond)

		mockService.AssertExpectations(t)
	})
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{status: 200, want: "info"},
		{status: 302, want: "info"},
		{status: 404, want: "warn"},
		{status: 409, want: "warn"},
		{status: 500, want: "error"},
		{status: 503, want: "error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getLogLevel(tt.status), "status %d", tt.status)
	}
}
