package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/logger"
	"github.com/guttosm/catering-service/internal/service"
)

// RequestLogger returns a middleware that logs HTTP request details in
// JSON format and, when a logging service is provided, persists the entry
// through the async logger.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()
		sessionID := GetSessionID(c)

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("user_agent", userAgent).
			Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if loggingService == nil {
			return
		}

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      getLogLevel(statusCode),
			Message:    "HTTP request",
			RequestID:  requestID,
			SessionID:  sessionID,
			Method:     method,
			Path:       path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         ip,
			UserAgent:  userAgent,
		}

		// Admin identity set by the JWT middleware, if any.
		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(string); ok {
				entry.UserID = id
			}
		}
		if userEmail, exists := c.Get("user_email"); exists {
			if email, ok := userEmail.(string); ok {
				entry.UserEmail = email
			}
		}

		if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
			asyncLogger.Log(entry)
		} else {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = loggingService.CreateLog(ctx, entry)
			}()
		}
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
