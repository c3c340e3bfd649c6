package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/service"
)

// AuditLog records a domain action for audit purposes: cart mutations,
// checkouts, and admin configuration edits.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := buildAuditEntry(c, actionType, message, fields)
	entry.Level = "info"

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError records a failed domain action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := buildAuditEntry(c, actionType, message, fields)
	entry.Level = "error"
	if err != nil {
		entry.Error = err.Error()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

func buildAuditEntry(c *gin.Context, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Message:    message,
		RequestID:  GetRequestID(c),
		SessionID:  GetSessionID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

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
	return entry
}
