package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/service"
)

// JWTAuth returns a middleware that validates admin access tokens. It is
// mounted on the admin route group only; storefront routes stay anonymous.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		unauthorized := func(messageKey string) {
			message := i18n.GetTranslator().Translate(messageKey, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthorized(i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			unauthorized(i18n.ErrKeyInvalidToken)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_claims", claims)

		c.Next()
	}
}
