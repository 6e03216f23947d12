package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "conversational-assistant/pkg/errors"
	"conversational-assistant/pkg/response"
	"conversational-assistant/pkg/telegram"
)

// TelegramSecret verifies the secret token Telegram echoes on every webhook
// call. It is a no-op when no secret is configured.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(telegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.telegramSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: invalid secret token from %s", c.ClientIP())
			response.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid secret token"), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
