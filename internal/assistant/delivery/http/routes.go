package http

import (
	"github.com/gin-gonic/gin"

	"conversational-assistant/internal/middleware"
)

// RegisterRoutes maps the versioned API routes. Chat calls are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}

// RegisterWebRoutes maps the plain {message} -> {response} contract used by
// browser front-ends.
func RegisterWebRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.ChatPlain)
}
