package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "conversational-assistant/internal/assistant/delivery/http"
	"conversational-assistant/internal/middleware"
)

// setupAssistantDomain wires the chat handlers onto the versioned API group
// and the plain web contract onto the root group.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api, root *gin.RouterGroup, mw middleware.Middleware) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)

	assistantHTTP.RegisterRoutes(api, h, mw)
	assistantHTTP.RegisterWebRoutes(root, h, mw)

	srv.l.Infof(ctx, "Assistant routes registered at POST /api/v1/chat and POST /chat")
	return nil
}
