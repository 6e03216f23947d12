package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conversational-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies the message, routes it to the calculator, search or generative branch and returns the reply with routing diagnostics.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional prior turns"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Chat: invalid request: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	output := h.uc.Respond(ctx, req.toInput())
	response.OK(c, h.newChatResp(output))
}

// ChatPlain godoc
// @Summary     Send a chat message (plain contract)
// @Description Same routing as /api/v1/chat but answers with only {"response": "..."}.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional prior turns"
// @Success     200  {object} plainResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /chat [POST]
func (h *handler) ChatPlain(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.ChatPlain: invalid request: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	output := h.uc.Respond(ctx, req.toInput())
	c.JSON(http.StatusOK, plainResp{Response: output.Response})
}
