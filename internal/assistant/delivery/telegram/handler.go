package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"conversational-assistant/internal/assistant"
	pkgLog "conversational-assistant/pkg/log"
	pkgResponse "conversational-assistant/pkg/response"
	pkgTelegram "conversational-assistant/pkg/telegram"
)

const (
	msgWelcome = "👋 Hi! I can solve arithmetic, look things up and chat.\n\n" +
		"Try: \"what is (3+4)*2\", \"search for golang generics\" or just say hello."
	msgHelp  = "Commands:\n/start - introduction\n/help - this message\n/reset - forget our conversation"
	msgReset = "Conversation history cleared."
)

// HandleWebhook acknowledges the update immediately and answers it in the
// background, since a reply may take longer than Telegram waits.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestID(ctx))

	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID

	switch msg.Text {
	case "":
		return nil
	case "/start":
		return h.bot.SendMessage(ctx, chatID, msgWelcome)
	case "/help":
		return h.bot.SendMessage(ctx, chatID, msgHelp)
	case "/reset":
		h.forget(chatID)
		return h.bot.SendMessage(ctx, chatID, msgReset)
	}

	if err := h.bot.SendTyping(ctx, chatID); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	output := h.uc.Respond(ctx, assistant.RespondInput{
		Message: msg.Text,
		Context: h.turns(chatID),
	})
	h.remember(chatID, msg.Text, output.Response)

	return h.bot.SendMessage(ctx, chatID, output.Response)
}
