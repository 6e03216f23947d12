package telegram

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"conversational-assistant/internal/assistant"
	pkgLog "conversational-assistant/pkg/log"
)

const (
	DefaultHistorySize = 10
	DefaultHistoryTTL  = 30 * time.Minute
	DefaultMaxChats    = 10000
)

// Handler is the public interface for the Telegram webhook delivery.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the subset of the Bot API the handler needs.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendTyping(ctx context.Context, chatID int64) error
}

// Config bounds the per-chat conversation memory.
type Config struct {
	HistorySize int
	HistoryTTL  time.Duration
	MaxChats    int
}

type handler struct {
	l   pkgLog.Logger
	uc  assistant.UseCase
	bot Sender

	mu          sync.Mutex
	history     *expirable.LRU[int64, []string]
	historySize int
}

// New creates a Telegram handler. Zero config fields fall back to defaults.
func New(l pkgLog.Logger, uc assistant.UseCase, bot Sender, cfg Config) *handler {
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}
	if cfg.HistoryTTL <= 0 {
		cfg.HistoryTTL = DefaultHistoryTTL
	}
	if cfg.MaxChats <= 0 {
		cfg.MaxChats = DefaultMaxChats
	}

	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		history:     expirable.NewLRU[int64, []string](cfg.MaxChats, nil, cfg.HistoryTTL),
		historySize: cfg.HistorySize,
	}
}
