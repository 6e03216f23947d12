package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"conversational-assistant/internal/assistant"
	tgDelivery "conversational-assistant/internal/assistant/delivery/telegram"
	"conversational-assistant/internal/middleware"
	"conversational-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	middleware      middleware.Config

	// Assistant domain
	assistantUC     assistant.UseCase
	telegramHandler tgDelivery.Handler
	readiness       func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Config

	// Assistant domain
	AssistantUseCase assistant.UseCase
	TelegramHandler  tgDelivery.Handler

	// ReadinessCheck, when set, gates /ready.
	ReadinessCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	srv := &HTTPServer{
		l:               logger,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		middleware:      cfg.Middleware,
		assistantUC:     cfg.AssistantUseCase,
		telegramHandler: cfg.TelegramHandler,
		readiness:       cfg.ReadinessCheck,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Mode)
	srv.gin = gin.New()

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	switch srv.mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	case "":
		return errors.New("mode is required")
	default:
		return errors.New("mode must be debug, release or test")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant use case is required")
	}
	return nil
}
