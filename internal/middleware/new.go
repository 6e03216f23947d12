package middleware

import (
	"conversational-assistant/pkg/log"
)

// Config configures the shared HTTP middlewares.
type Config struct {
	RequestsPerMin int
	Burst          int
	AllowedOrigins []string
	TelegramSecret string
}

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	allowedOrigins []string
	telegramSecret string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		limiter:        newRateLimiter(cfg.RequestsPerMin, cfg.Burst),
		allowedOrigins: cfg.AllowedOrigins,
		telegramSecret: cfg.TelegramSecret,
	}
}
