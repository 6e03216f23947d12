package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"conversational-assistant/config"
	_ "conversational-assistant/docs" // Swagger docs
	"conversational-assistant/internal/app"
	tgDelivery "conversational-assistant/internal/assistant/delivery/telegram"
	"conversational-assistant/internal/httpserver"
	"conversational-assistant/internal/middleware"
	"conversational-assistant/pkg/log"
	"conversational-assistant/pkg/telegram"
)

const ngrokAPIBase = "http://ngrok:4040"

// @title       Conversational Assistant API
// @description Intent-routed assistant: arithmetic, search and generative replies.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversational Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Assistant
	assistantApp, err := app.New(ctx, logger, cfg, app.Deps{})
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant: ", err)
		return
	}
	defer func() {
		if err := assistantApp.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close assistant: %v", err)
		}
	}()

	if err := assistantApp.Warm(ctx); err != nil {
		logger.Warnf(ctx, "Intent exemplars not warmed, will retry on /ready: %v", err)
	}

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantApp.UseCase, bot, tgDelivery.Config{
			HistorySize: cfg.Telegram.HistorySize,
			HistoryTTL:  cfg.Telegram.HistoryTTL,
			MaxChats:    cfg.Telegram.MaxChats,
		})
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			TelegramSecret: cfg.Telegram.SecretToken,
		},
		AssistantUseCase: assistantApp.UseCase,
		TelegramHandler:  telegramHandler,
		ReadinessCheck:   assistantApp.Ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service, auto-detecting an ngrok
// tunnel when no URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, ngrokAPIBase, defaultNgrokAttempts)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
