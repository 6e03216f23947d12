package usecase

import (
	"time"

	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/search"
	pkgLog "conversational-assistant/pkg/log"
)

// Config holds the routing policy and per-call deadlines.
// A nil ConfidenceThreshold means assistant.DefaultConfidenceThreshold; zero and
// negative thresholds are honored as given.
type Config struct {
	ConfidenceThreshold *float64
	MaxResults          int
	ClassifyTimeout     time.Duration
	BranchTimeout       time.Duration
}

type implUseCase struct {
	l          pkgLog.Logger
	classifier intent.Classifier
	searcher   search.Provider
	generator  assistant.Generator
	cfg        Config
	threshold  float64
}

// New creates the assistant use case. Unset config fields fall back to defaults.
func New(
	l pkgLog.Logger,
	classifier intent.Classifier,
	searcher search.Provider,
	generator assistant.Generator,
	cfg Config,
) assistant.UseCase {
	threshold := assistant.DefaultConfidenceThreshold
	if cfg.ConfidenceThreshold != nil {
		threshold = *cfg.ConfidenceThreshold
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = search.DefaultMaxResults
	}
	if cfg.ClassifyTimeout <= 0 {
		cfg.ClassifyTimeout = assistant.DefaultClassifyTimeout
	}
	if cfg.BranchTimeout <= 0 {
		cfg.BranchTimeout = assistant.DefaultBranchTimeout
	}

	return &implUseCase{
		l:          l,
		classifier: classifier,
		searcher:   searcher,
		generator:  generator,
		cfg:        cfg,
		threshold:  threshold,
	}
}
