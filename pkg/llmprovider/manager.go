package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conversational-assistant/pkg/log"
)

// Manager sends each request to the highest-priority provider exactly once.
// Lower-priority providers are kept for reporting only; there is no runtime
// fallback and no retry.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	// Timeout bounds a single provider call. Zero means no extra bound.
	Timeout time.Duration
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Primary returns the provider requests are sent to, or nil.
func (m *Manager) Primary() Provider {
	if len(m.providers) == 0 {
		return nil
	}
	return m.providers[0]
}

// GenerateContent makes one attempt on the primary provider.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	provider := m.Primary()
	if provider == nil {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || req.Prompt == "" {
		return nil, ErrInvalidRequest
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := provider.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", ErrProviderTimeout, err)
		}
		m.logFailure(ctx, provider, err)
		return nil, &ProviderError{Provider: provider.Name(), Err: err}
	}

	m.logSuccess(ctx, provider, resp, time.Since(start))
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response, took time.Duration) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "pkg.llmprovider.GenerateContent: provider=%s model=%s input_tokens=%d output_tokens=%d took=%s",
		provider.Name(), provider.Model(), in, out, took)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "pkg.llmprovider.GenerateContent: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
