// Package app assembles the assistant from configuration.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"conversational-assistant/config"
	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/assistant/usecase"
	"conversational-assistant/internal/embedding"
	"conversational-assistant/internal/generative"
	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/search"
	"conversational-assistant/pkg/customsearch"
	"conversational-assistant/pkg/duckduckgo"
	"conversational-assistant/pkg/geminiembed"
	"conversational-assistant/pkg/llmprovider"
	"conversational-assistant/pkg/log"
	"conversational-assistant/pkg/openai"
	"conversational-assistant/pkg/voyage"
)

const LogPrefixApp = "internal.app"

// App is the assistant built once at startup and shared by all transports.
type App struct {
	l          log.Logger
	UseCase    assistant.UseCase
	Classifier intent.Classifier

	mu      sync.Mutex
	warmed  bool
	closers []func() error
}

// Deps lets callers supply collaborators directly instead of building them
// from configuration. Nil fields are built from cfg.
type Deps struct {
	Embedding embedding.Service
	Search    search.Provider
	Generator assistant.Generator
}

// New builds every collaborator named by cfg and wires the use case.
func New(ctx context.Context, l log.Logger, cfg *config.Config, deps Deps) (*App, error) {
	a := &App{l: l}

	svc := deps.Embedding
	if svc == nil {
		var closer func() error
		var err error
		svc, closer, err = newEmbeddingService(ctx, cfg.Embedding)
		if err != nil {
			return nil, err
		}
		if closer != nil {
			a.closers = append(a.closers, closer)
		}
	}

	scorer, err := embedding.New(l, svc, cfg.Embedding.CacheSize)
	if err != nil {
		return nil, err
	}

	catalog, err := intent.LoadCatalog(cfg.Intent.CatalogPath)
	if err != nil {
		return nil, err
	}
	a.Classifier = intent.New(l, catalog, scorer)

	searcher := deps.Search
	if searcher == nil {
		searcher, err = newSearchProvider(ctx, cfg.Search)
		if err != nil {
			return nil, err
		}
	}

	generator := deps.Generator
	if generator == nil {
		generator, err = newGenerator(ctx, l, cfg)
		if err != nil {
			return nil, err
		}
	}

	threshold := cfg.Intent.ConfidenceThreshold
	a.UseCase = usecase.New(l, a.Classifier, searcher, generator, usecase.Config{
		ConfidenceThreshold: &threshold,
		MaxResults:          cfg.Search.MaxResults,
		ClassifyTimeout:     cfg.Assistant.ClassifyTimeout,
		BranchTimeout:       cfg.Assistant.BranchTimeout,
	})

	l.Infof(ctx, "%s: assistant ready (embedding=%s, search=%s, intents=%v)",
		LogPrefixApp, cfg.Embedding.Provider, cfg.Search.Provider, catalog.Names())
	return a, nil
}

// Warm pre-encodes the intent exemplars. It is safe to call repeatedly.
func (a *App) Warm(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.warmed {
		return nil
	}
	if err := a.Classifier.Warm(ctx); err != nil {
		return err
	}
	a.warmed = true
	return nil
}

// Ready reports whether the exemplars are encoded, warming on demand.
func (a *App) Ready(ctx context.Context) error {
	return a.Warm(ctx)
}

// Close releases collaborator connections.
func (a *App) Close() error {
	var result *multierror.Error
	for _, c := range a.closers {
		if err := c(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func newEmbeddingService(ctx context.Context, cfg config.EmbeddingConfig) (embedding.Service, func() error, error) {
	switch cfg.Provider {
	case "voyage":
		c, err := voyage.New(voyage.Config{
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			Model:     cfg.Model,
			InputType: "query",
			Timeout:   cfg.Timeout,
		})
		return c, nil, err
	case "openai":
		c, err := openai.New(openai.Config{
			APIKey:         cfg.APIKey,
			BaseURL:        cfg.BaseURL,
			EmbeddingModel: cfg.Model,
			Timeout:        cfg.Timeout,
		})
		return c, nil, err
	case "gemini":
		c, err := geminiembed.New(ctx, geminiembed.Config{APIKey: cfg.APIKey, Model: cfg.Model})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}

func newSearchProvider(ctx context.Context, cfg config.SearchConfig) (search.Provider, error) {
	switch cfg.Provider {
	case "", search.ProviderStatic:
		return search.NewStaticProvider(), nil
	case search.ProviderDuckDuckGo:
		return search.NewDuckDuckGoProvider(duckduckgo.New(cfg.Endpoint, cfg.Timeout)), nil
	case search.ProviderGoogle:
		c, err := customsearch.New(ctx, customsearch.Config{
			APIKey:   cfg.APIKey,
			EngineID: cfg.EngineID,
			Endpoint: cfg.Endpoint,
		})
		if err != nil {
			return nil, err
		}
		return search.NewGoogleProvider(c), nil
	default:
		return nil, fmt.Errorf("unknown search provider %q", cfg.Provider)
	}
}

func newGenerator(ctx context.Context, l log.Logger, cfg *config.Config) (assistant.Generator, error) {
	providers, err := llmprovider.InitializeProviders(ctx, l, &cfg.LLM)
	if err != nil {
		return nil, err
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{Timeout: cfg.LLM.Timeout}, l)

	model := generative.NewLLMModel(manager, generative.DefaultSystemPrompt)
	return generative.New(l, model, generative.Params{
		Temperature:  cfg.Generative.Temperature,
		MaxNewTokens: cfg.Generative.MaxNewTokens,
	}), nil
}
