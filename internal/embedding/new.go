package embedding

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"conversational-assistant/pkg/log"
)

// Scorer caches vectors per text and guards the model's dimensionality.
type Scorer struct {
	l     log.Logger
	svc   Service
	cache *lru.Cache[string, []float32]

	mu  sync.RWMutex
	dim int
}

var _ Encoder = (*Scorer)(nil)

// New creates a Scorer. cacheSize <= 0 uses DefaultCacheSize.
func New(l log.Logger, svc Service, cacheSize int) (*Scorer, error) {
	if svc == nil {
		return nil, fmt.Errorf("embedding: service is required")
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, []float32](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("embedding: create cache: %w", err)
	}

	return &Scorer{
		l:     l,
		svc:   svc,
		cache: cache,
	}, nil
}
