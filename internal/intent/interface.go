package intent

import (
	"context"
)

// Classifier maps an utterance to the closest intent in a catalog.
type Classifier interface {
	Classify(ctx context.Context, utterance string) (Score, error)
	Warm(ctx context.Context) error
}
