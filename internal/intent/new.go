package intent

import (
	"conversational-assistant/internal/embedding"
	"conversational-assistant/pkg/log"
)

// SemanticClassifier scores utterances by embedding similarity to exemplars.
type SemanticClassifier struct {
	l       log.Logger
	catalog *Catalog
	encoder embedding.Encoder
}

var _ Classifier = (*SemanticClassifier)(nil)

// New creates a SemanticClassifier. The catalog is shared read-only.
func New(l log.Logger, catalog *Catalog, encoder embedding.Encoder) *SemanticClassifier {
	return &SemanticClassifier{
		l:       l,
		catalog: catalog,
		encoder: encoder,
	}
}
