package intent

import (
	"context"
	"fmt"
	"math"

	"conversational-assistant/internal/embedding"
)

// Classify encodes the utterance and every exemplar, takes the best
// similarity per intent, and picks the highest. Equal scores keep the
// intent defined first.
func (c *SemanticClassifier) Classify(ctx context.Context, utterance string) (Score, error) {
	texts := make([]string, 0, 1+c.catalog.exemplarCount())
	texts = append(texts, utterance)
	for _, d := range c.catalog.defs {
		texts = append(texts, d.Exemplars...)
	}

	vecs, err := c.encoder.EncodeBatch(ctx, texts)
	if err != nil {
		c.l.Errorf(ctx, "%s: encode: %v", LogPrefixClassify, err)
		return Score{}, fmt.Errorf("%w: %w", ErrClassification, err)
	}
	if len(vecs) != len(texts) {
		return Score{}, fmt.Errorf("%w: encoder returned %d vectors for %d texts", ErrClassification, len(vecs), len(texts))
	}

	query := vecs[0]
	next := 1
	score := Score{AllScores: make(map[string]float64, len(c.catalog.defs))}

	for i, d := range c.catalog.defs {
		best := math.Inf(-1)
		for range d.Exemplars {
			if sim := embedding.Similarity(query, vecs[next]); sim > best {
				best = sim
			}
			next++
		}
		score.AllScores[d.Name] = best

		if i == 0 || best > score.Confidence {
			score.Intent = d.Name
			score.Confidence = best
		}
	}

	c.l.Debugf(ctx, "%s: intent=%s confidence=%.4f", LogPrefixClassify, score.Intent, score.Confidence)
	return score, nil
}

// Warm encodes every exemplar once so later requests only embed the utterance.
func (c *SemanticClassifier) Warm(ctx context.Context) error {
	texts := make([]string, 0, c.catalog.exemplarCount())
	for _, d := range c.catalog.defs {
		texts = append(texts, d.Exemplars...)
	}

	if _, err := c.encoder.EncodeBatch(ctx, texts); err != nil {
		return fmt.Errorf("%w: warm exemplars: %w", ErrClassification, err)
	}

	c.l.Infof(ctx, "%s: %d intents, %d exemplars ready", LogPrefixWarm, len(c.catalog.defs), len(texts))
	return nil
}
