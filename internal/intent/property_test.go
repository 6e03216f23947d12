package intent_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"conversational-assistant/internal/intent"
	"conversational-assistant/pkg/log"
)

func buildCatalog(exemplars []string, intents int) (*intent.Catalog, error) {
	defs := make([]intent.Definition, intents)
	for i := range defs {
		defs[i].Name = fmt.Sprintf("intent-%d", i)
	}
	for i, e := range exemplars {
		defs[i%intents].Exemplars = append(defs[i%intents].Exemplars, e)
	}
	return intent.NewCatalog(defs)
}

func TestClassifyProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("an exemplar scores its own intent at least as high as any other", prop.ForAll(
		func(exemplars []string, pick int) bool {
			catalog, err := buildCatalog(exemplars, 3)
			if err != nil {
				return false
			}
			c := intent.New(log.NewNop(), catalog, &fakeEncoder{})

			phrase := exemplars[pick%len(exemplars)]
			owner := fmt.Sprintf("intent-%d", (pick%len(exemplars))%3)

			score, err := c.Classify(context.Background(), phrase)
			if err != nil {
				return false
			}
			for _, s := range score.AllScores {
				if s > score.AllScores[owner] {
					return false
				}
			}
			return score.Confidence >= score.AllScores[owner]
		},
		gen.SliceOfN(9, gen.Identifier()),
		gen.IntRange(0, 8),
	))

	properties.Property("confidence is the winning intent's score and the maximum", prop.ForAll(
		func(exemplars []string, utterance string) bool {
			catalog, err := buildCatalog(exemplars, 3)
			if err != nil {
				return false
			}
			c := intent.New(log.NewNop(), catalog, &fakeEncoder{})

			score, err := c.Classify(context.Background(), utterance)
			if err != nil {
				return false
			}
			if score.AllScores[score.Intent] != score.Confidence {
				return false
			}
			for _, s := range score.AllScores {
				if s > score.Confidence {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(6, gen.Identifier()),
		gen.AlphaString(),
	))

	properties.Property("classification is idempotent", prop.ForAll(
		func(utterance string) bool {
			c := intent.New(log.NewNop(), intent.DefaultCatalog(), &fakeEncoder{})
			a, errA := c.Classify(context.Background(), utterance)
			b, errB := c.Classify(context.Background(), utterance)
			return errA == nil && errB == nil && reflect.DeepEqual(a, b)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
