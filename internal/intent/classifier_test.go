package intent_test

import (
	"context"
	"errors"
	"hash/fnv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conversational-assistant/internal/embedding"
	"conversational-assistant/internal/intent"
	"conversational-assistant/pkg/log"
)

// fakeEncoder returns fixed vectors for known texts and a hash-derived
// vector for anything else.
type fakeEncoder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	vecs, err := f.EncodeBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (f *fakeEncoder) EncodeBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := f.vectors[t]; ok {
			out[i] = v
			continue
		}
		out[i] = hashVector(t)
	}
	return out, nil
}

func hashVector(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	sum := h.Sum64()
	v := make([]float32, 8)
	for i := range v {
		v[i] = float32(int((sum>>(8*i))&0xff)-128) / 128
	}
	v[7] = 1
	return v
}

func mustCatalog(t *testing.T, defs ...intent.Definition) *intent.Catalog {
	t.Helper()
	c, err := intent.NewCatalog(defs)
	require.NoError(t, err)
	return c
}

func TestClassify(t *testing.T) {
	catalog := mustCatalog(t,
		intent.Definition{Name: "math", Exemplars: []string{"calc", "sum"}},
		intent.Definition{Name: "search", Exemplars: []string{"find"}},
		intent.Definition{Name: "general", Exemplars: []string{"hi"}},
	)
	enc := &fakeEncoder{vectors: map[string][]float32{
		"calc":       {1, 0, 0},
		"sum":        {0.6, 0.8, 0},
		"find":       {0, 1, 0},
		"hi":         {0, 0, 1},
		"add 2 and 3": {0.8, 0.6, 0},
	}}
	c := intent.New(log.NewNop(), catalog, enc)

	got, err := c.Classify(context.Background(), "add 2 and 3")
	require.NoError(t, err)
	assert.Equal(t, 1, enc.calls, "utterance and exemplars share one encode call")

	assert.Equal(t, "math", got.Intent)
	assert.InDelta(t, 0.96, got.Confidence, 1e-6)
	assert.InDelta(t, 0.96, got.AllScores["math"], 1e-6)
	assert.InDelta(t, 0.6, got.AllScores["search"], 1e-6)
	assert.InDelta(t, 0.0, got.AllScores["general"], 1e-6)
	assert.Len(t, got.AllScores, 3)
}

func TestClassifyTieKeepsFirstIntent(t *testing.T) {
	same := []float32{1, 1}
	enc := &fakeEncoder{vectors: map[string][]float32{
		"a": same, "b": same, "q": same,
	}}

	first := intent.New(log.NewNop(), mustCatalog(t,
		intent.Definition{Name: "search", Exemplars: []string{"b"}},
		intent.Definition{Name: "math", Exemplars: []string{"a"}},
	), enc)
	got, err := first.Classify(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "search", got.Intent)

	second := intent.New(log.NewNop(), mustCatalog(t,
		intent.Definition{Name: "math", Exemplars: []string{"a"}},
		intent.Definition{Name: "search", Exemplars: []string{"b"}},
	), enc)
	got, err = second.Classify(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "math", got.Intent)
}

func TestClassifyNegativeScores(t *testing.T) {
	enc := &fakeEncoder{vectors: map[string][]float32{
		"a": {-1, 0}, "b": {-0.5, -0.5}, "q": {1, 0},
	}}
	c := intent.New(log.NewNop(), mustCatalog(t,
		intent.Definition{Name: "first", Exemplars: []string{"a"}},
		intent.Definition{Name: "second", Exemplars: []string{"b"}},
	), enc)

	got, err := c.Classify(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Intent)
	assert.Less(t, got.Confidence, 0.0)
}

func TestClassifyEncoderFailure(t *testing.T) {
	enc := &fakeEncoder{err: embedding.ErrEmbedding}
	c := intent.New(log.NewNop(), intent.DefaultCatalog(), enc)

	_, err := c.Classify(context.Background(), "hello")
	assert.ErrorIs(t, err, intent.ErrClassification)
	assert.ErrorIs(t, err, embedding.ErrEmbedding)
}

func TestClassifyEmptyUtterance(t *testing.T) {
	scorer, err := embedding.New(log.NewNop(), serviceFunc(func(texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, t := range texts {
			out[i] = hashVector(t)
		}
		return out, nil
	}), 64)
	require.NoError(t, err)

	c := intent.New(log.NewNop(), intent.DefaultCatalog(), scorer)
	got, err := c.Classify(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, intent.IntentMath, got.Intent, "all scores are 0 so the first intent wins")
	assert.Zero(t, got.Confidence)
}

func TestWarm(t *testing.T) {
	enc := &fakeEncoder{}
	c := intent.New(log.NewNop(), intent.DefaultCatalog(), enc)
	require.NoError(t, c.Warm(context.Background()))
	assert.Equal(t, 1, enc.calls)

	failing := intent.New(log.NewNop(), intent.DefaultCatalog(), &fakeEncoder{err: errors.New("down")})
	assert.ErrorIs(t, failing.Warm(context.Background()), intent.ErrClassification)
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := intent.New(log.NewNop(), intent.DefaultCatalog(), &fakeEncoder{})
	a, err := c.Classify(context.Background(), "what is the news today")
	require.NoError(t, err)
	b, err := c.Classify(context.Background(), "what is the news today")
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated classification differs (-first +second):\n%s", diff)
	}
}

type serviceFunc func(texts []string) ([][]float32, error)

func (f serviceFunc) Embed(_ context.Context, texts []string) ([][]float32, error) {
	return f(texts)
}
