package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/generative"
	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/search"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockClassifier struct {
	score intent.Score
	err   error
	delay time.Duration
	calls int
}

func (m *mockClassifier) Classify(ctx context.Context, utterance string) (intent.Score, error) {
	m.calls++
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return m.score, m.err
}

func (m *mockClassifier) Warm(ctx context.Context) error { return nil }

type mockSearch struct {
	results []search.Result
	err     error
	calls   int
	gotMax  int
}

func (m *mockSearch) Search(ctx context.Context, query string, maxResults int) ([]search.Result, error) {
	m.calls++
	m.gotMax = maxResults
	return m.results, m.err
}

type mockGenerator struct {
	reply      string
	delay      time.Duration
	calls      int
	gotHistory []string
}

func (m *mockGenerator) Respond(ctx context.Context, utterance string, history []string) string {
	m.calls++
	m.gotHistory = history
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return m.reply
}

func newTestUseCase(c *mockClassifier, s *mockSearch, g *mockGenerator, cfg Config) assistant.UseCase {
	return New(&mockLogger{}, c, s, g, cfg)
}

func score(label string, confidence float64) intent.Score {
	return intent.Score{
		Intent:     label,
		Confidence: confidence,
		AllScores:  map[string]float64{label: confidence},
	}
}

var fullPath = []assistant.State{
	assistant.StateStart,
	assistant.StateClassified,
	assistant.StateDispatched,
	assistant.StateDone,
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestRespond_Math(t *testing.T) {
	c := &mockClassifier{score: score(intent.IntentMath, 0.82)}
	s := &mockSearch{}
	g := &mockGenerator{reply: "unused"}

	out := newTestUseCase(c, s, g, Config{}).Respond(context.Background(), assistant.RespondInput{Message: "what is 2+2"})

	assert.Contains(t, out.Response, "2+2 = 4")
	assert.Equal(t, assistant.BranchMath, out.Branch)
	assert.Equal(t, intent.IntentMath, out.Intent)
	assert.InDelta(t, 0.82, out.Confidence, 1e-9)
	assert.Equal(t, fullPath, out.Path)
	assert.Equal(t, 0, s.calls)
	assert.Equal(t, 0, g.calls)
}

func TestRespond_MathDivisionByZero(t *testing.T) {
	c := &mockClassifier{score: score(intent.IntentMath, 0.9)}
	out := newTestUseCase(c, &mockSearch{}, &mockGenerator{}, Config{}).
		Respond(context.Background(), assistant.RespondInput{Message: "compute 5/0"})

	assert.Contains(t, strings.ToLower(out.Response), "division by zero")
}

func TestRespond_LowConfidenceMathGoesGenerative(t *testing.T) {
	c := &mockClassifier{score: score(intent.IntentMath, 0.1)}
	g := &mockGenerator{reply: "Hello there!"}

	out := newTestUseCase(c, &mockSearch{}, g, Config{}).
		Respond(context.Background(), assistant.RespondInput{Message: "2 apples"})

	assert.Equal(t, "Hello there!", out.Response)
	assert.Equal(t, assistant.BranchGenerative, out.Branch)
	assert.Equal(t, intent.IntentMath, out.Intent)
	assert.Equal(t, 1, g.calls)
}

func TestRespond_Search(t *testing.T) {
	c := &mockClassifier{score: score(intent.IntentSearch, 0.7)}
	s := &mockSearch{results: []search.Result{{Title: "A", Snippet: "B"}}}

	out := newTestUseCase(c, s, &mockGenerator{}, Config{MaxResults: 3}).
		Respond(context.Background(), assistant.RespondInput{Message: "cats"})

	assert.Contains(t, out.Response, "1. A: B")
	assert.Contains(t, out.Response, "cats")
	assert.Equal(t, assistant.BranchSearch, out.Branch)
	assert.Equal(t, 3, s.gotMax)
}

func TestRespond_SearchFailure(t *testing.T) {
	c := &mockClassifier{score: score(intent.IntentSearch, 0.7)}
	s := &mockSearch{err: errors.New("boom")}
	g := &mockGenerator{reply: "should not be used"}

	out := newTestUseCase(c, s, g, Config{}).
		Respond(context.Background(), assistant.RespondInput{Message: "search cats"})

	assert.Equal(t, assistant.MsgSearchUnavailable, out.Response)
	assert.Equal(t, 0, g.calls, "no fallback to another handler")
	assert.Equal(t, fullPath, out.Path)
}

func TestRespond_GeneralPassesHistory(t *testing.T) {
	c := &mockClassifier{score: score(intent.IntentGeneral, 0.6)}
	g := &mockGenerator{reply: "Fine, thanks."}
	history := []string{"User: hi", "AI: hello"}

	out := newTestUseCase(c, &mockSearch{}, g, Config{}).
		Respond(context.Background(), assistant.RespondInput{Message: "how are you", Context: history})

	assert.Equal(t, "Fine, thanks.", out.Response)
	assert.Equal(t, history, g.gotHistory)
}

func TestRespond_UnknownIntentGoesGenerative(t *testing.T) {
	c := &mockClassifier{score: score("weather", 0.95)}
	g := &mockGenerator{reply: "It is sunny."}

	out := newTestUseCase(c, &mockSearch{}, g, Config{}).
		Respond(context.Background(), assistant.RespondInput{Message: "weather?"})

	assert.Equal(t, assistant.BranchGenerative, out.Branch)
	assert.Equal(t, "It is sunny.", out.Response)
}

func TestRespond_ClassificationFailure(t *testing.T) {
	c := &mockClassifier{err: intent.ErrClassification}
	s := &mockSearch{}
	g := &mockGenerator{reply: "unused"}

	out := newTestUseCase(c, s, g, Config{}).
		Respond(context.Background(), assistant.RespondInput{Message: "anything"})

	assert.Equal(t, assistant.MsgClassificationFailed, out.Response)
	assert.Equal(t, assistant.BranchNone, out.Branch)
	assert.Equal(t, []assistant.State{assistant.StateStart, assistant.StateDone}, out.Path)
	assert.Equal(t, 0, g.calls)
	assert.Equal(t, 0, s.calls)
}

func TestRespond_ClassifyTimeout(t *testing.T) {
	c := &mockClassifier{score: score(intent.IntentMath, 0.9), delay: 200 * time.Millisecond}

	start := time.Now()
	out := newTestUseCase(c, &mockSearch{}, &mockGenerator{}, Config{ClassifyTimeout: 20 * time.Millisecond}).
		Respond(context.Background(), assistant.RespondInput{Message: "1+1"})

	assert.Equal(t, assistant.MsgClassificationFailed, out.Response)
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestRespond_GenerativeTimeout(t *testing.T) {
	c := &mockClassifier{score: score(intent.IntentGeneral, 0.9)}
	g := &mockGenerator{reply: "late", delay: 200 * time.Millisecond}

	start := time.Now()
	out := newTestUseCase(c, &mockSearch{}, g, Config{BranchTimeout: 20 * time.Millisecond}).
		Respond(context.Background(), assistant.RespondInput{Message: "tell me a story"})

	assert.Equal(t, generative.MsgApology, out.Response)
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestCallWithTimeout_RecoversPanic(t *testing.T) {
	_, err := callWithTimeout(context.Background(), time.Second, func(context.Context) (int, error) {
		panic("kaboom")
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, assistant.ErrCollaboratorPanic))
}

func TestMachine_RejectsInvalidTransition(t *testing.T) {
	m := newMachine(&mockLogger{})
	err := m.advance(context.Background(), assistant.StateDispatched)
	require.Error(t, err)
	assert.True(t, errors.Is(err, assistant.ErrInvalidTransition))
	assert.Equal(t, assistant.StateStart, m.state)
}

func TestRespond_ConfiguredThresholdIsHonored(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
	}{
		{"zero", 0},
		{"negative", -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threshold := tt.threshold
			c := &mockClassifier{score: score(intent.IntentMath, 0.1)}
			g := &mockGenerator{reply: "unused"}

			out := newTestUseCase(c, &mockSearch{}, g, Config{ConfidenceThreshold: &threshold}).
				Respond(context.Background(), assistant.RespondInput{Message: "what is 2+2"})

			assert.Equal(t, assistant.BranchMath, out.Branch)
			assert.Contains(t, out.Response, "2+2 = 4")
			assert.Equal(t, 0, g.calls)
		})
	}
}

func TestRespond_HigherThresholdForcesGenerative(t *testing.T) {
	threshold := 0.9
	c := &mockClassifier{score: score(intent.IntentMath, 0.82)}
	g := &mockGenerator{reply: "gen"}

	out := newTestUseCase(c, &mockSearch{}, g, Config{ConfidenceThreshold: &threshold}).
		Respond(context.Background(), assistant.RespondInput{Message: "what is 2+2"})

	assert.Equal(t, assistant.BranchGenerative, out.Branch)
	assert.Equal(t, "gen", out.Response)
}

func TestRespond_LowConfidenceProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)
	labels := []string{intent.IntentMath, intent.IntentSearch, intent.IntentGeneral}

	properties.Property("below threshold never reaches math or search", prop.ForAll(
		func(i int, confidence float64) bool {
			c := &mockClassifier{score: score(labels[i], confidence)}
			s := &mockSearch{}
			g := &mockGenerator{reply: "gen"}
			out := newTestUseCase(c, s, g, Config{}).
				Respond(context.Background(), assistant.RespondInput{Message: "3*3"})
			return out.Branch == assistant.BranchGenerative && out.Response == "gen" && s.calls == 0
		},
		gen.IntRange(0, len(labels)-1),
		gen.Float64Range(0, 0.2999),
	))

	properties.TestingRun(t)
}
