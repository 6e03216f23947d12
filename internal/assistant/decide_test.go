package assistant_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/intent"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		score intent.Score
		want  assistant.Branch
	}{
		{"math above threshold", intent.Score{Intent: intent.IntentMath, Confidence: 0.9}, assistant.BranchMath},
		{"search above threshold", intent.Score{Intent: intent.IntentSearch, Confidence: 0.5}, assistant.BranchSearch},
		{"general above threshold", intent.Score{Intent: intent.IntentGeneral, Confidence: 0.8}, assistant.BranchGenerative},
		{"unknown label", intent.Score{Intent: "weather", Confidence: 0.99}, assistant.BranchGenerative},
		{"math at 0.1", intent.Score{Intent: intent.IntentMath, Confidence: 0.1}, assistant.BranchGenerative},
		{"exactly at threshold", intent.Score{Intent: intent.IntentMath, Confidence: 0.30}, assistant.BranchMath},
		{"negative confidence", intent.Score{Intent: intent.IntentSearch, Confidence: -0.4}, assistant.BranchGenerative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := assistant.Decide(tt.score, assistant.DefaultConfidenceThreshold, "msg")
			assert.Equal(t, tt.want, d.Branch)
			assert.Equal(t, "msg", d.Input)
		})
	}
}

func TestDecideLowConfidenceProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	labels := []string{intent.IntentMath, intent.IntentSearch, intent.IntentGeneral, "other"}

	properties.Property("confidence below threshold routes to generative", prop.ForAll(
		func(i int, confidence float64) bool {
			score := intent.Score{Intent: labels[i], Confidence: confidence}
			return assistant.Decide(score, assistant.DefaultConfidenceThreshold, "x").Branch == assistant.BranchGenerative
		},
		gen.IntRange(0, len(labels)-1),
		gen.Float64Range(-1, 0.2999),
	))

	properties.TestingRun(t)
}

func TestStateTransitions(t *testing.T) {
	assert.True(t, assistant.StateStart.CanTransition(assistant.StateClassified))
	assert.True(t, assistant.StateStart.CanTransition(assistant.StateDone))
	assert.True(t, assistant.StateClassified.CanTransition(assistant.StateDispatched))
	assert.True(t, assistant.StateDispatched.CanTransition(assistant.StateDone))

	assert.False(t, assistant.StateStart.CanTransition(assistant.StateDispatched))
	assert.False(t, assistant.StateClassified.CanTransition(assistant.StateDone))
	assert.False(t, assistant.StateDone.CanTransition(assistant.StateStart))
	assert.Equal(t, "dispatched", assistant.StateDispatched.String())
}
