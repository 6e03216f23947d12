package usecase

import (
	"context"

	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/calculator"
	"conversational-assistant/internal/generative"
	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/search"
)

// Respond classifies the message, dispatches it to exactly one handler and
// returns that handler's text. It always produces a response.
func (uc *implUseCase) Respond(ctx context.Context, input assistant.RespondInput) assistant.RespondOutput {
	m := newMachine(uc.l)

	score, err := callWithTimeout(ctx, uc.cfg.ClassifyTimeout, func(ctx context.Context) (intent.Score, error) {
		return uc.classifier.Classify(ctx, input.Message)
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: classify: %v", assistant.LogPrefixRespond, err)
		m.mustAdvance(ctx, assistant.StateDone)
		return assistant.RespondOutput{
			Response: assistant.MsgClassificationFailed,
			Branch:   assistant.BranchNone,
			Path:     m.path,
		}
	}
	m.mustAdvance(ctx, assistant.StateClassified)

	decision := assistant.Decide(score, uc.threshold, input.Message)
	uc.l.Infof(ctx, "%s: intent=%s confidence=%.3f branch=%s",
		assistant.LogPrefixRespond, score.Intent, score.Confidence, decision.Branch)
	m.mustAdvance(ctx, assistant.StateDispatched)

	response := uc.dispatch(ctx, decision, input.Context)
	m.mustAdvance(ctx, assistant.StateDone)

	return assistant.RespondOutput{
		Response:   response,
		Intent:     score.Intent,
		Confidence: score.Confidence,
		Scores:     score.AllScores,
		Branch:     decision.Branch,
		Path:       m.path,
	}
}

func (uc *implUseCase) dispatch(ctx context.Context, d assistant.Decision, history []string) string {
	switch d.Branch {
	case assistant.BranchMath:
		return calculator.Evaluate(d.Input)
	case assistant.BranchSearch:
		return uc.runSearch(ctx, d.Input)
	default:
		return uc.runGenerative(ctx, d.Input, history)
	}
}

func (uc *implUseCase) runSearch(ctx context.Context, query string) string {
	results, err := callWithTimeout(ctx, uc.cfg.BranchTimeout, func(ctx context.Context) ([]search.Result, error) {
		return uc.searcher.Search(ctx, query, uc.cfg.MaxResults)
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: search: %v", assistant.LogPrefixRespond, err)
		return assistant.MsgSearchUnavailable
	}
	return search.Format(results, query)
}

func (uc *implUseCase) runGenerative(ctx context.Context, utterance string, history []string) string {
	reply, err := callWithTimeout(ctx, uc.cfg.BranchTimeout, func(ctx context.Context) (string, error) {
		return uc.generator.Respond(ctx, utterance, history), nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: generate: %v", assistant.LogPrefixRespond, err)
		return generative.MsgApology
	}
	return reply
}
