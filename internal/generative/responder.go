package generative

import (
	"context"
	"fmt"
	"strings"
)

// Respond returns the model's reply to utterance given prior turns.
// Failures are logged and answered with MsgApology.
func (r *Responder) Respond(ctx context.Context, utterance string, history []string) string {
	reply, err := r.generate(ctx, utterance, history)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", LogPrefixRespond, err)
		return MsgApology
	}
	return reply
}

func (r *Responder) generate(ctx context.Context, utterance string, history []string) (string, error) {
	prompt := BuildPrompt(utterance, history)

	raw, err := r.model.Generate(ctx, prompt, r.params)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	reply := ExtractReply(raw)
	if reply == "" {
		return "", fmt.Errorf("%w: %w", ErrGeneration, ErrEmptyOutput)
	}
	return reply, nil
}

// Window returns the last HistoryWindow entries of history.
func Window(history []string) []string {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}

// BuildPrompt joins the windowed history, the user turn and an open
// assistant turn with newlines.
func BuildPrompt(utterance string, history []string) string {
	window := Window(history)

	lines := make([]string, 0, len(window)+2)
	lines = append(lines, window...)
	lines = append(lines, UserMarker+utterance, AssistantMarker)
	return strings.Join(lines, "\n")
}

// ExtractReply keeps the text after the last assistant marker, trimmed.
// Output without a marker is used whole.
func ExtractReply(raw string) string {
	if i := strings.LastIndex(raw, AssistantMarker); i >= 0 {
		raw = raw[i+len(AssistantMarker):]
	}
	return strings.TrimSpace(raw)
}
