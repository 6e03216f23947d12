package assistant

import "context"

// UseCase answers one conversational request. It never fails: every
// collaborator fault is converted into a user-facing message.
type UseCase interface {
	Respond(ctx context.Context, input RespondInput) RespondOutput
}

// Generator produces a free-form reply from an utterance and prior turns.
type Generator interface {
	Respond(ctx context.Context, utterance string, history []string) string
}
