package usecase

import (
	"context"
	"fmt"

	"conversational-assistant/internal/assistant"
	pkgLog "conversational-assistant/pkg/log"
)

// machine tracks one request through Start, Classified, Dispatched and Done.
type machine struct {
	l     pkgLog.Logger
	state assistant.State
	path  []assistant.State
}

func newMachine(l pkgLog.Logger) *machine {
	return &machine{
		l:     l,
		state: assistant.StateStart,
		path:  []assistant.State{assistant.StateStart},
	}
}

func (m *machine) advance(ctx context.Context, next assistant.State) error {
	if !m.state.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", assistant.ErrInvalidTransition, m.state, next)
	}
	m.l.Debugf(ctx, "%s: %s -> %s", assistant.LogPrefixRespond, m.state, next)
	m.state = next
	m.path = append(m.path, next)
	return nil
}

// mustAdvance is used where the caller controls the order of transitions.
func (m *machine) mustAdvance(ctx context.Context, next assistant.State) {
	if err := m.advance(ctx, next); err != nil {
		m.l.DPanicf(ctx, "%s: %v", assistant.LogPrefixRespond, err)
	}
}
