package assistant

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrCollaboratorPanic = errors.New("collaborator panicked")
)
