package generative

import "errors"

var (
	ErrGeneration  = errors.New("generation failed")
	ErrEmptyOutput = errors.New("model returned no text")
)
