package generative

import "context"

// Model is an external text generator.
type Model interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}
