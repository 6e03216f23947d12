package openai

import "context"

// IOpenAI is the subset of an OpenAI-compatible API used by this service.
type IOpenAI interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}

var _ IOpenAI = (*Client)(nil)
