package embedding

import "context"

// Service is an external embedding model. Implementations return one vector
// per input text, in input order.
type Service interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Encoder turns text into vectors.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
	EncodeBatch(ctx context.Context, texts []string) ([][]float32, error)
}
