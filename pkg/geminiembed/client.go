// Package geminiembed produces text embeddings through the Gemini API.
package geminiembed

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "text-embedding-004"

// Config holds Gemini embedding settings.
type Config struct {
	APIKey string
	Model  string
}

// Client batches texts into a single BatchEmbedContents call.
type Client struct {
	client *genai.Client
	model  string
}

// New dials the Gemini API. Callers must Close the client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("geminiembed: API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("geminiembed: create client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{client: client, model: model}, nil
}

// Model returns the configured embedding model.
func (c *Client) Model() string {
	return c.model
}

// Embed returns one vector per text, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("geminiembed: at least one text is required")
	}

	em := c.client.EmbeddingModel(c.model)
	em.TaskType = genai.TaskTypeSemanticSimilarity

	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("geminiembed: batch embed: %w", err)
	}

	return toVectors(res, len(texts))
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}

func toVectors(res *genai.BatchEmbedContentsResponse, want int) ([][]float32, error) {
	if res == nil || len(res.Embeddings) != want {
		got := 0
		if res != nil {
			got = len(res.Embeddings)
		}
		return nil, fmt.Errorf("geminiembed: expected %d embeddings, got %d", want, got)
	}

	out := make([][]float32, want)
	for i, e := range res.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, fmt.Errorf("geminiembed: empty embedding at index %d", i)
		}
		out[i] = e.Values
	}
	return out, nil
}
