package search

import (
	"context"
	"fmt"

	"conversational-assistant/pkg/customsearch"
	"conversational-assistant/pkg/duckduckgo"
)

// DuckDuckGoProvider adapts the DuckDuckGo client.
type DuckDuckGoProvider struct {
	client *duckduckgo.Client
}

func NewDuckDuckGoProvider(client *duckduckgo.Client) *DuckDuckGoProvider {
	return &DuckDuckGoProvider{client: client}
}

func (p *DuckDuckGoProvider) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	hits, err := p.client.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	out := make([]Result, len(hits))
	for i, h := range hits {
		out[i] = Result{Title: h.Title, Snippet: h.Snippet}
	}
	return out, nil
}

// GoogleProvider adapts the Programmable Search client.
type GoogleProvider struct {
	client *customsearch.Client
}

func NewGoogleProvider(client *customsearch.Client) *GoogleProvider {
	return &GoogleProvider{client: client}
}

func (p *GoogleProvider) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	hits, err := p.client.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	out := make([]Result, len(hits))
	for i, h := range hits {
		out[i] = Result{Title: h.Title, Snippet: h.Snippet}
	}
	return out, nil
}

var (
	_ Provider = (*StaticProvider)(nil)
	_ Provider = (*DuckDuckGoProvider)(nil)
	_ Provider = (*GoogleProvider)(nil)
)
