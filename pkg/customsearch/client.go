// Package customsearch wraps the Google Programmable Search JSON API.
package customsearch

import (
	"context"
	"fmt"

	cse "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// MaxResults is the per-request cap enforced by the API.
const MaxResults = 10

// Config holds Programmable Search credentials.
type Config struct {
	APIKey   string
	EngineID string
	// Endpoint overrides the API base URL. Tests only.
	Endpoint string
}

// Result is one search hit.
type Result struct {
	Title   string
	Link    string
	Snippet string
}

// Client queries a single search engine.
type Client struct {
	svc      *cse.Service
	engineID string
}

// New creates a client for cfg.EngineID.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.EngineID == "" {
		return nil, fmt.Errorf("customsearch: api key and engine id are required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := cse.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("customsearch: create service: %w", err)
	}

	return &Client{svc: svc, engineID: cfg.EngineID}, nil
}

// Search returns up to limit results for query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		return nil, nil
	}
	if limit > MaxResults {
		limit = MaxResults
	}

	res, err := c.svc.Cse.List().Cx(c.engineID).Q(query).Num(int64(limit)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("customsearch: list: %w", err)
	}

	out := make([]Result, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil {
			continue
		}
		out = append(out, Result{Title: item.Title, Link: item.Link, Snippet: item.Snippet})
	}
	return out, nil
}
