package search

import "context"

// Provider retrieves results for a query. Implementations may call the network.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}
