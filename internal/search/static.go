package search

import "context"

// StaticProvider serves fixed sample results. It is the default provider.
type StaticProvider struct {
	results []Result
}

// NewStaticProvider returns a provider with the built-in sample entries.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{results: []Result{
		{Title: "Sample result 1", Snippet: "This is a sample result for display."},
		{Title: "Sample result 2", Snippet: "Another sample search result."},
	}}
}

func (p *StaticProvider) Search(_ context.Context, _ string, maxResults int) ([]Result, error) {
	n := len(p.results)
	if maxResults < n {
		n = max(maxResults, 0)
	}
	return append([]Result(nil), p.results[:n]...), nil
}
