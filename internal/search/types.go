package search

// Result is one entry returned by a Provider.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}
