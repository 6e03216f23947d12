package search

import (
	"fmt"
	"strings"
)

// Format renders results as a numbered list under a header naming the query.
func Format(results []Result, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Search results for '%s':", query)

	if len(results) == 0 {
		b.WriteString("\nNo results found.")
		return b.String()
	}

	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. %s: %s", i+1, r.Title, r.Snippet)
	}
	return b.String()
}
