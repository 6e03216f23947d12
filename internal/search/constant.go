package search

const (
	ProviderStatic     = "static"
	ProviderDuckDuckGo = "duckduckgo"
	ProviderGoogle     = "google"

	DefaultMaxResults = 5
)
