package assistant

import "time"

const (
	LogPrefixRespond = "internal.assistant.usecase.Respond"

	// DefaultConfidenceThreshold is the minimum confidence for intent-specific routing.
	DefaultConfidenceThreshold = 0.30

	DefaultClassifyTimeout = 10 * time.Second
	DefaultBranchTimeout   = 30 * time.Second

	MsgClassificationFailed = "Sorry, I could not understand your request right now. Please try again."
	MsgSearchUnavailable    = "Sorry, the search service is unavailable right now."
)
