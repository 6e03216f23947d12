package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
	LogPrefixWarm     = "internal.intent.Warm"
)

// Built-in intent names
const (
	IntentMath    = "math"
	IntentSearch  = "search"
	IntentGeneral = "general"
)
