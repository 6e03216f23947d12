package generative

// Params are the sampling settings sent with every prompt.
type Params struct {
	Temperature  float64
	MaxNewTokens int
}
