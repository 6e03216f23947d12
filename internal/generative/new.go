package generative

import (
	"conversational-assistant/pkg/log"
)

// Responder builds a bounded prompt from recent turns and asks the model.
type Responder struct {
	l      log.Logger
	model  Model
	params Params
}

// New creates a Responder. A negative temperature or a non-positive token
// budget falls back to the defaults; temperature 0 selects greedy decoding.
func New(l log.Logger, model Model, params Params) *Responder {
	if params.Temperature < 0 {
		params.Temperature = DefaultTemperature
	}
	if params.MaxNewTokens <= 0 {
		params.MaxNewTokens = DefaultMaxNewTokens
	}
	return &Responder{l: l, model: model, params: params}
}
