package http

import (
	"conversational-assistant/internal/assistant"
)

const (
	maxMessageLength = 4000
	maxContextTurns  = 50
)

// --- Request DTOs ---

type chatReq struct {
	Message *string  `json:"message" binding:"required"`
	Context []string `json:"context"`
}

func (r chatReq) validate() error {
	if len([]rune(*r.Message)) > maxMessageLength {
		return errMessageTooLong
	}
	return nil
}

// toInput keeps at most the last maxContextTurns turns of context.
func (r chatReq) toInput() assistant.RespondInput {
	recent := r.Context
	if len(recent) > maxContextTurns {
		recent = recent[len(recent)-maxContextTurns:]
	}
	history := make([]string, len(recent))
	copy(history, recent)
	return assistant.RespondInput{
		Message: *r.Message,
		Context: history,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response   string             `json:"response"`
	Intent     string             `json:"intent,omitempty"`
	Confidence float64            `json:"confidence"`
	Branch     string             `json:"branch"`
	Scores     map[string]float64 `json:"scores,omitempty"`
}

type plainResp struct {
	Response string `json:"response"`
}

func (h *handler) newChatResp(o assistant.RespondOutput) chatResp {
	return chatResp{
		Response:   o.Response,
		Intent:     o.Intent,
		Confidence: o.Confidence,
		Branch:     string(o.Branch),
		Scores:     o.Scores,
	}
}
