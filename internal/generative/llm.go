package generative

import (
	"context"

	"conversational-assistant/pkg/llmprovider"
)

// LLMModel generates text through the provider manager.
type LLMModel struct {
	manager *llmprovider.Manager
	system  string
}

// NewLLMModel wraps manager. system may be empty.
func NewLLMModel(manager *llmprovider.Manager, system string) *LLMModel {
	return &LLMModel{manager: manager, system: system}
}

func (m *LLMModel) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	resp, err := m.manager.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: m.system,
		Prompt:            prompt,
		Temperature:       params.Temperature,
		MaxTokens:         params.MaxNewTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

var _ Model = (*LLMModel)(nil)
