package openai

import "time"

const (
	DefaultChatModel      = "gpt-4o-mini"
	DefaultEmbeddingModel = "text-embedding-3-small"
	DefaultTimeout        = 30 * time.Second
)

// Config holds settings for an OpenAI-compatible endpoint.
// DeepSeek and Qwen (DashScope compatible mode) are reached by setting BaseURL.
type Config struct {
	APIKey         string
	BaseURL        string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
}

// ChatRequest is a single-turn completion request.
type ChatRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// ChatResponse is the normalized completion result.
type ChatResponse struct {
	Content      string
	Model        string
	FinishReason string
	TotalTokens  int
}
