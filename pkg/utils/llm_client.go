package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionRequest is one system/user prompt pair sent to a chat model.
type CompletionRequest struct {
	Intent      string // rewrite, itinerary, chat; used for logging only
	System      string
	User        string
	JSONMode    bool
	Temperature float32
}

// LLMClient sends a single buffered completion request and returns the raw
// text of the first candidate. An empty string with a nil error means the
// provider answered without content.
type LLMClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
}

// NewLLMClient Factory function to create either OpenAI or Gemini client based on config
func NewLLMClient(provider, apiKey, model string) (LLMClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIChatClient(apiKey, model), nil
	case "gemini":
		client, err := NewGeminiChatClient(apiKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// StripCodeFence removes markdown code fences some models wrap JSON in.
func StripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```JSON")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
