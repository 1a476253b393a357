package llm

import (
	"context"
	"fmt"
)

// Request is one single-turn completion
type Request struct {
	System      string
	Prompt      string
	Tier        ModelTier
	MaxTokens   int
	Temperature float64
}

// Response is the text of a completion and its token usage
type Response struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// TotalTokens returns input plus output tokens.
func (r *Response) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}

// Client is an abstraction over LLM providers
type Client interface {
	// Generate runs a single-turn completion on the model of the request tier
	Generate(ctx context.Context, req Request) (*Response, error)
	// GetModel returns the provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderAnthropic:
		return NewAnthropicClient(config, apiKey)
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}

func resolveModel(config *Config, tier ModelTier) (string, error) {
	model := config.GetModel(tier)
	if model == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}
	return model, nil
}
