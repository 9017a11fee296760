package llm

import (
	"context"

	"github.com/clauselens/clauselens/internal/model"
)

// Provider defines the interface for chat-completion backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete runs one chat completion
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest is one prompt to complete
type CompletionRequest struct {
	// System is the system message ("" for none)
	System string

	// Prompt is the user message
	Prompt string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls randomness
	Temperature float32
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific; empty uses the provider default)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout per request, in seconds
	Timeout int

	// MaxTokens default for completions
	MaxTokens int
}

// DefaultConfig returns sensible defaults with the provider disabled
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Model:     "",
		Timeout:   30,
		MaxTokens: 600,
	}
}

// ConfigFromModel converts the app config subtree into a provider config
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}
