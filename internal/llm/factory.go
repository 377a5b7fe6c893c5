package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var p Provider
	var err error

	switch cfg.Provider {
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}

// NewProviderFromEnv builds a provider from CODEGENIO_* variables,
// falling back to bare-key discovery (OPENAI_API_KEY and friends).
func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg)
}
