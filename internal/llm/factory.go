package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/mathmentor/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and audit-logging middleware.
// If audit is nil, the logging layer is skipped.
func NewProvider(ctx context.Context, cfg Config, audit store.AuditLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	wrapped := base
	if audit != nil {
		wrapped = WithLogging(wrapped, audit)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from MENTOR_* environment variables,
// falling back to probing the standard API key variables when no provider
// is selected explicitly.
func NewProviderFromEnv(ctx context.Context, audit store.AuditLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, audit)
}
