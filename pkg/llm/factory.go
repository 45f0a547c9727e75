package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// Provider names accepted in configuration.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// NewFromConfig builds the configured completion client, wrapped with a rate
// limiter when RequestsPerSecond is set.
func NewFromConfig(cfg *Config, logger *zap.Logger) (CompletionClient, error) {
	var (
		client CompletionClient
		err    error
	)

	switch cfg.Provider {
	case ProviderOpenAI, "":
		client, err = NewOpenAIClient(cfg, logger)
	case ProviderAnthropic:
		client, err = NewAnthropicClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", cfg.Provider, err)
	}

	if cfg.RequestsPerSecond > 0 {
		client = NewRateLimitedClient(client, cfg.RequestsPerSecond, cfg.Burst)
	}
	return client, nil
}
