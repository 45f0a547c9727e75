package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the radar engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (API keys, passwords) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Completion service configuration
	Completion CompletionConfig `yaml:"completion"`

	// Recommendation cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Recommendation pipeline tuning
	Recommender RecommenderConfig `yaml:"recommender"`
}

// CompletionConfig selects and parameterizes the completion provider.
type CompletionConfig struct {
	// Provider is "openai" (default, covers any OpenAI-compatible endpoint)
	// or "anthropic".
	Provider string `yaml:"provider" env:"COMPLETION_PROVIDER" env-default:"openai"`

	// Endpoint is the API base URL for OpenAI-compatible providers.
	Endpoint string `yaml:"endpoint" env:"COMPLETION_ENDPOINT" env-default:"https://api.openai.com/v1"`

	// Model names the completion model on the chosen provider.
	Model string `yaml:"model" env:"COMPLETION_MODEL" env-default:"gpt-4o-mini"`

	// Secrets - environment only
	OpenAIAPIKey    string `yaml:"-" env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `yaml:"-" env:"ANTHROPIC_API_KEY"`

	// Client-side rate limiting; 0 disables it.
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"COMPLETION_RPS" env-default:"0"`
	Burst             int     `yaml:"burst" env:"COMPLETION_BURST" env-default:"1"`
}

// APIKey returns the secret for the configured provider.
func (c *CompletionConfig) APIKey() string {
	if c.Provider == "anthropic" {
		return c.AnthropicAPIKey
	}
	return c.OpenAIAPIKey
}

// CacheConfig selects the recommendation cache backend.
type CacheConfig struct {
	// Backend is "memory" (default, process-lifetime) or "redis" (shared
	// across instances).
	Backend string `yaml:"backend" env:"CACHE_BACKEND" env-default:"memory"`

	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
	RedisPassword string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML

	// TTLMinutes expires Redis entries; 0 keeps them until an explicit
	// clear, matching the memory backend.
	TTLMinutes int `yaml:"ttl_minutes" env:"CACHE_TTL_MINUTES" env-default:"0"`
}

// RecommenderConfig tunes prompt sampling and generation parameters.
// Zero values fall back to the service defaults.
type RecommenderConfig struct {
	SampleSize         int `yaml:"sample_size" env:"RECOMMENDER_SAMPLE_SIZE" env-default:"20"`
	MaxRecommendations int `yaml:"max_recommendations" env:"RECOMMENDER_MAX_RECOMMENDATIONS" env-default:"5"`
	MaxSuggestions     int `yaml:"max_suggestions" env:"RECOMMENDER_MAX_SUGGESTIONS" env-default:"5"`

	RecommendationTemperature float64 `yaml:"recommendation_temperature" env:"RECOMMENDER_RECOMMENDATION_TEMPERATURE" env-default:"0.7"`
	AdherenceTemperature      float64 `yaml:"adherence_temperature" env:"RECOMMENDER_ADHERENCE_TEMPERATURE" env-default:"0.7"`
	SuggestionTemperature     float64 `yaml:"suggestion_temperature" env:"RECOMMENDER_SUGGESTION_TEMPERATURE" env-default:"0.8"`

	RecommendationMaxTokens int `yaml:"recommendation_max_tokens" env:"RECOMMENDER_RECOMMENDATION_MAX_TOKENS" env-default:"1000"`
	AdherenceMaxTokens      int `yaml:"adherence_max_tokens" env:"RECOMMENDER_ADHERENCE_MAX_TOKENS" env-default:"1500"`
	SuggestionMaxTokens     int `yaml:"suggestion_max_tokens" env:"RECOMMENDER_SUGGESTION_MAX_TOKENS" env-default:"1500"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time and set on the
// returned Config. Secrets (OPENAI_API_KEY, ANTHROPIC_API_KEY,
// REDIS_PASSWORD) must come from environment variables (yaml:"-" fields).
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Inside a container, a loopback cache address means "the host".
	cfg.Cache.RedisAddr = ResolveAddrForDocker(cfg.Cache.RedisAddr)

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Completion.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown completion provider %q", c.Completion.Provider)
	}

	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}

	if c.Completion.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second cannot be negative")
	}
	return nil
}
