package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFromConfig_DefaultsToOpenAI(t *testing.T) {
	client, err := NewFromConfig(&Config{
		Endpoint: "https://api.openai.com/v1",
		Model:    "gpt-4o-mini",
		APIKey:   "test-key",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, client)
}

func TestNewFromConfig_Anthropic(t *testing.T) {
	client, err := NewFromConfig(&Config{
		Provider: ProviderAnthropic,
		Model:    "claude-sonnet-4-5",
		APIKey:   "test-key",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &AnthropicClient{}, client)
}

func TestNewFromConfig_RateLimited(t *testing.T) {
	client, err := NewFromConfig(&Config{
		Endpoint:          "https://api.openai.com/v1",
		Model:             "gpt-4o-mini",
		RequestsPerSecond: 3,
		Burst:             5,
	}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &RateLimitedClient{}, client)
}

func TestNewFromConfig_UnknownProvider(t *testing.T) {
	_, err := NewFromConfig(&Config{Provider: "cohere"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown completion provider")
}

func TestNewFromConfig_MissingFields(t *testing.T) {
	_, err := NewFromConfig(&Config{Provider: ProviderOpenAI, Model: "gpt-4o-mini"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is required")

	_, err = NewFromConfig(&Config{Provider: ProviderAnthropic, Model: "claude-sonnet-4-5"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is required")
}

func TestRateLimitedClient_Delegates(t *testing.T) {
	mock := NewMockCompletionClient()
	mock.CompleteFunc = func(ctx context.Context, prompt, system string, temperature float64, maxTokens int) (string, error) {
		return "ok", nil
	}

	limited := NewRateLimitedClient(mock, 100, 1)
	out, err := limited.Complete(context.Background(), "p", "s", 0.7, 100)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, int64(1), mock.CompleteCalls.Load())
}
