package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedClient wraps a CompletionClient with a client-side rate limiter
// so bursts of recommendation requests cannot trip upstream quota limits.
type RateLimitedClient struct {
	inner   CompletionClient
	limiter *rate.Limiter
}

// NewRateLimitedClient wraps inner with a limiter of requestsPerSecond and
// the given burst. Burst values below 1 are raised to 1.
func NewRateLimitedClient(inner CompletionClient, requestsPerSecond float64, burst int) *RateLimitedClient {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedClient{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Complete waits for a rate-limit token, then delegates to the inner client.
func (c *RateLimitedClient) Complete(ctx context.Context, prompt string, systemMessage string, temperature float64, maxTokens int) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}
	return c.inner.Complete(ctx, prompt, systemMessage, temperature, maxTokens)
}
