// Package llm provides completion clients for the external text-generation
// collaborators (OpenAI-compatible and Anthropic endpoints).
package llm

import (
	"context"
)

// CompletionClient defines the single operation the core consumes: prompt in,
// raw text out. Implementations make exactly one upstream call per invocation
// and never retry; the caller decides what a failure means.
// Use this interface for dependency injection to enable mocking in tests.
type CompletionClient interface {
	// Complete sends the prompt with the given system message and sampling
	// parameters and returns the raw completion text.
	Complete(ctx context.Context, prompt string, systemMessage string, temperature float64, maxTokens int) (string, error)
}

// Ensure implementations satisfy CompletionClient at compile time.
var (
	_ CompletionClient = (*OpenAIClient)(nil)
	_ CompletionClient = (*AnthropicClient)(nil)
	_ CompletionClient = (*RateLimitedClient)(nil)
	_ CompletionClient = (*MockCompletionClient)(nil)
)
