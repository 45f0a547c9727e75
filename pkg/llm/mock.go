package llm

import (
	"context"
	"sync/atomic"
)

// MockCompletionClient is a configurable mock for testing code that consumes
// completions. Set CompleteFunc to control behavior in tests.
type MockCompletionClient struct {
	// CompleteFunc is called when Complete is invoked.
	// If nil, returns empty string and nil error.
	CompleteFunc func(ctx context.Context, prompt string, systemMessage string, temperature float64, maxTokens int) (string, error)

	// CompleteCalls counts invocations; safe for concurrent use so tests can
	// verify the cache's single-flight guarantee.
	CompleteCalls atomic.Int64
}

// NewMockCompletionClient creates a new mock.
func NewMockCompletionClient() *MockCompletionClient {
	return &MockCompletionClient{}
}

// Complete implements CompletionClient.
func (m *MockCompletionClient) Complete(ctx context.Context, prompt string, systemMessage string, temperature float64, maxTokens int) (string, error) {
	m.CompleteCalls.Add(1)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, systemMessage, temperature, maxTokens)
	}
	return "", nil
}

// Reset clears call tracking.
func (m *MockCompletionClient) Reset() {
	m.CompleteCalls.Store(0)
}
