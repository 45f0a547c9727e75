// Package cache memoizes parsed and resolved recommendation lists so a
// repeated request for the same company and challenge never pays a second
// completion call.
package cache

import (
	"context"
	"strings"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

// Key identifies one recommendation request. Challenge is part of the key
// because the same company asks again after reprioritizing.
type Key struct {
	Company   string
	Challenge string
}

// String renders a stable key form. Fields are lowercased and joined with a
// separator that cannot occur in either field.
func (k Key) String() string {
	return strings.ToLower(strings.TrimSpace(k.Company)) + "\x1f" + strings.ToLower(strings.TrimSpace(k.Challenge))
}

// ComputeFunc produces the recommendation list on a cache miss.
type ComputeFunc func(ctx context.Context) ([]models.RecommendationResult, error)

// Store is the recommendation cache contract. GetOrCompute returns the
// cached list on a hit; on a miss it runs compute exactly once per key even
// under concurrent callers, caches a successful result, and reports hit
// status. A compute failure is returned to every waiting caller and is not
// cached, so the next request retries.
type Store interface {
	GetOrCompute(ctx context.Context, key Key, compute ComputeFunc) ([]models.RecommendationResult, bool, error)
	Clear(ctx context.Context) error
}
