package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

// keyPrefix namespaces recommendation entries in a shared Redis instance.
const keyPrefix = "radar:recommendations:"

// Redis is the shared cache backend for multi-instance deployments. Entries
// are stored as JSON-serialized, fully resolved result lists; reads
// deserialize and return them without re-resolving anything. Concurrent
// local callers for the same missing key still collapse to one compute via
// an in-process flight table; cross-instance duplicate computes are
// tolerated (last write wins, both writes are equivalent).
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger

	mu     sync.Mutex
	flight map[string]*entry
}

var _ Store = (*Redis)(nil)

// NewRedis wraps an existing client. ttl <= 0 stores entries without
// expiration, matching the process-lifetime semantics of the in-memory
// backend.
func NewRedis(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
		logger: logger.Named("cache"),
		flight: make(map[string]*entry),
	}
}

func (r *Redis) GetOrCompute(ctx context.Context, key Key, compute ComputeFunc) ([]models.RecommendationResult, bool, error) {
	k := keyPrefix + key.String()

	if results, ok := r.get(ctx, k); ok {
		return results, true, nil
	}

	r.mu.Lock()
	if e, ok := r.flight[k]; ok {
		r.mu.Unlock()
		select {
		case <-e.ready:
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
		return e.results, true, e.err
	}
	e := &entry{ready: make(chan struct{})}
	r.flight[k] = e
	r.mu.Unlock()

	e.results, e.err = compute(ctx)
	if e.err == nil {
		r.set(ctx, k, e.results)
	}

	r.mu.Lock()
	delete(r.flight, k)
	r.mu.Unlock()
	close(e.ready)

	return e.results, false, e.err
}

// Clear removes every namespaced entry. A backend failure here is surfaced,
// unlike on the read/write path where Redis trouble degrades to a miss.
func (r *Redis) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scanning cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("deleting cache keys: %w", err)
	}
	return nil
}

// get treats any backend or decode failure as a miss; the compute path is
// the fallback and the failure only costs one extra completion call.
func (r *Redis) get(ctx context.Context, k string) ([]models.RecommendationResult, bool) {
	data, err := r.client.Get(ctx, k).Result()
	if err == redis.Nil || data == "" {
		return nil, false
	}
	if err != nil {
		r.logger.Warn("cache read failed, treating as miss", zap.Error(err))
		return nil, false
	}

	var results []models.RecommendationResult
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		r.logger.Warn("cache entry undecodable, treating as miss", zap.Error(err))
		return nil, false
	}
	return results, true
}

func (r *Redis) set(ctx context.Context, k string, results []models.RecommendationResult) {
	data, err := json.Marshal(results)
	if err != nil {
		r.logger.Warn("cache entry unencodable, skipping write", zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, k, data, r.ttl).Err(); err != nil {
		r.logger.Warn("cache write failed", zap.Error(err))
	}
}
