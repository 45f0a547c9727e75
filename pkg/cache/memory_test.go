package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

func TestMemoryGetOrComputeCachesResult(t *testing.T) {
	m := NewMemory()
	key := Key{Company: "Empresa A", Challenge: "Vendas"}
	var calls atomic.Int64

	compute := func(context.Context) ([]models.RecommendationResult, error) {
		calls.Add(1)
		return []models.RecommendationResult{{Rank: 1, SolutionName: "Curso de Vendas"}}, nil
	}

	results, hit, err := m.GetOrCompute(context.Background(), key, compute)
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, results, 1)

	results, hit, err = m.GetOrCompute(context.Background(), key, compute)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, results, 1)
	assert.Equal(t, "Curso de Vendas", results[0].SolutionName)

	assert.Equal(t, int64(1), calls.Load())
}

func TestMemorySingleFlightUnderConcurrency(t *testing.T) {
	m := NewMemory()
	key := Key{Company: "Empresa A", Challenge: "Vendas"}

	var calls atomic.Int64
	release := make(chan struct{})
	compute := func(context.Context) ([]models.RecommendationResult, error) {
		calls.Add(1)
		<-release
		return []models.RecommendationResult{{Rank: 1}}, nil
	}

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, _, err := m.GetOrCompute(context.Background(), key, compute)
			assert.NoError(t, err)
			assert.Len(t, results, 1)
		}()
	}

	close(release)
	wg.Wait()
	assert.Equal(t, int64(1), calls.Load())
}

func TestMemoryKeyIsolation(t *testing.T) {
	m := NewMemory()
	var calls atomic.Int64
	compute := func(context.Context) ([]models.RecommendationResult, error) {
		calls.Add(1)
		return nil, nil
	}

	_, _, err := m.GetOrCompute(context.Background(), Key{Company: "Empresa A", Challenge: "Vendas"}, compute)
	require.NoError(t, err)
	_, _, err = m.GetOrCompute(context.Background(), Key{Company: "Empresa A", Challenge: "Finanças"}, compute)
	require.NoError(t, err)
	_, _, err = m.GetOrCompute(context.Background(), Key{Company: "Empresa B", Challenge: "Vendas"}, compute)
	require.NoError(t, err)

	assert.Equal(t, int64(3), calls.Load())
	assert.Equal(t, 3, m.Len())
}

func TestMemoryFailedComputeNotCached(t *testing.T) {
	m := NewMemory()
	key := Key{Company: "Empresa A", Challenge: "Vendas"}
	var calls atomic.Int64

	boom := errors.New("completion unavailable")
	_, hit, err := m.GetOrCompute(context.Background(), key, func(context.Context) ([]models.RecommendationResult, error) {
		calls.Add(1)
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, hit)
	assert.Zero(t, m.Len())

	results, hit, err := m.GetOrCompute(context.Background(), key, func(context.Context) ([]models.RecommendationResult, error) {
		calls.Add(1)
		return []models.RecommendationResult{{Rank: 1}}, nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Len(t, results, 1)
	assert.Equal(t, int64(2), calls.Load())
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory()
	key := Key{Company: "Empresa A", Challenge: "Vendas"}
	var calls atomic.Int64
	compute := func(context.Context) ([]models.RecommendationResult, error) {
		calls.Add(1)
		return nil, nil
	}

	_, _, err := m.GetOrCompute(context.Background(), key, compute)
	require.NoError(t, err)
	require.NoError(t, m.Clear(context.Background()))
	assert.Zero(t, m.Len())

	_, hit, err := m.GetOrCompute(context.Background(), key, compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(2), calls.Load())
}

func TestKeyNormalization(t *testing.T) {
	a := Key{Company: " Empresa A ", Challenge: "Vendas"}
	b := Key{Company: "empresa a", Challenge: "VENDAS"}
	assert.Equal(t, a.String(), b.String())

	c := Key{Company: "Empresa A", Challenge: "Finanças"}
	assert.NotEqual(t, a.String(), c.String())
}
