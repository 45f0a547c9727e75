package services

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/radar-ali360/radar-engine/pkg/apperrors"
	"github.com/radar-ali360/radar-engine/pkg/catalog"
	"github.com/radar-ali360/radar-engine/pkg/models"
	"github.com/radar-ali360/radar-engine/pkg/resolve"
	"github.com/radar-ali360/radar-engine/pkg/schema"
)

// Source kinds select the alias table used to normalize posted rows.
const (
	SourceKindSheet = "sheet" // spreadsheet export headers
	SourceKindWeb   = "web"   // scraped rows, already canonical headers
)

// SolutionSource is one posted row set. Name becomes the source tag on every
// record normalized from it.
type SolutionSource struct {
	Name string       `json:"name"`
	Kind string       `json:"kind"`
	Rows []schema.Row `json:"rows"`
}

// SourceStats reports the normalization outcome for one source.
type SourceStats struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
	Skipped int    `json:"skipped"`
}

// CatalogStats summarizes a rebuild.
type CatalogStats struct {
	Sources []SourceStats `json:"sources"`
	Records int           `json:"records"` // after dedup
	Skipped int           `json:"skipped"`
}

// CatalogService owns the canonical catalog. Rebuild replaces the whole
// catalog atomically; requests in flight keep the snapshot they started
// with, so a rebuild never mutates a catalog mid-recommendation.
type CatalogService interface {
	// Rebuild normalizes and merges the posted sources into a new catalog.
	// Rows missing the solution name are skipped and counted, not fatal.
	// An input with no sources or no rows at all aborts the rebuild and
	// leaves the previous catalog in place.
	Rebuild(sources []SolutionSource) (CatalogStats, error)

	// Snapshot returns the current catalog and a resolver over it. Both
	// are immutable; callers may use them for the length of a request.
	Snapshot() (*catalog.Catalog, *resolve.Resolver)

	// Records lists the current catalog contents in merge order.
	Records() []models.SolutionRecord
}

type catalogService struct {
	logger *zap.Logger

	mu       sync.RWMutex
	catalog  *catalog.Catalog
	resolver *resolve.Resolver
}

// NewCatalogService starts with an empty catalog; recommendation requests
// before the first rebuild degrade to empty results.
func NewCatalogService(logger *zap.Logger) CatalogService {
	empty := catalog.Merge()
	return &catalogService{
		logger:   logger.Named("catalog"),
		catalog:  empty,
		resolver: resolve.New(empty),
	}
}

var _ CatalogService = (*catalogService)(nil)

func (s *catalogService) Rebuild(sources []SolutionSource) (CatalogStats, error) {
	if len(sources) == 0 {
		return CatalogStats{}, apperrors.ErrEmptySource
	}

	stats := CatalogStats{Sources: make([]SourceStats, 0, len(sources))}
	recordSets := make([][]models.SolutionRecord, 0, len(sources))
	totalRows := 0

	for _, src := range sources {
		if src.Name == "" {
			return CatalogStats{}, fmt.Errorf("source without a name")
		}
		aliases, err := aliasesForKind(src.Kind)
		if err != nil {
			return CatalogStats{}, fmt.Errorf("source %q: %w", src.Name, err)
		}

		totalRows += len(src.Rows)
		records, skipped := schema.NormalizeSolutions(src.Rows, aliases, src.Name)
		if skipped > 0 {
			s.logger.Warn("Rows skipped during normalization",
				zap.String("source", src.Name),
				zap.Int("skipped", skipped))
		}

		recordSets = append(recordSets, records)
		stats.Sources = append(stats.Sources, SourceStats{
			Name:    src.Name,
			Records: len(records),
			Skipped: skipped,
		})
		stats.Skipped += skipped
	}

	if totalRows == 0 {
		return CatalogStats{}, apperrors.ErrEmptySource
	}

	merged := catalog.Merge(recordSets...)
	stats.Records = merged.Len()

	s.mu.Lock()
	s.catalog = merged
	s.resolver = resolve.New(merged)
	s.mu.Unlock()

	s.logger.Info("Catalog rebuilt",
		zap.Int("sources", len(sources)),
		zap.Int("records", stats.Records),
		zap.Int("skipped", stats.Skipped))

	return stats, nil
}

func (s *catalogService) Snapshot() (*catalog.Catalog, *resolve.Resolver) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, s.resolver
}

func (s *catalogService) Records() []models.SolutionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Records()
}

func aliasesForKind(kind string) (schema.SolutionAliases, error) {
	switch kind {
	case SourceKindSheet, "":
		return schema.SheetSolutionAliases, nil
	case SourceKindWeb:
		return schema.WebSolutionAliases, nil
	default:
		return schema.SolutionAliases{}, fmt.Errorf("unknown source kind %q", kind)
	}
}
