// Package resolve reconciles free-text solution names extracted from
// completion responses against the canonical catalog.
package resolve

import (
	"strings"

	"github.com/radar-ali360/radar-engine/pkg/catalog"
	"github.com/radar-ali360/radar-engine/pkg/models"
	"github.com/radar-ali360/radar-engine/pkg/parse"
)

// minFuzzyLength guards the substring pass: very short normalized names
// ("curso", "ali") contain or are contained by half the catalog, so they
// stay unresolved instead of producing a false positive.
const minFuzzyLength = 4

// Resolver matches candidate names against a fixed catalog snapshot. Build
// one per catalog; it precomputes normalized forms and is safe for
// concurrent reads.
type Resolver struct {
	records    []models.SolutionRecord
	normalized []string
}

// New builds a resolver over the catalog's current records.
func New(c *catalog.Catalog) *Resolver {
	records := c.Records()
	normalized := make([]string, len(records))
	for i, r := range records {
		normalized[i] = Normalize(r.Name)
	}
	return &Resolver{records: records, normalized: normalized}
}

// Resolve matches one candidate name in two passes: case-insensitive
// equality first, then bidirectional substring containment over normalized
// forms. Exact always wins over fuzzy. When neither pass matches, the
// returned record is synthetic (only Name set) so callers never handle a
// zero record, and the confidence is MatchUnresolved.
func (r *Resolver) Resolve(name string) (models.SolutionRecord, models.MatchConfidence) {
	name = strings.TrimSpace(name)

	for _, rec := range r.records {
		if strings.EqualFold(rec.Name, name) {
			return rec, models.MatchExact
		}
	}

	if candidate := Normalize(name); len([]rune(candidate)) >= minFuzzyLength {
		for i, norm := range r.normalized {
			if norm == "" {
				continue
			}
			if strings.Contains(candidate, norm) || strings.Contains(norm, candidate) {
				return r.records[i], models.MatchFuzzy
			}
		}
	}

	return models.SolutionRecord{Name: name}, models.MatchUnresolved
}

// Candidates resolves a ranked candidate list into recommendation results,
// preserving rank and justification. The solution name on each result is
// the canonical spelling whenever resolution succeeded.
func (r *Resolver) Candidates(candidates []parse.Candidate) []models.RecommendationResult {
	results := make([]models.RecommendationResult, 0, len(candidates))
	for _, c := range candidates {
		record, confidence := r.Resolve(c.Name)
		results = append(results, models.RecommendationResult{
			Rank:          c.Rank,
			SolutionName:  record.Name,
			Justification: c.Justification,
			Confidence:    confidence,
			Solution:      record,
		})
	}
	return results
}
