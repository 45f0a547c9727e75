// Package catalog merges normalized solution records from multiple sources
// into the canonical catalog used by prompt building and entity resolution.
package catalog

import (
	"strings"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

// Catalog is the ordered, deduplicated union of all source records. It is
// rebuilt whenever a source changes and treated as immutable during a
// recommendation session.
type Catalog struct {
	records []models.SolutionRecord
}

// Merge unions the given record collections in declaration order. Records
// sharing the case-insensitive (name, source) key are deduplicated (first
// occurrence wins); records sharing only a name backfill each other's missing
// description, modality, theme, link and price. Merge order is stable, so
// merging identical inputs always yields identical output ordering.
func Merge(sources ...[]models.SolutionRecord) *Catalog {
	var merged []models.SolutionRecord
	seen := make(map[string]int)

	for _, source := range sources {
		for _, rec := range source {
			if strings.TrimSpace(rec.Name) == "" {
				continue
			}
			key := rec.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = len(merged)
			merged = append(merged, rec)
		}
	}

	backfill(merged)
	return &Catalog{records: merged}
}

// backfill fills missing fields of overlapping records (same name, different
// source) from any sibling that has the value. Iteration is by slice order,
// so the earliest sibling with a value wins.
func backfill(records []models.SolutionRecord) {
	byName := make(map[string][]int)
	for i, rec := range records {
		name := strings.ToLower(strings.TrimSpace(rec.Name))
		byName[name] = append(byName[name], i)
	}

	for _, indexes := range byName {
		if len(indexes) < 2 {
			continue
		}
		for _, i := range indexes {
			for _, j := range indexes {
				if i == j {
					continue
				}
				fillFrom(&records[i], records[j])
			}
		}
	}
}

func fillFrom(dst *models.SolutionRecord, src models.SolutionRecord) {
	if dst.Description == "" {
		dst.Description = src.Description
	}
	if dst.Modality == "" {
		dst.Modality = src.Modality
	}
	if dst.Theme == "" {
		dst.Theme = src.Theme
	}
	if dst.Link == "" {
		dst.Link = src.Link
	}
	if dst.Price == "" {
		dst.Price = src.Price
	}
}

// Records returns the merged records in their stable order.
func (c *Catalog) Records() []models.SolutionRecord {
	return c.records
}

// Len returns the number of merged records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Sample returns the first n records. Sampling is deterministic on purpose:
// the sample feeds the prompt, and an unstable sample would defeat response
// caching.
func (c *Catalog) Sample(n int) []models.SolutionRecord {
	if n <= 0 || n >= len(c.records) {
		return c.records
	}
	return c.records[:n]
}
