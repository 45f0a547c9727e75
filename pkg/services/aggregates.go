package services

import (
	"sort"
	"strings"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

// topAggregateItems bounds the challenge and sector lists in the suggestion
// prompt; maturity and stage distributions are small and kept whole.
const topAggregateItems = 5

// BuildRegionalAggregates summarizes company demand for the suggestion
// prompt. regional filters by exact regional name; empty means all
// companies. Distributions are ordered by count descending with label
// ties alphabetical, so identical inputs produce identical prompts (and
// identical completions under a fixed seed).
func BuildRegionalAggregates(companies []models.CompanyProfile, regional string) models.RegionalAggregates {
	challenges := make(map[string]int)
	sectors := make(map[string]int)
	maturity := make(map[string]int)
	stages := make(map[string]int)
	total := 0

	for _, c := range companies {
		if regional != "" && !strings.EqualFold(c.Regional, regional) {
			continue
		}
		total++
		countInto(challenges, c.Challenge)
		countInto(sectors, c.Sector)
		countInto(maturity, c.Maturity)
		countInto(stages, c.Stage)
	}

	return models.RegionalAggregates{
		Regional:             regional,
		TopChallenges:        topCounts(challenges, topAggregateItems),
		TopSectors:           topCounts(sectors, topAggregateItems),
		MaturityDistribution: topCounts(maturity, 0),
		StageDistribution:    topCounts(stages, 0),
		TotalCompanies:       total,
	}
}

func countInto(counts map[string]int, label string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return
	}
	counts[label]++
}

// topCounts orders a count map deterministically and keeps the first n
// items; n <= 0 keeps all.
func topCounts(counts map[string]int, n int) []models.CountItem {
	items := make([]models.CountItem, 0, len(counts))
	for label, count := range counts {
		items = append(items, models.CountItem{Label: label, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Label < items[j].Label
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}
