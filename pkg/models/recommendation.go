package models

// MatchConfidence records how a recommended solution name was reconciled
// against the canonical catalog.
type MatchConfidence string

const (
	MatchExact      MatchConfidence = "exact"      // case-insensitive equality
	MatchFuzzy      MatchConfidence = "fuzzy"      // substring containment either direction
	MatchUnresolved MatchConfidence = "unresolved" // no catalog record found; Solution is synthetic
)

// RecommendationResult is one entry of a parsed and resolved recommendation
// list. SolutionName prefers the canonical catalog spelling when the resolver
// found a match. Solution is a copy of the matched catalog record (or a
// synthetic record carrying only the free-text name when unresolved), so
// callers never see a nil reference.
type RecommendationResult struct {
	Rank          int             `json:"rank"`
	SolutionName  string          `json:"solution_name"`
	Justification string          `json:"justification"`
	Confidence    MatchConfidence `json:"confidence"`
	Solution      SolutionRecord  `json:"solution"`
}

// AdherenceResult is the per-company outcome of an adherence assessment.
// Score is always within [0,10]; a company whose score could not be parsed
// gets 0 with a sentinel justification.
type AdherenceResult struct {
	Company       string `json:"company"`
	Score         int    `json:"score"`
	Justification string `json:"justification"`
}

// CourseSuggestion is one suggested new solution for a regional, parsed from
// the suggestion response cascade.
type CourseSuggestion struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Modality      string `json:"modality"`
	Theme         string `json:"theme,omitempty"`
	Description   string `json:"description,omitempty"`
	Justification string `json:"justification"`
}
