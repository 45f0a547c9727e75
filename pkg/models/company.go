package models

// Diagnostic stage names for the five-meeting ALI 360 cycle.
// Numeric stage codes from source rows map onto these via schema.StageName.
const (
	StageNomear       = "Nomear"
	StageElaborar     = "Elaborar"
	StageExperimentar = "Experimentar"
	StageEvoluir      = "Evoluir"
	StageConcluido    = "Concluído"
)

// CompanyProfile is the canonical company record produced by the schema
// normalizer. Name is never empty; every other field defaults to "" when the
// source row omits it.
type CompanyProfile struct {
	Name         string `json:"name"`
	City         string `json:"city,omitempty"`
	Regional     string `json:"regional,omitempty"`
	Sector       string `json:"sector,omitempty"`
	Challenge    string `json:"challenge,omitempty"`     // prioritized business challenge
	SpecificNeed string `json:"specific_need,omitempty"` // free-text problem description
	Maturity     string `json:"maturity,omitempty"`      // categorical or numeric, kept as text
	Stage        string `json:"stage,omitempty"`         // one of the Stage* names or "Estágio N"
}

// CountItem is one label/count pair in an aggregate distribution.
type CountItem struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RegionalAggregates summarizes the companies of one regional (or all of
// them) for the course-suggestion prompt. Slices are ordered by count
// descending, ties broken by label, so identical inputs always produce
// identical prompts.
type RegionalAggregates struct {
	Regional             string      `json:"regional,omitempty"`
	TopChallenges        []CountItem `json:"top_challenges"`
	TopSectors           []CountItem `json:"top_sectors"`
	MaturityDistribution []CountItem `json:"maturity_distribution"`
	StageDistribution    []CountItem `json:"stage_distribution"`
	TotalCompanies       int         `json:"total_companies"`
}
