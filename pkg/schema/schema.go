// Package schema normalizes heterogeneous source rows onto the canonical
// company and solution schemas. Sources disagree on column names (the radar
// spreadsheet says "Nome Empresa", exports say "Nome da empresa"), so every
// canonical field carries an ordered list of accepted source columns that is
// probed until one yields a non-empty value.
package schema

import (
	"github.com/radar-ali360/radar-engine/pkg/models"
	"github.com/radar-ali360/radar-engine/pkg/rowutil"
)

// Row is one source record: a string-keyed mapping with arbitrary or missing
// keys, exactly as spreadsheet and web collaborators deliver it.
type Row map[string]any

// CompanyAliases lists the accepted source column names per canonical
// CompanyProfile field, probed in declaration order.
type CompanyAliases struct {
	Name         []string
	City         []string
	Regional     []string
	Sector       []string
	Challenge    []string
	SpecificNeed []string
	Maturity     []string
	Stage        []string
}

// SolutionAliases lists the accepted source column names per canonical
// SolutionRecord field, probed in declaration order.
type SolutionAliases struct {
	Name          []string
	Description   []string
	Modality      []string
	Theme         []string
	Source        []string
	Link          []string
	Price         []string
	ScheduledDate []string
	CollectedAt   []string
}

// RadarCompanyAliases accepts both the standardized export headers and the
// raw radar spreadsheet headers.
var RadarCompanyAliases = CompanyAliases{
	Name:         []string{"Nome da empresa", "Nome Empresa"},
	City:         []string{"Cidade", "Município"},
	Regional:     []string{"Regional", "Escritório Regional"},
	Sector:       []string{"Setor"},
	Challenge:    []string{"Desafio priorizado", "Categoria do Problema"},
	SpecificNeed: []string{"Necessidade específica", "Descrição do Problema"},
	Maturity:     []string{"Maturidade em inovação", "Média diagnóstico inicial", "Maturidade"},
	Stage:        []string{"Estágio do diagnóstico", "Encontro"},
}

// SheetSolutionAliases covers the solutions spreadsheet, whose raw headers
// ("Ação Destaque", "Instrumento", "Estratégia") predate the canonical names.
var SheetSolutionAliases = SolutionAliases{
	Name:          []string{"Nome da solução", "Ação Destaque"},
	Description:   []string{"Descrição", "Objetivo"},
	Modality:      []string{"Modalidade", "Instrumento"},
	Theme:         []string{"Tema", "Estratégia"},
	Source:        []string{"Fonte"},
	Link:          []string{"Link"},
	Price:         []string{"Preço"},
	ScheduledDate: []string{"Data prevista"},
	CollectedAt:   []string{"Data de coleta"},
}

// WebSolutionAliases covers rows from the web-collection collaborator, which
// already uses canonical column names.
var WebSolutionAliases = SolutionAliases{
	Name:          []string{"Nome da solução"},
	Description:   []string{"Descrição"},
	Modality:      []string{"Modalidade"},
	Theme:         []string{"Tema"},
	Source:        []string{"Fonte"},
	Link:          []string{"Link"},
	Price:         []string{"Preço"},
	ScheduledDate: []string{"Data prevista"},
	CollectedAt:   []string{"Data de coleta"},
}

// lookup probes the alias list in order and returns the first non-empty
// coerced cell value.
func lookup(row Row, names []string) string {
	for _, name := range names {
		if v, ok := row[name]; ok {
			if s := rowutil.CellString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// CompanyFromRow maps one source row onto a CompanyProfile. The second
// return is false when the row has no company name, in which case the row
// must be skipped (and counted) by the caller.
func CompanyFromRow(row Row, aliases CompanyAliases) (models.CompanyProfile, bool) {
	name := lookup(row, aliases.Name)
	if name == "" {
		return models.CompanyProfile{}, false
	}
	return models.CompanyProfile{
		Name:         name,
		City:         lookup(row, aliases.City),
		Regional:     lookup(row, aliases.Regional),
		Sector:       lookup(row, aliases.Sector),
		Challenge:    lookup(row, aliases.Challenge),
		SpecificNeed: lookup(row, aliases.SpecificNeed),
		Maturity:     lookup(row, aliases.Maturity),
		Stage:        stageFromRow(row, aliases.Stage),
	}, true
}

// SolutionFromRow maps one source row onto a SolutionRecord. defaultSource
// tags records whose row carries no source column. Missing modality and
// theme are inferred from the name and description keywords. The second
// return is false when the row has no solution name.
func SolutionFromRow(row Row, aliases SolutionAliases, defaultSource string) (models.SolutionRecord, bool) {
	name := lookup(row, aliases.Name)
	if name == "" {
		return models.SolutionRecord{}, false
	}

	rec := models.SolutionRecord{
		Name:          name,
		Description:   lookup(row, aliases.Description),
		Modality:      lookup(row, aliases.Modality),
		Theme:         lookup(row, aliases.Theme),
		Source:        lookup(row, aliases.Source),
		Link:          lookup(row, aliases.Link),
		Price:         lookup(row, aliases.Price),
		ScheduledDate: lookup(row, aliases.ScheduledDate),
		CollectedAt:   lookup(row, aliases.CollectedAt),
	}
	if rec.Source == "" {
		rec.Source = defaultSource
	}
	if rec.Modality == "" {
		rec.Modality = InferModality(rec.Name, rec.Description)
	}
	if rec.Theme == "" {
		rec.Theme = InferTheme(rec.Name, rec.Description)
	}
	return rec, true
}

// NormalizeCompanies maps a whole row set, returning the accepted profiles
// and the count of rows skipped for lacking an identifying name.
func NormalizeCompanies(rows []Row, aliases CompanyAliases) ([]models.CompanyProfile, int) {
	profiles := make([]models.CompanyProfile, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		p, ok := CompanyFromRow(row, aliases)
		if !ok {
			skipped++
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, skipped
}

// NormalizeSolutions maps a whole row set, returning the accepted records
// and the count of rows skipped for lacking an identifying name.
func NormalizeSolutions(rows []Row, aliases SolutionAliases, defaultSource string) ([]models.SolutionRecord, int) {
	records := make([]models.SolutionRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec, ok := SolutionFromRow(row, aliases, defaultSource)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}
