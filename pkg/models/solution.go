package models

import "strings"

// Modality values derived from source rows or inferred from text.
const (
	ModalityConsultoria = "Consultoria"
	ModalityCurso       = "Curso"
	ModalityCursoOnline = "Curso Online"
	ModalityPrograma    = "Programa"
	ModalityEvento      = "Evento"
	ModalityPalestra    = "Palestra"
	ModalitySolucao     = "Solução" // fallback when nothing matches
)

// Theme taxonomy. ThemeGeral is the fallback when keyword inference finds
// nothing more specific.
const (
	ThemeMarketing        = "Marketing"
	ThemeVendas           = "Vendas"
	ThemeFinancas         = "Finanças"
	ThemeGestao           = "Gestão"
	ThemeInovacao         = "Inovação"
	ThemePessoas          = "Pessoas"
	ThemeOperacoes        = "Operações"
	ThemeJuridico         = "Jurídico"
	ThemeSustentabilidade = "Sustentabilidade"
	ThemeExportacao       = "Exportação"
	ThemeEmpreendedorismo = "Empreendedorismo"
	ThemeGeral            = "Geral"
)

// SolutionRecord is one consulting solution (course, consultancy, workshop...)
// in the canonical catalog. Name, Description, Modality, Theme and Source are
// guaranteed non-nil after merge; Link, Price, ScheduledDate and CollectedAt
// are optional extras some sources carry.
type SolutionRecord struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Modality      string `json:"modality"`
	Theme         string `json:"theme"`
	Source        string `json:"source"`
	Link          string `json:"link,omitempty"`
	Price         string `json:"price,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	CollectedAt   string `json:"collected_at,omitempty"`
}

// Key returns the case-insensitive (name, source) dedup key. After a merge no
// two catalog records share the same key.
func (s SolutionRecord) Key() string {
	return strings.ToLower(strings.TrimSpace(s.Name)) + "\x00" + strings.ToLower(strings.TrimSpace(s.Source))
}
