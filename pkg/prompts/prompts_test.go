package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radar-ali360/radar-engine/pkg/apperrors"
	"github.com/radar-ali360/radar-engine/pkg/models"
)

func sampleCompany() models.CompanyProfile {
	return models.CompanyProfile{
		Name:         "Empresa A",
		City:         "Belo Horizonte",
		Regional:     "Central",
		Sector:       "Comércio",
		Challenge:    "Vendas",
		SpecificNeed: "Aumentar o faturamento",
		Maturity:     "2.5",
		Stage:        models.StageElaborar,
	}
}

func TestBuildRecommendationPrompt(t *testing.T) {
	sample := []models.SolutionRecord{
		{Name: "Curso de Estratégias de Vendas", Modality: "Curso", Theme: "Vendas", Description: "Técnicas práticas de vendas"},
		{Name: "Consultoria de Marketing", Modality: "Consultoria", Theme: "Marketing"},
	}
	scheduled := []models.SolutionRecord{
		{Name: "Workshop de Inovação", Modality: "Evento", ScheduledDate: "2026-10-01"},
	}

	prompt, err := BuildRecommendationPrompt(sampleCompany(), sample, scheduled, 3)
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Nome: Empresa A")
	assert.Contains(t, prompt, "- Desafio priorizado: Vendas")
	assert.Contains(t, prompt, "1. Curso de Estratégias de Vendas: Curso | Vendas | Técnicas práticas de vendas")
	assert.Contains(t, prompt, "Soluções já agendadas")
	assert.Contains(t, prompt, "Workshop de Inovação")
	// The format instruction demands exact catalog names.
	assert.Contains(t, prompt, "nome EXATO")
	assert.Contains(t, prompt, "1. [Nome da Solução 1]: [Justificativa detalhada]")
}

func TestBuildRecommendationPrompt_EmptyCatalog(t *testing.T) {
	_, err := BuildRecommendationPrompt(sampleCompany(), nil, nil, 3)
	assert.ErrorIs(t, err, apperrors.ErrEmptyCatalog)
}

func TestBuildRecommendationPrompt_TruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("descrição muito longa ", 30)
	sample := []models.SolutionRecord{{Name: "Curso X", Modality: "Curso", Theme: "Geral", Description: long}}

	prompt, err := BuildRecommendationPrompt(sampleCompany(), sample, nil, 3)
	require.NoError(t, err)
	assert.NotContains(t, prompt, long)
	assert.Contains(t, prompt, "...")
}

func TestBuildAdherencePrompt(t *testing.T) {
	solution := models.SolutionRecord{Name: "Workshop Y", Theme: "Inovação", Modality: "Evento"}
	companies := []models.CompanyProfile{
		{Name: "Empresa 1", Sector: "Indústria", Challenge: "Processos"},
		{Name: "Empresa 2", Sector: "Serviços", Challenge: "Marketing"},
	}

	prompt, err := BuildAdherencePrompt(solution, companies)
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Nome: Workshop Y")
	assert.Contains(t, prompt, "Empresa 1: Empresa 1")
	assert.Contains(t, prompt, "Empresa 2: Empresa 2")
	assert.Contains(t, prompt, "[Pontuação]/10")
}

func TestBuildAdherencePrompt_CapsAtTenCompanies(t *testing.T) {
	solution := models.SolutionRecord{Name: "Workshop Y"}
	companies := make([]models.CompanyProfile, 14)
	for i := range companies {
		companies[i] = models.CompanyProfile{Name: "Empresa"}
	}

	prompt, err := BuildAdherencePrompt(solution, companies)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Empresa 10:")
	assert.NotContains(t, prompt, "Empresa 11:")
}

func TestBuildAdherencePrompt_NoCompanies(t *testing.T) {
	_, err := BuildAdherencePrompt(models.SolutionRecord{Name: "Workshop Y"}, nil)
	assert.Error(t, err)
}

func TestBuildSuggestionPrompt(t *testing.T) {
	agg := models.RegionalAggregates{
		Regional:             "Sul de Minas",
		TopChallenges:        []models.CountItem{{Label: "Vendas", Count: 12}, {Label: "Gestão", Count: 7}},
		TopSectors:           []models.CountItem{{Label: "Agronegócio", Count: 9}},
		MaturityDistribution: []models.CountItem{{Label: "Inicial", Count: 15}},
		TotalCompanies:       21,
	}
	scheduled := []models.SolutionRecord{{Name: "Curso de Gestão", Modality: "Curso", Theme: "Gestão"}}

	prompt := BuildSuggestionPrompt(agg, scheduled, 5)

	assert.Contains(t, prompt, "- Vendas: 12 empresas")
	assert.Contains(t, prompt, "- Agronegócio: 9 empresas")
	assert.Contains(t, prompt, "Curso de Gestão")
	assert.Contains(t, prompt, "Sugira 5 novos cursos")
	assert.Contains(t, prompt, "- Modalidade:")
	assert.Contains(t, prompt, "- Justificativa:")
}

func TestBuildSuggestionPrompt_EmptyAggregates(t *testing.T) {
	prompt := BuildSuggestionPrompt(models.RegionalAggregates{}, nil, 0)
	assert.Contains(t, prompt, "- (sem dados)")
	assert.Contains(t, prompt, "Sugira 5 novos cursos")
}
