// Package prompts renders company profiles, catalog samples and regional
// aggregates into the natural-language requests sent to the completion
// service. Builders are pure functions so they can be verified against
// golden substrings in tests.
package prompts

import (
	"fmt"
	"strings"

	"github.com/radar-ali360/radar-engine/pkg/apperrors"
	"github.com/radar-ali360/radar-engine/pkg/models"
)

// SystemMessage is sent with every completion request.
const SystemMessage = "Você é um consultor especializado do Sebrae MG."

// maxDescriptionLen caps solution descriptions inside prompts so a verbose
// catalog cannot blow up the prompt size.
const maxDescriptionLen = 160

// BuildRecommendationPrompt renders the company attributes, an enumerated
// catalog sample, the already-scheduled exclusions and the strict
// output-format instruction. Returns apperrors.ErrEmptyCatalog when the
// sample is empty: recommending from nothing is meaningless.
func BuildRecommendationPrompt(company models.CompanyProfile, sample []models.SolutionRecord, scheduled []models.SolutionRecord, maxRecommendations int) (string, error) {
	if len(sample) == 0 {
		return "", apperrors.ErrEmptyCatalog
	}
	if maxRecommendations <= 0 {
		maxRecommendations = 3
	}

	var b strings.Builder

	b.WriteString("Você é um consultor especializado do Sebrae MG que recomenda soluções para empresas com base em seus desafios e necessidades.\n\n")

	b.WriteString("DADOS DA EMPRESA:\n")
	b.WriteString(fmt.Sprintf("- Nome: %s\n", company.Name))
	b.WriteString(fmt.Sprintf("- Cidade/Regional: %s/%s\n", company.City, company.Regional))
	b.WriteString(fmt.Sprintf("- Setor: %s\n", company.Sector))
	b.WriteString(fmt.Sprintf("- Desafio priorizado: %s\n", company.Challenge))
	b.WriteString(fmt.Sprintf("- Maturidade em inovação: %s\n", company.Maturity))
	b.WriteString(fmt.Sprintf("- Necessidade específica: %s\n", company.SpecificNeed))
	b.WriteString(fmt.Sprintf("- Estágio do diagnóstico: %s\n\n", company.Stage))

	b.WriteString("SOLUÇÕES DISPONÍVEIS:\n")
	for i, sol := range sample {
		b.WriteString(fmt.Sprintf("%d. %s: %s | %s", i+1, sol.Name, sol.Modality, sol.Theme))
		if desc := truncate(sol.Description, maxDescriptionLen); desc != "" {
			b.WriteString(" | " + desc)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(scheduled) > 0 {
		b.WriteString("Soluções já agendadas para esta empresa ou região:\n")
		for _, sol := range scheduled {
			b.WriteString(fmt.Sprintf("- %s: %s | %s\n", sol.Name, sol.Modality, sol.ScheduledDate))
		}
		b.WriteString("\n")
	}

	b.WriteString("TAREFA:\n")
	b.WriteString(fmt.Sprintf("Recomende as %d melhores soluções do Sebrae para esta empresa, considerando:\n", maxRecommendations))
	b.WriteString("1. Alinhamento com o desafio priorizado e necessidade específica\n")
	b.WriteString("2. Adequação ao setor e maturidade da empresa\n")
	b.WriteString("3. Evite recomendar soluções já agendadas\n")
	b.WriteString("4. Para cada recomendação, explique por que é adequada para esta empresa\n\n")

	b.WriteString("Formato da resposta (use o nome EXATO da solução, como listado acima):\n")
	for i := 1; i <= maxRecommendations; i++ {
		b.WriteString(fmt.Sprintf("%d. [Nome da Solução %d]: [Justificativa detalhada]\n", i, i))
	}

	return b.String(), nil
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}
