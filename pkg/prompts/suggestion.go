package prompts

import (
	"fmt"
	"strings"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

// BuildSuggestionPrompt renders regional aggregates and the already-scheduled
// solutions into a request for new course/solution ideas. The numbered block
// format with labeled sub-fields is what the suggestion parser expects.
func BuildSuggestionPrompt(agg models.RegionalAggregates, scheduled []models.SolutionRecord, maxSuggestions int) string {
	if maxSuggestions <= 0 {
		maxSuggestions = 5
	}

	var b strings.Builder

	b.WriteString("Você é um consultor especializado do Sebrae MG que sugere novos cursos e soluções para regiões com base em dados agregados.\n\n")

	b.WriteString("DADOS DA REGIONAL:\n\n")

	b.WriteString("Desafios mais comuns:\n")
	writeCounts(&b, agg.TopChallenges)

	b.WriteString("\nSetores mais comuns:\n")
	writeCounts(&b, agg.TopSectors)

	b.WriteString("\nDistribuição de maturidade em inovação:\n")
	writeCounts(&b, agg.MaturityDistribution)

	if len(scheduled) > 0 {
		b.WriteString("\nSoluções já agendadas:\n")
		for _, sol := range scheduled {
			b.WriteString(fmt.Sprintf("- %s: %s | %s\n", sol.Name, sol.Modality, sol.Theme))
		}
	}

	b.WriteString("\nTAREFA:\n")
	b.WriteString(fmt.Sprintf("Sugira %d novos cursos ou soluções que o Sebrae MG poderia oferecer nesta regional, considerando:\n", maxSuggestions))
	b.WriteString("1. Os desafios e necessidades mais comuns das empresas\n")
	b.WriteString("2. Os setores predominantes na região\n")
	b.WriteString("3. A distribuição de maturidade em inovação\n")
	b.WriteString("4. Evite sugerir soluções similares às já agendadas\n")
	b.WriteString("5. Para cada sugestão, explique por que seria benéfica para esta regional\n\n")

	b.WriteString("Formato da resposta:\n")
	b.WriteString("1. [Nome da Solução Sugerida]\n")
	b.WriteString("   - Modalidade: Curso, Consultoria ou Programa\n")
	b.WriteString("   - Tema: tema principal\n")
	b.WriteString("   - Descrição: breve descrição da solução\n")
	b.WriteString("   - Justificativa: por que seria benéfica\n")
	b.WriteString("2. [Nome da Solução Sugerida]\n")
	b.WriteString("   ...\n")

	return b.String()
}

func writeCounts(b *strings.Builder, items []models.CountItem) {
	if len(items) == 0 {
		b.WriteString("- (sem dados)\n")
		return
	}
	for _, item := range items {
		b.WriteString(fmt.Sprintf("- %s: %d empresas\n", item.Label, item.Count))
	}
}
