package schema

import (
	"strings"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

// themeKeywords drives theme inference for records whose source carries no
// theme column. Probed in order; the first theme with a keyword hit wins.
var themeKeywords = []struct {
	theme    string
	keywords []string
}{
	{models.ThemeMarketing, []string{"marketing", "divulgação", "comunicação", "marca", "cliente"}},
	{models.ThemeVendas, []string{"vendas", "comercial", "negociação", "atendimento"}},
	{models.ThemeFinancas, []string{"finanças", "financeiro", "crédito", "investimento", "capital"}},
	{models.ThemeGestao, []string{"gestão", "administração", "planejamento", "estratégia"}},
	{models.ThemeInovacao, []string{"inovação", "tecnologia", "digital", "transformação"}},
	{models.ThemePessoas, []string{"pessoas", "rh", "recursos humanos", "equipe", "liderança"}},
	{models.ThemeOperacoes, []string{"operações", "processos", "produção", "logística", "qualidade"}},
	{models.ThemeJuridico, []string{"jurídico", "legal", "direito", "contrato", "legislação"}},
	{models.ThemeSustentabilidade, []string{"sustentabilidade", "ambiental", "social", "responsabilidade"}},
	{models.ThemeExportacao, []string{"exportação", "importação", "internacional", "comércio exterior"}},
	{models.ThemeEmpreendedorismo, []string{"empreendedorismo", "empreender", "novo negócio"}},
}

// InferTheme derives a theme from the record's name and description.
// Falls back to "Geral" when no keyword matches.
func InferTheme(name, description string) string {
	text := strings.ToLower(name + " " + description)
	for _, entry := range themeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.theme
			}
		}
	}
	return models.ThemeGeral
}

// InferModality derives a modality from the record's name and description.
// "Curso" is split into presential and online forms; the fallback is the
// generic "Solução".
func InferModality(name, description string) string {
	text := strings.ToLower(name + " " + description)

	switch {
	case strings.Contains(text, "consultoria"):
		return models.ModalityConsultoria
	case strings.Contains(text, "curso") || strings.Contains(text, "capacitação") || strings.Contains(text, "treinamento"):
		if strings.Contains(text, "online") || strings.Contains(text, "ead") || strings.Contains(text, "distância") {
			return models.ModalityCursoOnline
		}
		return models.ModalityCurso
	case strings.Contains(text, "programa"):
		return models.ModalityPrograma
	case strings.Contains(text, "evento") || strings.Contains(text, "workshop") || strings.Contains(text, "seminário"):
		return models.ModalityEvento
	case strings.Contains(text, "palestra"):
		return models.ModalityPalestra
	default:
		return models.ModalitySolucao
	}
}
