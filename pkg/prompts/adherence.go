package prompts

import (
	"fmt"
	"strings"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

// MaxAdherenceCompanies caps how many companies fit in one adherence prompt.
const MaxAdherenceCompanies = 10

// BuildAdherencePrompt renders one solution and up to MaxAdherenceCompanies
// companies into a single scoring request. The per-company "Empresa N" anchor
// is what the adherence parser keys on, so the numbering here and there must
// stay in lockstep. Returns an error when there are no companies to score.
func BuildAdherencePrompt(solution models.SolutionRecord, companies []models.CompanyProfile) (string, error) {
	if len(companies) == 0 {
		return "", fmt.Errorf("no companies to score")
	}
	if len(companies) > MaxAdherenceCompanies {
		companies = companies[:MaxAdherenceCompanies]
	}

	var b strings.Builder

	b.WriteString("Você é um consultor especializado do Sebrae MG que analisa a aderência de soluções para empresas.\n\n")

	b.WriteString("SOLUÇÃO A SER ANALISADA:\n")
	b.WriteString(fmt.Sprintf("- Nome: %s\n", solution.Name))
	b.WriteString(fmt.Sprintf("- Tema: %s\n", solution.Theme))
	b.WriteString(fmt.Sprintf("- Modalidade: %s\n\n", solution.Modality))

	b.WriteString("Para cada empresa abaixo, avalie a aderência desta solução em uma escala de 0 a 10, onde:\n")
	b.WriteString("- 0-3: Baixa aderência (a solução não atende às necessidades da empresa)\n")
	b.WriteString("- 4-7: Média aderência (a solução atende parcialmente às necessidades da empresa)\n")
	b.WriteString("- 8-10: Alta aderência (a solução atende muito bem às necessidades da empresa)\n\n")
	b.WriteString("Forneça também uma breve justificativa para cada avaliação.\n\n")

	b.WriteString("EMPRESAS:\n")
	for i, company := range companies {
		b.WriteString(fmt.Sprintf("\nEmpresa %d: %s\n", i+1, company.Name))
		b.WriteString(fmt.Sprintf("- Setor: %s\n", company.Sector))
		b.WriteString(fmt.Sprintf("- Desafio priorizado: %s\n", company.Challenge))
		b.WriteString(fmt.Sprintf("- Maturidade em inovação: %s\n", company.Maturity))
		b.WriteString(fmt.Sprintf("- Necessidade específica: %s\n", company.SpecificNeed))
	}

	b.WriteString("\nFORMATO DA RESPOSTA:\n")
	b.WriteString("Para cada empresa, forneça:\n")
	b.WriteString("- Empresa X: [Pontuação]/10 - [Justificativa]\n")

	return b.String(), nil
}
