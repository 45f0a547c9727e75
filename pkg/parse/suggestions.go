package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

// MaxSuggestions caps the suggestion list.
const MaxSuggestions = 5

// suggestionHeader anchors one numbered suggestion block ("1. ..." or "1) ...").
var suggestionHeader = regexp.MustCompile(`(?m)^\s*(\d+)[.)]\s+(.*)$`)

// bracketName extracts the bracketed solution name from a block header.
var bracketName = regexp.MustCompile(`\[([^\]]+)\]`)

// headerModality extracts a parenthesised modality from a block header, as
// in "1. [Nome] (Modalidade: Curso): ...".
var headerModality = regexp.MustCompile(`\(([^)]+)\)`)

// fieldLabel recognizes labeled sub-field lines, with or without a leading
// list marker: "- Modalidade: Curso", "Tema: Vendas".
var fieldLabel = regexp.MustCompile(`(?i)^[-*•]?\s*(Modalidade|Tema|Descrição|Descricao|Justificativa)\s*:\s*(.*)$`)

// Suggestions parses a course-suggestion response. The primary strategy
// requires bracketed names in the numbered block headers; when no block has
// one, a fallback accepts plain headers and leans on the "- Label:" markers
// alone. The result is capped at max entries (MaxSuggestions when max <= 0).
func Suggestions(text string, max int) []models.CourseSuggestion {
	if max <= 0 {
		max = MaxSuggestions
	}

	suggestions := parseSuggestionBlocks(text, true)
	if len(suggestions) == 0 {
		suggestions = parseSuggestionBlocks(text, false)
	}
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}

// parseSuggestionBlocks segments the text on numbered headers and extracts
// one suggestion per block. requireBracket selects the primary (bracketed
// name) or fallback (plain header) behavior.
func parseSuggestionBlocks(text string, requireBracket bool) []models.CourseSuggestion {
	headers := suggestionHeader.FindAllStringSubmatchIndex(text, -1)
	var suggestions []models.CourseSuggestion

	for i, loc := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}

		rank, _ := strconv.Atoi(text[loc[2]:loc[3]])
		headerLine := strings.TrimSpace(text[loc[4]:loc[5]])
		body := text[loc[5]:end]

		sug, ok := parseSuggestionBlock(rank, headerLine, body, requireBracket)
		if !ok {
			continue
		}
		suggestions = append(suggestions, sug)
	}
	return suggestions
}

func parseSuggestionBlock(rank int, headerLine, body string, requireBracket bool) (models.CourseSuggestion, bool) {
	sug := models.CourseSuggestion{Rank: rank}

	if m := bracketName.FindStringSubmatch(headerLine); m != nil {
		sug.Name = strings.TrimSpace(m[1])
	} else if requireBracket {
		return models.CourseSuggestion{}, false
	}

	// Header remainder: "(Modalidade: Curso): justificativa" or plain
	// "Nome da solução: justificativa".
	rest := bracketName.ReplaceAllString(headerLine, "")
	if m := headerModality.FindStringSubmatch(rest); m != nil {
		sug.Modality = cleanModality(m[1])
		rest = headerModality.ReplaceAllString(rest, "")
	}
	rest = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(rest), ":"))
	if sug.Name == "" {
		if idx := strings.Index(rest, ":"); idx > 0 {
			sug.Name = strings.TrimSpace(rest[:idx])
			sug.Justification = strings.TrimSpace(rest[idx+1:])
		} else {
			sug.Name = rest
		}
	} else if rest != "" {
		sug.Justification = rest
	}

	if sug.Name == "" {
		return models.CourseSuggestion{}, false
	}

	// Labeled sub-fields in the block body; unlabeled lines extend the
	// field seen last, justification by default.
	lastField := &sug.Justification
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := fieldLabel.FindStringSubmatch(line); m != nil {
			value := strings.TrimSpace(m[2])
			switch strings.ToLower(m[1]) {
			case "modalidade":
				sug.Modality = cleanModality(value)
				lastField = &sug.Modality
			case "tema":
				sug.Theme = value
				lastField = &sug.Theme
			case "descrição", "descricao":
				sug.Description = value
				lastField = &sug.Description
			case "justificativa":
				sug.Justification = value
				lastField = &sug.Justification
			}
			continue
		}
		*lastField = strings.TrimSpace(*lastField + " " + line)
	}

	if sug.Modality == "" {
		sug.Modality = "Não especificado"
	}
	return sug, true
}

// cleanModality strips the "Modalidade:" prefix models sometimes echo inside
// the parenthesised header form.
func cleanModality(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(strings.ToLower(s), "modalidade:"); idx == 0 {
		s = strings.TrimSpace(s[len("modalidade:"):])
	}
	return s
}
