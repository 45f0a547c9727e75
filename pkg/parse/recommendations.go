// Package parse turns raw completion text into typed candidate records.
// The upstream generator's output format is not contractually guaranteed, so
// each response shape is parsed by a cascade of strategies, attempted in
// order, first non-empty result wins. Every strategy is a pure function of
// the text, which keeps them independently testable.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxRecommendations caps the candidate list regardless of how many entries
// the completion produced.
const MaxRecommendations = 5

// Candidate is a weakly-typed recommendation entry extracted from completion
// text. Name is free text until the entity resolver reconciles it against
// the catalog.
type Candidate struct {
	Rank          int
	Name          string
	Justification string
}

// strategy is one parsing attempt; an empty result means "try the next one".
type strategy func(text string) []Candidate

// Recommendations parses a recommendation response through the cascade:
//  1. strict `N. [Name]: justification` pattern
//  2. loose line scan tolerating missing brackets
//  3. best-effort `name: justification` colon split
//
// The result is capped at max entries (MaxRecommendations when max <= 0).
// An empty result means every strategy failed; the caller decides whether
// that is a degradation worth logging.
func Recommendations(text string, max int) []Candidate {
	if max <= 0 {
		max = MaxRecommendations
	}
	for _, s := range []strategy{parseStrict, parseLooseLines, parseColonSplit} {
		if candidates := s(text); len(candidates) > 0 {
			if len(candidates) > max {
				candidates = candidates[:max]
			}
			return candidates
		}
	}
	return nil
}

// strictHeader anchors one numbered, bracketed entry. The justification runs
// from the header's end to the next header (or end of text); RE2 has no
// lookahead, so segmentation is done on match indices.
var strictHeader = regexp.MustCompile(`(\d+)\.\s*\[([^\]]+)\]\s*:\s*`)

func parseStrict(text string) []Candidate {
	headers := strictHeader.FindAllStringSubmatchIndex(text, -1)
	candidates := make([]Candidate, 0, len(headers))

	for i, loc := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		rank, _ := strconv.Atoi(text[loc[2]:loc[3]])
		candidates = append(candidates, Candidate{
			Rank:          rank,
			Name:          strings.TrimSpace(text[loc[4]:loc[5]]),
			Justification: strings.TrimSpace(text[loc[1]:end]),
		})
	}
	return candidates
}

// parseLooseLines scans line by line. A line starting with a digit followed
// by ". " opens a new record; other lines extend the current record's
// justification. This tolerates missing brackets and reordered punctuation.
func parseLooseLines(text string) []Candidate {
	var candidates []Candidate
	var current *Candidate

	flush := func() {
		if current != nil && current.Name != "" {
			candidates = append(candidates, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rank, rest, ok := splitOrdinal(line)
		if !ok {
			if current != nil {
				current.Justification = strings.TrimSpace(current.Justification + " " + line)
			}
			continue
		}

		flush()
		name, justification := rest, ""
		if idx := strings.Index(rest, ": "); idx >= 0 {
			name, justification = rest[:idx], strings.TrimSpace(rest[idx+2:])
		}
		current = &Candidate{
			Rank:          rank,
			Name:          trimBrackets(name),
			Justification: justification,
		}
	}
	flush()
	return candidates
}

// parseColonSplit is the last resort: any line containing a colon becomes a
// record, numbered by position. Only used when both structured strategies
// yielded nothing.
func parseColonSplit(text string) []Candidate {
	var candidates []Candidate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		idx := strings.Index(line, ":")
		if idx <= 0 || idx == len(line)-1 {
			continue
		}
		name := trimBrackets(strings.TrimSpace(line[:idx]))
		justification := strings.TrimSpace(line[idx+1:])
		if name == "" || justification == "" {
			continue
		}
		if _, rest, ok := splitOrdinal(name); ok {
			name = trimBrackets(rest)
		}
		candidates = append(candidates, Candidate{
			Rank:          len(candidates) + 1,
			Name:          name,
			Justification: justification,
		})
	}
	return candidates
}

// splitOrdinal recognizes a leading "N. " marker and returns the ordinal and
// the remainder of the line.
func splitOrdinal(line string) (int, string, bool) {
	idx := strings.Index(line, ". ")
	if idx <= 0 || idx > 3 {
		return 0, "", false
	}
	rank, err := strconv.Atoi(line[:idx])
	if err != nil {
		return 0, "", false
	}
	return rank, strings.TrimSpace(line[idx+2:]), true
}

func trimBrackets(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return strings.TrimSpace(s)
}
