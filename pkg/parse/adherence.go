package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// AdherenceScore is one per-company score extracted from an adherence
// response. Found is false when the completion never mentioned the company,
// in which case Score is 0 and Justification is empty; the caller supplies
// the sentinel text.
type AdherenceScore struct {
	Index         int // 1-based company position, matching the prompt anchors
	Score         int
	Justification string
	Found         bool
}

// companyAnchor locates the "Empresa N" markers the adherence prompt asked
// the model to emit.
var companyAnchor = regexp.MustCompile(`(?i)Empresa\s+(\d+)`)

// scorePattern extracts "X/10 - justificativa" inside one company segment.
var scorePattern = regexp.MustCompile(`(?s)(\d+)\s*/\s*10\s*[-–:]?\s*(.*)`)

// Adherence parses per-company scores for companies 1..n. The text is
// segmented on "Empresa N" anchors; each segment is searched for a score out
// of 10 and its justification. Scores outside [0,10] are clamped.
func Adherence(text string, n int) []AdherenceScore {
	results := make([]AdherenceScore, n)
	for i := range results {
		results[i] = AdherenceScore{Index: i + 1}
	}

	anchors := companyAnchor.FindAllStringSubmatchIndex(text, -1)
	for i, loc := range anchors {
		idx, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil || idx < 1 || idx > n {
			continue
		}

		end := len(text)
		if i+1 < len(anchors) {
			end = anchors[i+1][0]
		}
		segment := text[loc[1]:end]

		m := scorePattern.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		score, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		// Anchors can repeat ("como vimos na Empresa 2..."); the first
		// segment with a parsable score wins.
		if results[idx-1].Found {
			continue
		}
		results[idx-1] = AdherenceScore{
			Index:         idx,
			Score:         clampScore(score),
			Justification: strings.TrimSpace(m[2]),
			Found:         true,
		}
	}
	return results
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
