package resolve

import (
	"strings"
	"unicode"
)

// Normalize lowers the text and reduces it to letter/digit runs separated by
// single spaces. Accented letters are kept as-is; punctuation and symbol
// runs collapse into one space. The output is the comparison form used by
// the fuzzy pass.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	space := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		space = true
	}
	return b.String()
}
