package search

import (
	"strings"
	"unicode"
)

// Normalize reduces a string to its canonical comparable form: lower-cased
// with every whitespace rune removed. It is pure and idempotent, and is the
// only string-comparison primitive the matcher uses.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
