package search

import (
	"strings"
	"unicode/utf8"
)

// shortQueryLimit is the normalized length (in runes) up to which only exact
// matches are accepted. One- and two-rune queries produce too many spurious
// substring hits to be useful.
const shortQueryLimit = 2

// Matches reports whether the query matches at least one candidate string.
// Queries of normalized length <= 2 require exact equality with a normalized
// candidate; longer queries require the normalized query to be a substring of
// a normalized candidate. The containment is one-directional: a query longer
// than a candidate never matches that candidate. An empty query matches
// nothing.
func Matches(query string, candidates []string) bool {
	q := Normalize(query)
	if q == "" {
		return false
	}

	if utf8.RuneCountInString(q) <= shortQueryLimit {
		for _, candidate := range candidates {
			if Normalize(candidate) == q {
				return true
			}
		}
		return false
	}

	for _, candidate := range candidates {
		if strings.Contains(Normalize(candidate), q) {
			return true
		}
	}
	return false
}
