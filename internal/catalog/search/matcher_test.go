package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesShortQueryExactOnly(t *testing.T) {
	// Two runes or fewer never match by substring
	assert.False(t, Matches("자", []string{"자메이카"}))
	assert.False(t, Matches("aa", []string{"kenya aa top lot"}))

	// But exact equality still works
	assert.True(t, Matches("자", []string{"자"}))
	assert.True(t, Matches("AA", []string{"aa"}))
	assert.True(t, Matches(" a a ", []string{"AA"}))
}

func TestMatchesSubstring(t *testing.T) {
	assert.True(t, Matches("예가체프", []string{"에티오피아 예가체프 G1"}))
	assert.True(t, Matches("yirgacheffe", []string{"Ethiopia Yirgacheffe"}))
	assert.True(t, Matches("Yirga Cheffe", []string{"ethiopiayirgacheffe"}))

	// Containment is one-directional: query longer than candidate never matches
	assert.False(t, Matches("에티오피아 예가체프 G1", []string{"예가체프"}))
	assert.False(t, Matches("yirgacheffe", []string{"yirga"}))
}

func TestMatchesEmptyQuery(t *testing.T) {
	assert.False(t, Matches("", []string{"anything"}))
	assert.False(t, Matches("   ", []string{"anything"}))
}

func TestMatchesAnyCandidate(t *testing.T) {
	candidates := []string{"Kenya AA", "Ethiopia Yirgacheffe", "예가체프"}
	assert.True(t, Matches("ethiopia", candidates))
	assert.True(t, Matches("예가", candidates))
	assert.False(t, Matches("colombia", candidates))
	assert.False(t, Matches("anything", nil))
}
