package abbrevgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/abbrevgo/textnorm"
)

func classOf(pattern, name string) float64 {
	t := newMatchTracker(pattern)
	dedash := textnorm.SimplifyWhitespace(textnorm.Dedash(name))
	ltester := textnorm.MakeXTester(strings.ToLower(textnorm.Deaccent(name)))
	return t.matchClass(name, dedash, ltester)
}

func TestMatchTracker_Ladder(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    float64
	}{
		{"Overall merit", "Overall merit", 9},
		{"Overall-merit", "Overall merit", 8},
		{"overall-merit", "Overall merit", 7},
		{"overall merit", "Overall merit", 7},
		{"café", "cafe", 5},
		{"no such", "Overall merit", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, classOf(tt.pattern, tt.name), 1e-9,
			"matchClass(%q, %q)", tt.pattern, tt.name)
	}
}

func TestMatchTracker_WordBand(t *testing.T) {
	// A full-word prefix of the subject lands in the 6+f band; the
	// trailing unmatched word costs a skip demerit.
	c := classOf("Overall", "Overall merit")
	assert.Greater(t, c, 6.0)
	assert.Less(t, c, 7.0)
	// demerits: 4 (trailing) -> f = 1 - (4+1)/64
	assert.InDelta(t, 6+1-0.015625*5, c, 1e-9)

	// A partial word costs one more demerit.
	c = classOf("Ove", "Overall merit")
	assert.InDelta(t, 6+1-0.015625*6, c, 1e-9)
}

func TestMatchTracker_CamelBand(t *testing.T) {
	c := classOf("OveMer", "Overall merit")
	assert.Greater(t, c, 1.0)
	assert.Less(t, c, 2.0)
	// Two partial camel fragments, nothing skipped.
	assert.InDelta(t, 1+1-0.015625*3, c, 1e-9)

	assert.InDelta(t, 0, classOf("OveMer", "Overall review quality"), 1e-9)
}

func TestMatchTracker_WildcardPenalties(t *testing.T) {
	// A wildcard waives the trailing-extras penalty but still counts as
	// a partial.
	c := classOf("Ove*", "Overall merit")
	assert.InDelta(t, 6+1-0.015625*2, c, 1e-9)

	// A leading wildcard waives the skip penalty.
	c = classOf("*merit", "Overall merit")
	assert.InDelta(t, 6+1-0.015625*2, c, 1e-9)
}

func TestLegacyFindAll_AgreesOnScenarios(t *testing.T) {
	m := New[string]()
	m.AddPhrase("Overall merit", "A", 0)
	m.AddPhrase("Overall review quality", "B", 0)
	m.AddPhrase("R1 Score", "X", 0)
	m.AddPhrase("R100 Notes", "Y", 0)

	m.mu.Lock()
	defer m.mu.Unlock()
	tests := []struct {
		pattern string
		want    []uint32
	}{
		{"OveMer", []uint32{0}},
		{"overall", []uint32{0, 1}},
		{"R1", []uint32{2}},
		{"R10*", []uint32{3}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.legacyFindAll(tt.pattern).Slice(), "legacy %q", tt.pattern)
	}
}
