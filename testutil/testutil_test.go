package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	assert.Equal(t, a.Corpus(50, 4), b.Corpus(50, 4))
}

func TestRNG_CorpusDistinct(t *testing.T) {
	rng := NewRNG(1)
	corpus := rng.Corpus(200, 4)
	seen := make(map[string]struct{}, len(corpus))
	for _, p := range corpus {
		_, dup := seen[p]
		assert.False(t, dup, "duplicate phrase %q", p)
		seen[p] = struct{}{}
	}
	assert.Len(t, corpus, 200)
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(3)
	first := rng.Phrase(3)
	rng.Reset()
	assert.Equal(t, first, rng.Phrase(3))
	assert.Equal(t, int64(3), rng.Seed())
}
