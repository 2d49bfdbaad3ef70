package abbrevgo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/abbrevgo/testutil"
)

func TestFindEntries_TagMask(t *testing.T) {
	const (
		catReview = 0x100
		catOption = 0x200
	)
	m := New[string]()
	m.AddPhrase("Overall merit", "A", catReview)
	m.AddPhrase("Overall standing", "B", catOption)

	byName := func(ents []*Entry[string]) []string {
		out := make([]string, len(ents))
		for i, e := range ents {
			out[i] = e.Name()
		}
		return out
	}

	assert.Equal(t, []string{"Overall merit", "Overall standing"},
		byName(m.FindEntries("overall", 0)))
	assert.Equal(t, []string{"Overall merit"},
		byName(m.FindEntries("overall", catReview)))
	assert.Equal(t, []string{"Overall standing"},
		byName(m.FindEntries("overall", catOption)))
	assert.Empty(t, m.FindEntries("overall", 0x400))

	// Every returned entry intersects the mask.
	for _, e := range m.FindEntries("overall", catReview|catOption) {
		assert.NotZero(t, e.TFlags()&(catReview|catOption))
	}
}

func TestFindEntries_Priorities(t *testing.T) {
	m := New[string]()
	m.AddPhrase("Overall merit", "A", 1)
	m.AddPhrase("Overall standing", "B", 2)

	assert.Equal(t, []string{"A", "B"}, m.FindAll("overall", 0))

	m.SetPriority(2, 1.0)
	assert.Equal(t, []string{"B"}, m.FindAll("overall", 0))

	m.SetPriority(1, 2.0)
	assert.Equal(t, []string{"A"}, m.FindAll("overall", 0))
}

func TestFindEntries_PriorityFloor(t *testing.T) {
	m := New[string]()
	m.AddPhrase("Overall merit", "A", 1)

	// The caller's recorded priority for its mask is a floor: when it
	// exceeds every candidate's priority, nothing survives.
	m.SetPriority(3, 7.0)
	assert.Empty(t, m.FindEntries("overall", 3))

	m.SetPriority(1, 7.0)
	assert.Len(t, m.FindEntries("overall", 3), 1)
}

func TestFind1(t *testing.T) {
	m := New[string]()
	m.AddPhrase("Overall merit", "A", 0)
	m.AddPhrase("Overall review quality", "B", 0)

	v, ok := m.Find1("OveMer", 0)
	require.True(t, ok)
	assert.Equal(t, "A", v)

	_, ok = m.Find1("overall", 0)
	assert.False(t, ok, "ambiguous")
	_, ok = m.Find1("zzz", 0)
	assert.False(t, ok, "no match")
}

func TestFindPedantic(t *testing.T) {
	m := New[string]()
	m.AddPhrase("Overall merit", "A", 0)
	m.AddPhrase("Overall review quality", "B", 0)

	assert.Equal(t, []string{"A"}, m.FindPedantic("OveMer", 0))
	assert.Empty(t, m.FindPedantic("overall", 0), "ambiguous plain text is suppressed")
	assert.Equal(t, []string{"A", "B"}, m.FindPedantic("Ove*", 0), "explicit wildcard is allowed")
}

func TestFindAll_Memoized(t *testing.T) {
	m := New[string]()
	m.AddPhrase("Overall merit", "A", 0)
	m.AddPhrase("Overall review quality", "B", 0)

	first := m.FindAll("overall", 0)
	second := m.FindAll("overall", 0)
	assert.Equal(t, first, second)

	// A phrase addition invalidates memoized results.
	m.AddPhrase("Overall", "C", 0)
	assert.Equal(t, []string{"C"}, m.FindAll("overall", 0), "exact name wins after insert")
}

func TestFindAll_ValueDedup(t *testing.T) {
	m := New[string]()
	m.AddPhrase("Overall merit", "A", 0)
	m.AddPhrase("Overall merit score", "A", 0)

	assert.Equal(t, []string{"A"}, m.FindAll("overall*", 0))
}

func TestFindAll_WildcardMonotonic(t *testing.T) {
	m := New[string]()
	m.AddPhrase("Overall merit", "A", 0)
	m.AddPhrase("Overall review quality", "B", 0)
	m.AddPhrase("R1 Score", "X", 0)
	m.AddPhrase("R100 Notes", "Y", 0)

	for _, p := range []string{"overall", "R1", "Ove", "score"} {
		base := m.FindAll(p, 0)
		wide := m.FindAll(p+"*", 0)
		set := make(map[string]struct{}, len(wide))
		for _, v := range wide {
			set[v] = struct{}{}
		}
		for _, v := range base {
			_, ok := set[v]
			assert.True(t, ok, "FindAll(%q) must be a subset of FindAll(%q)", p, p+"*")
		}
	}
}

func TestFindAll_CrossCheck(t *testing.T) {
	m := New[string](WithCrossCheck())
	m.AddPhrase("Overall merit", "A", 0)
	m.AddPhrase("Overall review quality", "B", 0)
	m.AddPhrase("R1 Score", "X", 0)

	// The legacy scorer runs alongside; the primary answer is returned
	// either way.
	assert.Equal(t, []string{"A"}, m.FindAll("OveMer", 0))
	assert.Equal(t, []string{"A", "B"}, m.FindAll("overall", 0))
	assert.Equal(t, []string{"X"}, m.FindAll("R1", 0))
}

func TestFindAll_SubsetOfValues(t *testing.T) {
	m := New[string]()
	vals := map[string]struct{}{}
	for i, name := range []string{"Overall merit", "Reviewer expertise", "Paper summary"} {
		v := fmt.Sprintf("v%d", i)
		vals[v] = struct{}{}
		m.AddPhrase(name, v, 0)
	}
	for _, p := range []string{"overall", "rev*", "summary", "paper"} {
		for _, v := range m.FindAll(p, 0) {
			_, ok := vals[v]
			assert.True(t, ok)
		}
	}
}

func TestMatcher_LargeCorpusAnalysis(t *testing.T) {
	rng := testutil.NewRNG(42)
	m := New[int](WithAnalyzeWorkers(4))
	for i, p := range rng.Corpus(500, 4) {
		m.AddPhraseLazy(p, func() int { return i + 1 }, 0)
	}

	// The first query analyzes the whole backlog in parallel; results
	// must match a sequentially analyzed matcher.
	seq := New[int](WithAnalyzeWorkers(1))
	rng.Reset()
	for i, p := range rng.Corpus(500, 4) {
		seq.AddPhraseLazy(p, func() int { return i + 1 }, 0)
	}
	for _, pat := range []string{"overall", "RevExp", "café", "R1", "track*"} {
		assert.Equal(t, seq.FindAll(pat, 0), m.FindAll(pat, 0), "pattern %q", pat)
	}
}

func BenchmarkFindAll(b *testing.B) {
	rng := testutil.NewRNG(1)
	m := New[int]()
	for i, p := range rng.Corpus(1000, 4) {
		m.AddPhrase(p, i+1, 0)
	}
	m.FindAll("warmup", 0)

	patterns := []string{"OveMer", "overall", "Rev*", "R1", "paper summary"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := patterns[i%len(patterns)]
		// Defeat the per-pattern cache to measure scoring.
		m.AddPhrase(fmt.Sprintf("bench %d", i), i+1_000_000, 0)
		m.FindAll(p, 0)
	}
}
