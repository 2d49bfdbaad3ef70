package abbrevgo

import (
	"fmt"
	"strings"

	"github.com/hupe1980/abbrevgo/internal/bitmap"
)

// FindEntries returns the entries best matching pattern, filtered by
// tag-mask intersection when tflags is non-zero, with lower-priority
// tiers displaced by higher ones. Entries are returned in registration
// order. An empty result means no match; queries never fail.
func (m *Matcher[V]) FindEntries(pattern string, tflags uint32) []*Entry[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findEntriesLocked(pattern, tflags)
}

func (m *Matcher[V]) findEntriesLocked(pattern string, tflags uint32) []*Entry[V] {
	res := m.filterLocked(m.xfindAll(pattern), tflags)
	m.logger.LogQuery(pattern, len(res))
	return res
}

// filterLocked applies the tag mask and the priority tiers to a raw
// candidate set.
func (m *Matcher[V]) filterLocked(cands *bitmap.Set, tflags uint32) []*Entry[V] {
	if tflags != 0 {
		var sets []*bitmap.Set
		for bit := uint32(0); bit < 32; bit++ {
			if tflags&(1<<bit) != 0 {
				if s, ok := m.tagBits[bit]; ok {
					sets = append(sets, s)
				}
			}
		}
		cands = cands.And(bitmap.Union(sets...))
	}
	if cands.IsEmpty() {
		return nil
	}

	// The caller's recorded priority for its mask acts as a floor.
	best, haveFloor := 0.0, false
	if tflags != 0 {
		if p, ok := m.priorities[tflags&tflagTierMask]; ok {
			best, haveFloor = p, true
		}
	}
	haveBest := haveFloor
	for pos := range cands.All() {
		p := m.priorities[m.entries[pos].tflags&tflagTierMask]
		if !haveBest || p > best {
			best, haveBest = p, true
		}
	}

	var out []*Entry[V]
	for pos := range cands.All() {
		if m.priorities[m.entries[pos].tflags&tflagTierMask] == best {
			out = append(out, m.entries[pos])
		}
	}
	return out
}

// FindAll returns the value-deduplicated payloads of FindEntries. When
// the legacy cross-check is enabled, the old scorer runs alongside and
// any disagreement between the compressed result sets is logged; the
// primary scorer's answer is always the one returned.
func (m *Matcher[V]) FindAll(pattern string, tflags uint32) []V {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findAllLocked(pattern, tflags)
}

func (m *Matcher[V]) findAllLocked(pattern string, tflags uint32) []V {
	vals := dedupValues(m.findEntriesLocked(pattern, tflags))
	if m.crossCheck {
		legacy := dedupValues(m.filterLocked(m.legacyFindAll(pattern), tflags))
		if !sameValues(vals, legacy) {
			m.logger.LogDivergence(pattern, describe(vals), describe(legacy))
		}
	}
	return vals
}

// Find1 returns the single payload matching pattern, or false when the
// match is empty or ambiguous.
func (m *Matcher[V]) Find1(pattern string, tflags uint32) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	vals := m.findAllLocked(pattern, tflags)
	if len(vals) == 1 {
		return vals[0], true
	}
	var zero V
	return zero, false
}

// FindPedantic behaves like FindAll when the result is unambiguous or
// the pattern carries an explicit wildcard; otherwise it suppresses the
// ambiguous plain-text match and returns nothing.
func (m *Matcher[V]) FindPedantic(pattern string, tflags uint32) []V {
	m.mu.Lock()
	defer m.mu.Unlock()
	vals := m.findAllLocked(pattern, tflags)
	if len(vals) <= 1 || strings.Contains(pattern, "*") {
		return vals
	}
	return nil
}

func dedupValues[V comparable](entries []*Entry[V]) []V {
	var out []V
	seen := make(map[V]struct{}, len(entries))
	for _, e := range entries {
		v := e.Value()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func sameValues[V comparable](a, b []V) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[V]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

func describe[V comparable](vals []V) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprintf("%v", v)
	}
	return out
}
