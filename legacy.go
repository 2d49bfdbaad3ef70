package abbrevgo

import (
	"strings"

	"github.com/hupe1980/abbrevgo/internal/bitmap"
	"github.com/hupe1980/abbrevgo/textnorm"
)

// demeritUnit is the score cost of one demerit: 1/64 of a class point.
const demeritUnit = 0.015625

// Match classes of the legacy scorer, best first:
//
//	9    pattern equals subject exactly
//	8    dedashed pattern equals dedashed subject
//	7    case-insensitive equality of dedashed forms
//	6+f  word match, fractional quality f
//	5    accent-folded equality
//	4    dedashed accent-folded equality
//	3    case-insensitive dedashed accent-folded equality
//	1+f  accent-folded word-or-camel match
//	0    no match
type matchTracker struct {
	p   string // whitespace-simplified pattern
	pd  string // dedashed
	pa  string // accent-folded
	pad string // dedashed accent-folded

	wordAtoms  []patAtom // class 6: lowercased dedashed pattern words
	foldAtoms  []patAtom // class 1: folded plain atoms
	camelAtoms []patAtom // class 1: folded camel atoms, nil unless camel

	anyStar     bool
	leadingStar bool
}

func newMatchTracker(pattern string) *matchTracker {
	t := &matchTracker{}
	t.p = textnorm.SimplifyWhitespace(pattern)
	t.pd = textnorm.SimplifyWhitespace(textnorm.Dedash(t.p))
	t.pa = textnorm.Deaccent(t.p)
	t.pad = textnorm.SimplifyWhitespace(textnorm.Dedash(t.pa))
	t.anyStar = strings.Contains(t.p, "*")
	t.leadingStar = strings.HasPrefix(t.p, "*")

	for _, w := range strings.Fields(strings.ToLower(t.pd)) {
		t.wordAtoms = append(t.wordAtoms, patAtom{text: w, wild: strings.Contains(w, "*")})
	}
	t.foldAtoms = lowerAtoms(splitPlainAtoms(t.pad))
	if !strings.Contains(t.pad, " ") && textnorm.IsCamelWord(t.pad) {
		t.camelAtoms = lowerAtoms(legacyCamelAtoms(t.pad))
	}
	return t
}

func lowerAtoms(atoms []patAtom) []patAtom {
	for i := range atoms {
		atoms[i].text = strings.ToLower(atoms[i].text)
		atoms[i].wild = strings.Contains(atoms[i].text, "*")
	}
	return atoms
}

// legacyCamelAtoms splits a camel pattern the old scorer's way:
// lowercase runs, an uppercase letter with its lowercase tail, and
// digit runs. '*' attaches to the atom it follows.
func legacyCamelAtoms(s string) []patAtom {
	rs := []rune(s)
	var atoms []patAtom
	i := 0
	for i < len(rs) {
		switch r := rs[i]; {
		case isASCIILower(r):
			j := i
			for j < len(rs) && isASCIILower(rs[j]) {
				j++
			}
			atoms = append(atoms, patAtom{text: string(rs[i:j])})
			i = j
		case isASCIIUpper(r):
			j := i + 1
			for j < len(rs) && isASCIILower(rs[j]) {
				j++
			}
			atoms = append(atoms, patAtom{text: string(rs[i:j])})
			i = j
		case isASCIIDigit(r):
			j := i
			for j < len(rs) && isASCIIDigit(rs[j]) {
				j++
			}
			atoms = append(atoms, patAtom{text: string(rs[i:j]), numeric: true})
			i = j
		case r == '*':
			if n := len(atoms); n > 0 {
				atoms[n-1].text += "*"
			} else {
				atoms = append(atoms, patAtom{text: "*"})
			}
			i++
		default:
			i++
		}
	}
	return atoms
}

func (t *matchTracker) demerits(r walkResult) int {
	d := r.partials
	if len(r.interiorSkipped) > 0 && !t.leadingStar {
		d += 4
	}
	if len(r.trailingSkipped) > 0 && !t.anyStar {
		d += 4
	}
	return d
}

func (t *matchTracker) fraction(r walkResult) float64 {
	d := t.demerits(r)
	if d > 62 {
		d = 62
	}
	return 1 - demeritUnit*float64(d+1)
}

func (t *matchTracker) wordScore(atoms []patAtom, camel bool, subject string) float64 {
	if len(atoms) == 0 || subject == "" {
		return 0
	}
	r := matchTester(atoms, camel, subject)
	if !r.ok {
		return 0
	}
	return t.fraction(r)
}

// matchClass walks the ladder for one entry. ltester is the entry's
// cached tester string, the folded subject for the class-1 band.
func (t *matchTracker) matchClass(name, dedashName, ltester string) float64 {
	if t.p == "" {
		return 0
	}
	if t.p == name {
		return 9
	}
	if t.pd == dedashName {
		return 8
	}
	if strings.EqualFold(t.pd, dedashName) {
		return 7
	}
	subject := " " + strings.Join(strings.Fields(strings.ToLower(dedashName)), " ")
	if f := t.wordScore(t.wordAtoms, false, subject); f > 0 {
		return 6 + f
	}
	na := textnorm.Deaccent(name)
	nad := textnorm.SimplifyWhitespace(textnorm.Dedash(na))
	if t.pa == na {
		return 5
	}
	if t.pad == nad {
		return 4
	}
	if strings.EqualFold(t.pad, nad) {
		return 3
	}
	best := t.wordScore(t.foldAtoms, false, ltester)
	if len(t.camelAtoms) > 0 {
		if f := t.wordScore(t.camelAtoms, true, ltester); f > best {
			best = f
		}
	}
	if best > 0 {
		return 1 + best
	}
	return 0
}

// legacyFindAll is the old word-order scorer: rank every entry on the
// match-class ladder and retain all entries tied at the highest class.
// Kept as a cross-check against the primary scorer.
func (m *Matcher[V]) legacyFindAll(pattern string) *bitmap.Set {
	if s, ok := m.matchCache[pattern]; ok {
		return s
	}
	m.analyzeLocked()

	t := newMatchTracker(pattern)
	const eps = 1e-9
	best := 0.0
	var kept []uint32
	for i, e := range m.entries {
		c := t.matchClass(e.name, e.dedashName, m.ltesters[i])
		if c <= 0 {
			continue
		}
		if c > best+eps {
			best = c
			kept = kept[:0]
		}
		if c >= best-eps {
			kept = append(kept, uint32(i))
		}
	}
	res := bitmap.FromSlice(kept)
	m.matchCache[pattern] = res
	return res
}
