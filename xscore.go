package abbrevgo

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/hupe1980/abbrevgo/internal/bitmap"
	"github.com/hupe1980/abbrevgo/textnorm"
)

// xquery is a compiled query for the primary scorer: the segmented
// pattern plus the tester-scanning regex derived from it.
type xquery struct {
	atoms       []patAtom
	camel       bool
	re          *regexp.Regexp
	anyStar     bool
	leadingStar bool
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// splitCamelAtoms segments a camel-cased pattern: an uppercase letter
// with a lowercase tail forms one atom, a run of bare uppercase letters
// becomes independent single-letter atoms, and digit runs form numeric
// atoms. '*' attaches to the atom it follows.
func splitCamelAtoms(s string) []patAtom {
	rs := []rune(s)
	var atoms []patAtom
	i := 0
	tail := func(r rune) bool {
		return isASCIILower(r) || r == '~' || r == '?' || r == '!' || r == '*'
	}
	for i < len(rs) {
		r := rs[i]
		switch {
		case isASCIIUpper(r) && i+1 < len(rs) && isASCIILower(rs[i+1]):
			j := i + 1
			for j < len(rs) && tail(rs[j]) {
				j++
			}
			atoms = append(atoms, patAtom{text: string(rs[i:j])})
			i = j
		case isASCIIUpper(r):
			atoms = append(atoms, patAtom{text: string(r)})
			i++
		case isASCIILower(r) || r == '~':
			j := i
			for j < len(rs) && tail(rs[j]) {
				j++
			}
			atoms = append(atoms, patAtom{text: string(rs[i:j])})
			i = j
		case isASCIIDigit(r) || r == '.':
			j := i
			for j < len(rs) && (isASCIIDigit(rs[j]) || rs[j] == '.' || rs[j] == '*') {
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

// splitPlainAtoms segments a non-camel pattern into alphabetic and
// numeric tokens; everything else is word-separating.
func splitPlainAtoms(s string) []patAtom {
	rs := []rune(s)
	var atoms []patAtom
	alpha := func(r rune) bool {
		return unicode.IsLetter(r) || r == '~' || r == '?' || r == '!' || r == '*'
	}
	i := 0
	for i < len(rs) {
		switch r := rs[i]; {
		case alpha(r):
			j := i
			for j < len(rs) && alpha(rs[j]) {
				j++
			}
			atoms = append(atoms, patAtom{text: string(rs[i:j])})
			i = j
		case isASCIIDigit(r) || r == '.':
			j := i
			for j < len(rs) && (isASCIIDigit(rs[j]) || rs[j] == '.' || rs[j] == '*') {
				j++
			}
			// A lone dot run carries no token.
			if t := string(rs[i:j]); strings.Trim(t, ".") != "" {
				atoms = append(atoms, patAtom{text: t, numeric: true})
			}
			i = j
		default:
			i++
		}
	}
	return atoms
}

// compileXQuery canonicalizes and segments a pattern and builds its
// tester regex. Returns nil when the pattern holds no atom.
func compileXQuery(pattern string) *xquery {
	cpat := textnorm.SimplifyWhitespace(textnorm.Deaccent(pattern))
	if cpat == "" {
		return nil
	}
	camel := !strings.Contains(cpat, " ") && textnorm.IsCamelWord(cpat)
	var atoms []patAtom
	if camel {
		atoms = splitCamelAtoms(cpat)
	} else {
		atoms = splitPlainAtoms(cpat)
	}
	if len(atoms) == 0 {
		return nil
	}
	for i := range atoms {
		atoms[i].text = strings.ToLower(atoms[i].text)
		atoms[i].wild = strings.Contains(atoms[i].text, "*")
	}

	var b strings.Builder
	b.WriteByte(' ')
	for i, a := range atoms {
		if i > 0 {
			if camel {
				b.WriteString(`(?:.*? )??`)
			} else {
				b.WriteString(`.*? `)
			}
		}
		b.WriteString(regexp.QuoteMeta(a.text))
	}
	if last := atoms[len(atoms)-1]; last.numeric {
		// RE2 has no lookahead; (?:$|[^0-9]) stands in for (?![0-9]).
		b.WriteString(`(?:$|[^0-9])`)
	}
	rx := strings.ReplaceAll(b.String(), `\*`, `.*`)

	return &xquery{
		atoms:       atoms,
		camel:       camel,
		re:          regexp.MustCompile(rx),
		anyStar:     strings.Contains(cpat, "*"),
		leadingStar: strings.HasPrefix(cpat, "*"),
	}
}

// status classifies how cleanly the query matched a tester, per the
// primary scorer's ranking. Higher is better; only the relative order
// within one query matters.
func (q *xquery) status(tester string, keyword bool) int {
	r := matchTester(q.atoms, q.camel, tester)
	if !r.ok {
		return 0
	}
	if q.anyStar {
		if r.skippedAllStops(textnorm.IsStopWord) {
			return 1
		}
		return 0
	}
	switch {
	case !r.anySkipped() && r.allFull:
		return 3
	case r.skippedAllStops(textnorm.IsStopWord) && !keyword:
		return 2
	case r.allFull && !keyword:
		return 1
	}
	return 0
}

// xfindAll is the primary scorer path: canonicalize the pattern,
// pre-filter testers by regex, then keep only the entries achieving the
// best match status. Results are memoized per pattern.
func (m *Matcher[V]) xfindAll(pattern string) *bitmap.Set {
	if s, ok := m.xmatchCache[pattern]; ok {
		return s
	}
	m.analyzeLocked()

	res := bitmap.New()
	q := compileXQuery(pattern)
	if q == nil {
		m.xmatchCache[pattern] = res
		return res
	}
	lpat := strings.ToLower(textnorm.SimplifyWhitespace(textnorm.Deaccent(pattern)))
	exact := " " + lpat

	for i, lt := range m.ltesters {
		if lt == "" {
			continue
		}
		if lt == exact || q.re.MatchString(lt) {
			res.Add(uint32(i))
		}
	}

	if res.Len() > 1 && !q.leadingStar {
		best := -1
		statuses := make(map[uint32]int, res.Len())
		for i := range res.All() {
			lt := m.ltesters[i]
			st := 0
			if lt == exact {
				st = 3
			} else {
				st = q.status(lt, m.entries[i].IsKeyword())
			}
			statuses[i] = st
			if st > best {
				best = st
			}
		}
		kept := bitmap.New()
		for i := range res.All() {
			if statuses[i] == best {
				kept.Add(i)
			}
		}
		res = kept
	}

	m.xmatchCache[pattern] = res
	return res
}
