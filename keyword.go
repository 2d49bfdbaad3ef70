package abbrevgo

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hupe1980/abbrevgo/textnorm"
)

// KeywordStyle selects the shape of a synthesized keyword, optionally
// combined with KeywordEnsure.
type KeywordStyle uint32

const (
	// KeywordCamel contracts each word to a title-cased three-letter
	// chunk and concatenates: "A Study of the New Systems" -> "StuSys"
	// (stop words are dropped first when the rest stays unique).
	KeywordCamel KeywordStyle = 0
	// KeywordUnderscore joins the lowercased words with underscores.
	KeywordUnderscore KeywordStyle = 1
	// KeywordDash joins the lowercased words with dashes.
	KeywordDash KeywordStyle = 2

	keywordShapeMask KeywordStyle = 0x0F

	// KeywordEnsure forces a result: when no natural candidate is
	// unique, a numbered alias is installed into the index so that the
	// returned keyword resolves unambiguously from then on.
	KeywordEnsure KeywordStyle = 0x10
)

// FindEntryKeyword synthesizes a short keyword that resolves
// unambiguously to e under FindEntries with the given tag mask.
// Returns false when no candidate is unique and KeywordEnsure is not
// set.
func (m *Matcher[V]) FindEntryKeyword(e *Entry[V], style KeywordStyle, tflags uint32) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entryKeywordLocked(e, style, tflags)
}

// EnsureEntryKeyword behaves like FindEntryKeyword with KeywordEnsure
// set: it always produces a keyword, installing a fresh alias entry
// when necessary. Applied twice it returns the same string.
func (m *Matcher[V]) EnsureEntryKeyword(e *Entry[V], style KeywordStyle, tflags uint32) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	kw, _ := m.entryKeywordLocked(e, style|KeywordEnsure, tflags)
	return kw
}

func (m *Matcher[V]) entryKeywordLocked(e *Entry[V], style KeywordStyle, tflags uint32) (string, bool) {
	ensure := style&KeywordEnsure != 0
	shape := style & keywordShapeMask

	name := e.name
	if stripped := textnorm.StripParens(name); stripped != "" && stripped != name {
		if m.resolvesToLocked(stripped, e, tflags) {
			name = stripped
		}
	}
	tokens := keywordTokens(name)
	if len(tokens) == 0 {
		return "", false
	}
	if len(tokens) > 2 {
		kept := tokens[:0:0]
		for _, t := range tokens {
			if !textnorm.IsStopWord(t) {
				kept = append(kept, t)
			}
		}
		if len(kept) > 0 && len(kept) < len(tokens) &&
			m.resolvesToLocked(strings.Join(kept, " "), e, tflags) {
			tokens = kept
		}
	}

	var cands []string
	var numberSep string
	switch shape {
	case KeywordUnderscore:
		cands = []string{strings.Join(tokens, "_")}
		numberSep = "_"
	case KeywordDash:
		cands = []string{strings.Join(tokens, "-")}
		numberSep = "-"
	default:
		cands = camelCandidates(tokens)
		numberSep = "."
	}

	for _, c := range cands {
		if m.resolvesToLocked(c, e, tflags) {
			if ensure && shape == KeywordCamel && len(tokens) > 1 {
				if l := strings.ToLower(c); !m.hasKeywordLocked(l) {
					m.addKeywordLocked(l, e.box, e.tflags)
				}
			}
			return c, true
		}
	}
	if !ensure {
		return "", false
	}

	base := cands[0]
	for n := 1; ; n++ {
		c := fmt.Sprintf("%s%s%d", base, numberSep, n)
		if m.resolvesToLocked(c, e, tflags) {
			return c, true
		}
		if len(m.findEntriesLocked(c, tflags)) == 0 {
			m.addKeywordLocked(c, e.box, e.tflags)
			return c, true
		}
	}
}

// resolvesToLocked reports whether every entry the pattern finds under
// the mask carries e's payload, and at least one does.
func (m *Matcher[V]) resolvesToLocked(pattern string, e *Entry[V], tflags uint32) bool {
	ents := m.findEntriesLocked(pattern, tflags)
	if len(ents) == 0 {
		return false
	}
	for _, r := range ents {
		if !sameValue(r, e) {
			return false
		}
	}
	return true
}

func (m *Matcher[V]) hasKeywordLocked(lname string) bool {
	for _, e := range m.entries {
		if e.IsKeyword() && strings.ToLower(e.name) == lname {
			return true
		}
	}
	return false
}

// keywordTokens tokenizes a name for synthesis, keeping only
// alphanumeric runes so the generated shapes stay clean.
func keywordTokens(name string) []string {
	var tokens []string
	for _, t := range strings.Fields(textnorm.MakeXTester(strings.ToLower(name))) {
		var b strings.Builder
		for _, r := range t {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
		}
	}
	return tokens
}

func titleToken(t string) string {
	rs := []rune(t)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// camelCandidates builds the camel-shape candidates in preference
// order: the contraction of every word first, then three-word windows
// advancing the start by one. A single word is used whole when short,
// otherwise its six- and three-rune prefixes are tried.
func camelCandidates(tokens []string) []string {
	if len(tokens) == 1 {
		w := titleToken(tokens[0])
		rs := []rune(w)
		if len(rs) < 7 {
			return []string{w}
		}
		return []string{string(rs[:6]), string(rs[:3])}
	}
	join := func(ts []string) string {
		var b strings.Builder
		prevDigit := false
		for _, t := range ts {
			rs := []rune(t)
			if len(rs) > 3 {
				rs = rs[:3]
			}
			c := titleToken(string(rs))
			if prevDigit && isASCIIDigit(rune(c[0])) {
				// Keep consecutive digit chunks apart.
				b.WriteByte('_')
			}
			b.WriteString(c)
			prevDigit = isASCIIDigit(rune(c[len(c)-1]))
		}
		return b.String()
	}
	cands := []string{join(tokens)}
	if len(tokens) > 3 {
		for s := 0; s+3 <= len(tokens); s++ {
			cands = append(cands, join(tokens[s:s+3]))
		}
	}
	return cands
}
