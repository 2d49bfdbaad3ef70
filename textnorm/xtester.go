package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

// stopWords is the closed set of tokens the matcher may skip for free.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "at": {}, "be": {}, "been": {},
	"can": {}, "did": {}, "do": {}, "for": {}, "has": {}, "how": {}, "if": {},
	"in": {}, "is": {}, "isnt": {}, "it": {}, "new": {}, "of": {}, "on": {},
	"or": {}, "that": {}, "the": {}, "their": {}, "they": {}, "this": {},
	"to": {}, "we": {}, "were": {}, "what": {}, "which": {}, "with": {}, "you": {},
}

// IsStopWord reports whether w is a stop word, case-insensitively.
func IsStopWord(w string) bool {
	_, ok := stopWords[strings.ToLower(w)]
	return ok
}

func isTesterTokenRune(r rune) bool {
	return r == '~' || r == '?' || r == '!' ||
		unicode.IsLetter(r) || unicode.IsDigit(r)
}

// MakeXTester segments s into tokens over alphanumerics, tildes, "?" and
// "!", with underscores admitted at token starts, and joins them with
// single spaces under a leading space prefix. Any other rune, including
// quotes and brackets, separates words. Returns "" when s holds no token.
func MakeXTester(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 1)
	inTok := false
	rs := []rune(s)
	for i, r := range rs {
		switch {
		case isTesterTokenRune(r):
			if !inTok {
				b.WriteByte(' ')
				inTok = true
			}
			b.WriteRune(r)
		case r == '_' && !inTok && i+1 < len(rs) && isTesterTokenRune(rs[i+1]):
			b.WriteByte(' ')
			b.WriteRune(r)
			inTok = true
		default:
			inTok = false
		}
	}
	return b.String()
}

// XTesterRemoveStops removes whole-token stop words from a tester
// string. The leading space prefix is preserved; if every token is a
// stop word the result is "".
func XTesterRemoveStops(s string) string {
	if s == "" {
		return ""
	}
	toks := strings.Fields(s)
	kept := toks[:0]
	for _, t := range toks {
		if !IsStopWord(t) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return " " + strings.Join(kept, " ")
}

var parenSegments = regexp.MustCompile(`\([^()]*\)|\[[^\[\]]*\]`)

// StripParens removes parenthesized and bracketed segments from s and
// simplifies the remaining whitespace: "Paper (draft)" -> "Paper".
// Nested groups are removed innermost-first; unbalanced delimiters are
// left alone.
func StripParens(s string) string {
	for {
		out := parenSegments.ReplaceAllString(s, " ")
		if out == s {
			return SimplifyWhitespace(out)
		}
		s = out
	}
}
