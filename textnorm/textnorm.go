package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccenter decomposes to NFD, drops combining marks, and recomposes.
var deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Deaccent strips diacritics from s, yielding an ASCII-ish form
// ("café" -> "cafe"). ASCII input is returned unchanged.
func Deaccent(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	out, _, err := transform.String(deaccenter, s)
	if err != nil {
		return s
	}
	return out
}

// isDashRune reports whether r belongs to the dash-like class that
// Dedash collapses: ASCII dashes, underscores, dots, whitespace, and
// Unicode en/em dashes.
func isDashRune(r rune) bool {
	switch r {
	case '-', '_', '.', '–', '—':
		return true
	}
	return unicode.IsSpace(r)
}

// Dedash collapses every run of dashes, underscores, dots, whitespace,
// and en/em dashes to a single ASCII space.
func Dedash(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if isDashRune(r) {
			inRun = true
			continue
		}
		if inRun {
			b.WriteByte(' ')
			inRun = false
		}
		b.WriteRune(r)
	}
	if inRun {
		b.WriteByte(' ')
	}
	return b.String()
}

// SimplifyWhitespace trims s and collapses internal whitespace runs to
// single spaces.
func SimplifyWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isWordRune(r rune) bool {
	return r == '~' || r == '?' || r == '!' || r == '*' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// IsCamelWord reports whether s is a single word with an internal case
// or digit/letter boundary suggestive of a camel-cased identifier,
// such as "R1", "FooBar", or "OveMer".
func IsCamelWord(s string) bool {
	if s == "" {
		return false
	}
	boundary := false
	var prev rune
	for i, r := range s {
		if !isWordRune(r) {
			return false
		}
		if i > 0 {
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				boundary = true
			case unicode.IsLetter(prev) && unicode.IsDigit(r):
				boundary = true
			case unicode.IsDigit(prev) && unicode.IsLetter(r):
				boundary = true
			}
		}
		prev = r
	}
	return boundary
}

// IsStrictCamelWord reports whether s is a camel word in the strict
// sense: an ASCII-alphanumeric word containing a lowercase-then-uppercase
// pair or an upper-upper-lower triplet ("FooBar", "HTTPServer"; not "R1").
func IsStrictCamelWord(s string) bool {
	if s == "" {
		return false
	}
	rs := []rune(s)
	for _, r := range rs {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	for i := 1; i < len(rs); i++ {
		if unicode.IsLower(rs[i-1]) && unicode.IsUpper(rs[i]) {
			return true
		}
		if i >= 2 && unicode.IsUpper(rs[i-2]) && unicode.IsUpper(rs[i-1]) && unicode.IsLower(rs[i]) {
			return true
		}
	}
	return false
}

// SplitCamel splits a camel-cased word into space-separated words:
// "FooBar" -> "Foo Bar", "HTTPServer" -> "HTTP Server", "Foo2" -> "Foo 2".
func SplitCamel(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range rs {
		if i > 0 {
			prev := rs[i-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				b.WriteByte(' ')
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				b.WriteByte(' ')
			case unicode.IsLetter(prev) && unicode.IsDigit(r):
				b.WriteByte(' ')
			case unicode.IsDigit(prev) && unicode.IsLetter(r):
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
