// Package abbrevgo provides an in-memory abbreviation matcher for Go.
//
// The matcher is a searchable index from user-supplied short patterns
// (abbreviations, keywords, camel-cased sigils, optionally containing a
// wildcard '*') to previously registered named entries, where a name is
// a human-meaningful phrase such as a form field label or option name.
// It can also synthesize a short keyword that uniquely identifies an
// entry against the current index.
//
// # Quick Start
//
//	m := abbrevgo.New[string]()
//	m.AddPhrase("Overall merit", "overall-merit", 0)
//	m.AddPhrase("Overall review quality", "review-quality", 0)
//
//	m.FindAll("OveMer", 0)   // ["overall-merit"]
//	m.FindAll("overall", 0)  // ["overall-merit", "review-quality"]
//	m.FindAll("Ove*", 0)     // ["overall-merit", "review-quality"]
//
// # Keyword Synthesis
//
// EnsureEntryKeyword produces the shortest unambiguous keyword for an
// entry and installs it into the index so it stays unique:
//
//	e := m.AddPhrase("A Study of the New Systems", "study", 0)
//	kw := m.EnsureEntryKeyword(e, abbrevgo.KeywordCamel, 0)  // "StuSys"
//	v, _ := m.Find1(kw, 0)                                   // "study"
//
// # Matching Model
//
// Names and patterns are compared over canonical forms: diacritics are
// folded, dash-like punctuation runs collapse to spaces, camel-cased
// words segment at case boundaries, and a closed set of stop words may
// be skipped for free. Two scorers rank candidates: the primary
// regex-and-skip scorer, and a legacy word-order scorer that can run
// alongside as a cross-check (see WithCrossCheck).
//
// # Key Features
//
//   - Unicode- and punctuation-tolerant similarity ranking
//   - Wildcard patterns ("Ove*") and camel sigils ("OveMer", "R1")
//   - Priority tiers and caller-defined tag masks on every entry
//   - Lazy payload loading and per-pattern result memoization
//   - CAMEL, DASH, and UNDERSCORE keyword synthesis with uniqueness
//     guarantees
//
// All state lives in process memory; the matcher never touches disk or
// network.
package abbrevgo
