// Package textnorm provides the canonical text forms the abbreviation
// matcher scores against.
//
// Every matcher comparison is expressed over the outputs of this package,
// so identity of tokens, not bytes, drives matching:
//
//   - Dedash collapses dash-like punctuation runs to single spaces
//   - Deaccent strips combining marks (café -> cafe)
//   - MakeXTester builds the space-prefixed lowercase tester string that
//     query regexes scan
//   - IsCamelWord / IsStrictCamelWord detect camel-cased sigils such as
//     "OveMer" or "R1"
//
// All functions are pure and allocation-light; none of them retain state.
package textnorm
