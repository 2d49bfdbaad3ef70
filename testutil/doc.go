// Package testutil provides testing utilities for abbrevgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic phrase corpora to
// exercise the matcher at scale.
//
// # Phrase Generation
//
//	rng := testutil.NewRNG(seed)
//	phrase := rng.Phrase(3)        // e.g. "Overall Review Quality"
//	corpus := rng.Corpus(500, 4)   // 500 phrases of up to 4 words
package testutil
