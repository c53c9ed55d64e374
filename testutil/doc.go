// Package testutil provides testing utilities for hstr.
//
// This package is intended for use in tests and benchmarks only.
// It generates deterministic random texts for interning workloads.
//
// # Random Text Generation
//
//	rng := testutil.NewRNG(seed)
//	words := rng.Texts(1000, 16)            // 1000 random 16-byte texts
//	corpus := rng.Corpus(10_000, words)     // draws with repetition
//	ident := rng.Identifier(12)             // [a-z_][a-z0-9_]*
package testutil
