// Package testutil provides testing utilities for bitstring.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that produces random bit literals
// and lengths so property tests are reproducible.
//
//	rng := testutil.NewRNG(seed)
//	lit := rng.Literal(16)          // e.g. "0110100111010001"
//	a, b := rng.LiteralPair(16)     // two literals of equal length
//	n := rng.Length(100)            // uniform in [1, 100]
package testutil
