// Package testutil provides testing utilities for intvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator for elements and operation
// positions, and a slice-backed reference model to check a Vector against.
//
// # Random Elements
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Elements(100)
//	loc := rng.Intn(v.Len() + 1)
//
// # Reference Model
//
//	var m testutil.Model
//	ok := m.Insert(loc, x) // mirrors Vector.Insert's bounds rules
//	m.Values()             // expected contents
package testutil
