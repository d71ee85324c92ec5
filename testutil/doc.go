// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Vectors
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector3()           // components uniform in [-1, 1)
//	vs := rng.Vector4s(1024)
//	p := rng.IntVector2(100)     // integer components in [-100, 100]
//
// Integer-valued vectors keep additions and subtractions exact, which makes
// algebraic identities testable with plain equality.
//
// # Float Comparison
//
//	testutil.ULPDistance(a, b) <= 1
package testutil
