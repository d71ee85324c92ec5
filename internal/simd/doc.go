// Package simd provides the flat float32 kernels behind the batch package.
//
// Kernels operate on vectors laid out contiguously in a []float32 with a
// stride equal to the arity, matching the memory layout of []vecmath.Vector2,
// []vecmath.Vector3 and []vecmath.Vector4.
//
// # Kernel Selection
//
// golang.org/x/sys/cpu is consulted once at init. On x86-64 with AVX2 or
// arm64 with ASIMD the Vector kernels are used: Transform4 handles four
// homogeneous vectors per iteration with the matrix hoisted into locals.
// Everything else runs the Generic kernels. Set VECMATH_SIMD=generic to force the scalar path.
package simd
