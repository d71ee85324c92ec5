// Package layout exposes slices of vecmath vectors as flat float32 memory.
//
// Vector2, Vector3 and Vector4 are structs of float32 fields only, so a
// []Vector3 is laid out exactly like a []float32 of three times the length.
// The returned slices share memory with their input.
package layout

import (
	"unsafe"

	"github.com/hupe1980/vecmath"
)

// Arity returns the component count of V.
func Arity[V vecmath.Fixed]() int {
	var zero V
	return int(unsafe.Sizeof(zero) / unsafe.Sizeof(float32(0)))
}

// Floats views vs as a []float32 of len(vs)*Arity[V]() components.
func Floats[V vecmath.Fixed](vs []V) []float32 {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(vs))), len(vs)*Arity[V]())
}
