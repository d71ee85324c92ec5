package vecmath

import (
	"errors"
	"fmt"
)

// ErrContractViolation marks a programmer error detected by a vector
// operation. Operations never return it; they panic with a typed error that
// matches it via errors.Is.
var ErrContractViolation = errors.New("vecmath: contract violation")

// IndexError reports a component or permute index outside the accepted range.
//
// Limit is the exclusive upper bound that was violated: 4 for component
// access and swizzle, 8 for permute.
type IndexError struct {
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index must be between 0~%d, but %d", e.Limit-1, e.Index)
}

// Is reports whether target is ErrContractViolation.
func (e *IndexError) Is(target error) bool { return target == ErrContractViolation }

// ClampBoundsError reports clamp bounds that are not strictly ordered on an axis.
type ClampBoundsError struct {
	Axis string
	Min  float32
	Max  float32
}

func (e *ClampBoundsError) Error() string {
	return fmt.Sprintf("clamp bounds must satisfy min < max on %s, got min=%g max=%g", e.Axis, e.Min, e.Max)
}

// Is reports whether target is ErrContractViolation.
func (e *ClampBoundsError) Is(target error) bool { return target == ErrContractViolation }

func checkIndex(i, limit int) {
	if uint(i) >= uint(limit) {
		panic(&IndexError{Index: i, Limit: limit})
	}
}

func checkBounds(axis string, lo, hi float32) {
	// !(lo < hi) also rejects NaN bounds.
	if !(lo < hi) {
		panic(&ClampBoundsError{Axis: axis, Min: lo, Max: hi})
	}
}
