package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is matched by every error returned from this package.
var ErrOverflow = errors.New("integer overflow")

// OverflowError describes a conversion or product that does not fit.
type OverflowError struct {
	Value  string
	Target string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %s cannot be converted to %s", e.Value, e.Target)
}

// Unwrap returns ErrOverflow.
func (e *OverflowError) Unwrap() error { return ErrOverflow }

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, &OverflowError{Value: fmt.Sprint(v), Target: "uint32"}
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, &OverflowError{Value: fmt.Sprint(v), Target: "int"}
	}
	return int(v), nil
}

// MulInt returns a*b for non-negative operands, failing on overflow.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, &OverflowError{Value: fmt.Sprintf("%d*%d", a, b), Target: "non-negative int"}
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(math.MaxInt) {
		return 0, &OverflowError{Value: fmt.Sprintf("%d*%d", a, b), Target: "int"}
	}
	return int(lo), nil
}
