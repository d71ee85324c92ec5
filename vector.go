package vecmath

import "math"

// Vector is the capability set shared by Vector2, Vector3 and Vector4.
//
// V is the implementing type itself, so every operation stays within one
// arity. Operations take and return values; none of them mutate the receiver.
type Vector[V any] interface {
	// At returns the component at index i. Indices past the arity but below 4
	// read as zero; anything else panics with *IndexError.
	At(i int) float32

	Swizzle(e0, e1, e2, e3 int) V
	Permute(other V, px, py, pz, pw int) V

	Transform(m *Matrix) V

	Min(other V) V
	Max(other V) V

	Round() V
	Trunc() V
	Floor() V
	Ceil() V
	Clamp(lo, hi V) V

	MultiplyAdd(mul, add V) V

	SplatX() V
	SplatY() V
	SplatZ() V
	SplatW() V

	Add(other V) V
	Sub(other V) V
	Mul(other V) V
	Div(other V) V
	Scale(s float32) V
	Neg() V
}

// Fixed is the type set of the concrete vector types.
//
// It is used by helpers that operate on slices of vectors as flat float32
// memory (see the batch and codec packages).
type Fixed interface {
	Vector2 | Vector3 | Vector4
}

var (
	_ Vector[Vector2] = Vector2{}
	_ Vector[Vector3] = Vector3{}
	_ Vector[Vector4] = Vector4{}
)

// Epsilon is the float32 machine epsilon, the gap between 1 and the next
// representable value.
const Epsilon float32 = 1.0 / (1 << 23)

var (
	inf = float32(math.Inf(1))
	nan = float32(math.NaN())
)

// minf returns the smaller operand. A single NaN operand is ignored; two NaN
// operands yield NaN. -0 orders below +0.
func minf(a, b float32) float32 {
	switch {
	case a != a:
		return b
	case b != b:
		return a
	case a < b:
		return a
	case b < a:
		return b
	case math.Signbit(float64(a)):
		return a
	default:
		return b
	}
}

// maxf mirrors minf: NaN-avoiding, +0 orders above -0.
func maxf(a, b float32) float32 {
	switch {
	case a != a:
		return b
	case b != b:
		return a
	case a > b:
		return a
	case b > a:
		return b
	case math.Signbit(float64(a)):
		return b
	default:
		return a
	}
}

// The float64 round trips below are exact for every float32 input.

func roundf(f float32) float32 { return float32(math.Round(float64(f))) }

func truncf(f float32) float32 { return float32(math.Trunc(float64(f))) }

func floorf(f float32) float32 { return float32(math.Floor(float64(f))) }

func ceilf(f float32) float32 { return float32(math.Ceil(float64(f))) }
