package vecmath

import "fmt"

// Vector2 is a two component float32 vector.
type Vector2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Zero2 returns a Vector2 with all components set to 0.
func Zero2() Vector2 { return Vector2{} }

// One2 returns a Vector2 with all components set to 1.
func One2() Vector2 { return Vector2{X: 1, Y: 1} }

// Infinity2 returns a Vector2 with all components set to +Inf.
func Infinity2() Vector2 { return Vector2{X: inf, Y: inf} }

// NaN2 returns a Vector2 with all components set to NaN.
func NaN2() Vector2 { return Vector2{X: nan, Y: nan} }

// Epsilon2 returns a Vector2 with all components set to Epsilon.
func Epsilon2() Vector2 { return Vector2{X: Epsilon, Y: Epsilon} }

// Replicate2 returns a Vector2 with all components set to value.
func Replicate2(value float32) Vector2 { return Vector2{X: value, Y: value} }

// At returns the component at index i. Indices 2 and 3 read as zero.
func (v Vector2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2, 3:
		return 0
	default:
		panic(&IndexError{Index: i, Limit: 4})
	}
}

// Swizzle selects components of v by index. e2 and e3 are ignored.
func (v Vector2) Swizzle(e0, e1, _, _ int) Vector2 {
	checkIndex(e0, 4)
	checkIndex(e1, 4)

	return Vector2{
		X: v.At(e0),
		Y: v.At(e1),
	}
}

// Permute selects each component from v (0..3) or other (4..7).
// pz and pw are ignored.
func (v Vector2) Permute(other Vector2, px, py, _, _ int) Vector2 {
	checkIndex(px, 8)
	checkIndex(py, 8)

	return Vector2{
		X: v.pick(other, px),
		Y: v.pick(other, py),
	}
}

func (v Vector2) pick(other Vector2, i int) float32 {
	if i < 4 {
		return v.At(i)
	}
	return other.At(i - 4)
}

// Transform treats v as the point (x, y, 0, 1) and multiplies it by m.
func (v Vector2) Transform(m *Matrix) Vector2 {
	x := v.X*m[0][0] + v.Y*m[1][0] + m[3][0]
	y := v.X*m[0][1] + v.Y*m[1][1] + m[3][1]

	return Vector2{X: x, Y: y}
}

// Min returns the component-wise minimum of v and other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{
		X: minf(v.X, other.X),
		Y: minf(v.Y, other.Y),
	}
}

// Max returns the component-wise maximum of v and other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{
		X: maxf(v.X, other.X),
		Y: maxf(v.Y, other.Y),
	}
}

// Round rounds each component to the nearest integer, half away from zero.
func (v Vector2) Round() Vector2 { return Vector2{X: roundf(v.X), Y: roundf(v.Y)} }

// Trunc rounds each component toward zero.
func (v Vector2) Trunc() Vector2 { return Vector2{X: truncf(v.X), Y: truncf(v.Y)} }

// Floor rounds each component toward -Inf.
func (v Vector2) Floor() Vector2 { return Vector2{X: floorf(v.X), Y: floorf(v.Y)} }

// Ceil rounds each component toward +Inf.
func (v Vector2) Ceil() Vector2 { return Vector2{X: ceilf(v.X), Y: ceilf(v.Y)} }

// Clamp limits v to [lo, hi]. It panics unless lo < hi on every component.
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	checkBounds("x", lo.X, hi.X)
	checkBounds("y", lo.Y, hi.Y)

	return v.Max(lo).Min(hi)
}

// MultiplyAdd returns v*mul + add.
func (v Vector2) MultiplyAdd(mul, add Vector2) Vector2 {
	return Vector2{
		X: float32(v.X*mul.X) + add.X,
		Y: float32(v.Y*mul.Y) + add.Y,
	}
}

// SplatX broadcasts X to all components.
func (v Vector2) SplatX() Vector2 { return Replicate2(v.X) }

// SplatY broadcasts Y to all components.
func (v Vector2) SplatY() Vector2 { return Replicate2(v.Y) }

// SplatZ returns the zero vector; Vector2 has no Z component.
func (v Vector2) SplatZ() Vector2 { return Vector2{} }

// SplatW returns the zero vector; Vector2 has no W component.
func (v Vector2) SplatW() Vector2 { return Vector2{} }

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the element-wise product of v and other.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{X: v.X * other.X, Y: v.Y * other.Y}
}

// Div returns the element-wise quotient of v and other.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{X: v.X / other.X, Y: v.Y / other.Y}
}

// Scale multiplies every component by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%g, %g)", v.X, v.Y)
}
