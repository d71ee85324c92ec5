package vecmath

import "fmt"

// Vector4 is a four component float32 vector, typically a homogeneous
// coordinate.
type Vector4 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// Zero4 returns a Vector4 with all components set to 0.
func Zero4() Vector4 { return Vector4{} }

// One4 returns a Vector4 with all components set to 1.
func One4() Vector4 { return Vector4{X: 1, Y: 1, Z: 1, W: 1} }

// Infinity4 returns a Vector4 with all components set to +Inf.
func Infinity4() Vector4 { return Vector4{X: inf, Y: inf, Z: inf, W: inf} }

// NaN4 returns a Vector4 with all components set to NaN.
func NaN4() Vector4 { return Vector4{X: nan, Y: nan, Z: nan, W: nan} }

// Epsilon4 returns a Vector4 with all components set to Epsilon.
func Epsilon4() Vector4 {
	return Vector4{X: Epsilon, Y: Epsilon, Z: Epsilon, W: Epsilon}
}

// Replicate4 returns a Vector4 with all components set to value.
func Replicate4(value float32) Vector4 {
	return Vector4{X: value, Y: value, Z: value, W: value}
}

// At returns the component at index i.
func (v Vector4) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic(&IndexError{Index: i, Limit: 4})
	}
}

// Swizzle selects components of v by index.
func (v Vector4) Swizzle(e0, e1, e2, e3 int) Vector4 {
	checkIndex(e0, 4)
	checkIndex(e1, 4)
	checkIndex(e2, 4)
	checkIndex(e3, 4)

	return Vector4{
		X: v.At(e0),
		Y: v.At(e1),
		Z: v.At(e2),
		W: v.At(e3),
	}
}

// Permute selects each component from v (0..3) or other (4..7).
func (v Vector4) Permute(other Vector4, px, py, pz, pw int) Vector4 {
	checkIndex(px, 8)
	checkIndex(py, 8)
	checkIndex(pz, 8)
	checkIndex(pw, 8)

	return Vector4{
		X: v.pick(other, px),
		Y: v.pick(other, py),
		Z: v.pick(other, pz),
		W: v.pick(other, pw),
	}
}

func (v Vector4) pick(other Vector4, i int) float32 {
	if i < 4 {
		return v.At(i)
	}
	return other.At(i - 4)
}

// Transform multiplies the row vector v by m. W weights the translation row,
// so directions (w=0) are not translated.
func (v Vector4) Transform(m *Matrix) Vector4 {
	x := v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0]
	y := v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1]
	z := v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2]
	w := v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3]

	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Min returns the component-wise minimum of v and other.
func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{
		X: minf(v.X, other.X),
		Y: minf(v.Y, other.Y),
		Z: minf(v.Z, other.Z),
		W: minf(v.W, other.W),
	}
}

// Max returns the component-wise maximum of v and other.
func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{
		X: maxf(v.X, other.X),
		Y: maxf(v.Y, other.Y),
		Z: maxf(v.Z, other.Z),
		W: maxf(v.W, other.W),
	}
}

// Round rounds each component to the nearest integer, half away from zero.
func (v Vector4) Round() Vector4 {
	return Vector4{X: roundf(v.X), Y: roundf(v.Y), Z: roundf(v.Z), W: roundf(v.W)}
}

// Trunc rounds each component toward zero.
func (v Vector4) Trunc() Vector4 {
	return Vector4{X: truncf(v.X), Y: truncf(v.Y), Z: truncf(v.Z), W: truncf(v.W)}
}

// Floor rounds each component toward -Inf.
func (v Vector4) Floor() Vector4 {
	return Vector4{X: floorf(v.X), Y: floorf(v.Y), Z: floorf(v.Z), W: floorf(v.W)}
}

// Ceil rounds each component toward +Inf.
func (v Vector4) Ceil() Vector4 {
	return Vector4{X: ceilf(v.X), Y: ceilf(v.Y), Z: ceilf(v.Z), W: ceilf(v.W)}
}

// Clamp limits v to [lo, hi]. It panics unless lo < hi on every component.
func (v Vector4) Clamp(lo, hi Vector4) Vector4 {
	checkBounds("x", lo.X, hi.X)
	checkBounds("y", lo.Y, hi.Y)
	checkBounds("z", lo.Z, hi.Z)
	checkBounds("w", lo.W, hi.W)

	return v.Max(lo).Min(hi)
}

// MultiplyAdd returns v*mul + add.
func (v Vector4) MultiplyAdd(mul, add Vector4) Vector4 {
	return Vector4{
		X: float32(v.X*mul.X) + add.X,
		Y: float32(v.Y*mul.Y) + add.Y,
		Z: float32(v.Z*mul.Z) + add.Z,
		W: float32(v.W*mul.W) + add.W,
	}
}

// SplatX broadcasts X to all components.
func (v Vector4) SplatX() Vector4 { return Replicate4(v.X) }

// SplatY broadcasts Y to all components.
func (v Vector4) SplatY() Vector4 { return Replicate4(v.Y) }

// SplatZ broadcasts Z to all components.
func (v Vector4) SplatZ() Vector4 { return Replicate4(v.Z) }

// SplatW broadcasts W to all components.
func (v Vector4) SplatW() Vector4 { return Replicate4(v.W) }

// Add returns v + other.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

// Sub returns v - other.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

// Mul returns the element-wise product of v and other.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z, W: v.W * other.W}
}

// Div returns the element-wise quotient of v and other.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z, W: v.W / other.W}
}

// Scale multiplies every component by s.
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Neg returns -v.
func (v Vector4) Neg() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// XYZ drops W.
func (v Vector4) XYZ() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector4) String() string {
	return fmt.Sprintf("Vector4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
