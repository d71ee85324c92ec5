package vecmath

import "fmt"

// Vector3 is a three component float32 vector.
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Zero3 returns a Vector3 with all components set to 0.
func Zero3() Vector3 { return Vector3{} }

// One3 returns a Vector3 with all components set to 1.
func One3() Vector3 { return Vector3{X: 1, Y: 1, Z: 1} }

// Infinity3 returns a Vector3 with all components set to +Inf.
func Infinity3() Vector3 { return Vector3{X: inf, Y: inf, Z: inf} }

// NaN3 returns a Vector3 with all components set to NaN.
func NaN3() Vector3 { return Vector3{X: nan, Y: nan, Z: nan} }

// Epsilon3 returns a Vector3 with all components set to Epsilon.
func Epsilon3() Vector3 { return Vector3{X: Epsilon, Y: Epsilon, Z: Epsilon} }

// Replicate3 returns a Vector3 with all components set to value.
func Replicate3(value float32) Vector3 { return Vector3{X: value, Y: value, Z: value} }

// At returns the component at index i. Index 3 reads as zero.
func (v Vector3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return 0
	default:
		panic(&IndexError{Index: i, Limit: 4})
	}
}

// Swizzle selects components of v by index. e3 is ignored.
func (v Vector3) Swizzle(e0, e1, e2, _ int) Vector3 {
	checkIndex(e0, 4)
	checkIndex(e1, 4)
	checkIndex(e2, 4)

	return Vector3{
		X: v.At(e0),
		Y: v.At(e1),
		Z: v.At(e2),
	}
}

// Permute selects each component from v (0..3) or other (4..7).
// pw is ignored.
func (v Vector3) Permute(other Vector3, px, py, pz, _ int) Vector3 {
	checkIndex(px, 8)
	checkIndex(py, 8)
	checkIndex(pz, 8)

	return Vector3{
		X: v.pick(other, px),
		Y: v.pick(other, py),
		Z: v.pick(other, pz),
	}
}

func (v Vector3) pick(other Vector3, i int) float32 {
	if i < 4 {
		return v.At(i)
	}
	return other.At(i - 4)
}

// Transform treats v as the point (x, y, z, 1) and multiplies it by m.
func (v Vector3) Transform(m *Matrix) Vector3 {
	x := v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0]
	y := v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1]
	z := v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2]

	return Vector3{X: x, Y: y, Z: z}
}

// Min returns the component-wise minimum of v and other.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: minf(v.X, other.X),
		Y: minf(v.Y, other.Y),
		Z: minf(v.Z, other.Z),
	}
}

// Max returns the component-wise maximum of v and other.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: maxf(v.X, other.X),
		Y: maxf(v.Y, other.Y),
		Z: maxf(v.Z, other.Z),
	}
}

// Round rounds each component to the nearest integer, half away from zero.
func (v Vector3) Round() Vector3 {
	return Vector3{X: roundf(v.X), Y: roundf(v.Y), Z: roundf(v.Z)}
}

// Trunc rounds each component toward zero.
func (v Vector3) Trunc() Vector3 {
	return Vector3{X: truncf(v.X), Y: truncf(v.Y), Z: truncf(v.Z)}
}

// Floor rounds each component toward -Inf.
func (v Vector3) Floor() Vector3 {
	return Vector3{X: floorf(v.X), Y: floorf(v.Y), Z: floorf(v.Z)}
}

// Ceil rounds each component toward +Inf.
func (v Vector3) Ceil() Vector3 {
	return Vector3{X: ceilf(v.X), Y: ceilf(v.Y), Z: ceilf(v.Z)}
}

// Clamp limits v to [lo, hi]. It panics unless lo < hi on every component.
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	checkBounds("x", lo.X, hi.X)
	checkBounds("y", lo.Y, hi.Y)
	checkBounds("z", lo.Z, hi.Z)

	return v.Max(lo).Min(hi)
}

// MultiplyAdd returns v*mul + add.
func (v Vector3) MultiplyAdd(mul, add Vector3) Vector3 {
	return Vector3{
		X: float32(v.X*mul.X) + add.X,
		Y: float32(v.Y*mul.Y) + add.Y,
		Z: float32(v.Z*mul.Z) + add.Z,
	}
}

// SplatX broadcasts X to all components.
func (v Vector3) SplatX() Vector3 { return Replicate3(v.X) }

// SplatY broadcasts Y to all components.
func (v Vector3) SplatY() Vector3 { return Replicate3(v.Y) }

// SplatZ broadcasts Z to all components.
func (v Vector3) SplatZ() Vector3 { return Replicate3(v.Z) }

// SplatW returns the zero vector; Vector3 has no W component.
func (v Vector3) SplatW() Vector3 { return Vector3{} }

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul returns the element-wise product of v and other.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// Div returns the element-wise quotient of v and other.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z}
}

// Scale multiplies every component by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%g, %g, %g)", v.X, v.Y, v.Z)
}
