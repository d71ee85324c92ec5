package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector4Constructors(t *testing.T) {
	assert.Equal(t, Vector4{}, Zero4())
	assert.Equal(t, Vector4{X: 1, Y: 1, Z: 1, W: 1}, One4())
	assert.Equal(t, Replicate4(inf), Infinity4())
	assert.Equal(t, Replicate4(Epsilon), Epsilon4())

	n := NaN4()
	for i := range 4 {
		assert.True(t, math.IsNaN(float64(n.At(i))))
	}
}

func TestVector4At(t *testing.T) {
	v := Vector4{X: 1, Y: 2, Z: 3, W: 4}

	for i := range 4 {
		assert.Equal(t, float32(i+1), v.At(i))
	}

	err := requireContractPanic(t, func() { v.At(4) })
	assert.EqualError(t, err, "index must be between 0~3, but 4")
}

func TestVector4SwizzlePermute(t *testing.T) {
	a := Vector4{X: 1, Y: 2, Z: 3, W: 4}
	b := Vector4{X: 5, Y: 6, Z: 7, W: 8}

	assert.Equal(t, Vector4{X: 4, Y: 3, Z: 2, W: 1}, a.Swizzle(3, 2, 1, 0))
	assert.Equal(t, Replicate4(2), a.Swizzle(1, 1, 1, 1))
	assert.Equal(t, Vector4{X: 1, Y: 6, Z: 3, W: 8}, a.Permute(b, 0, 5, 2, 7))
	assert.Equal(t, a.Swizzle(2, 0, 3, 1), a.Permute(b, 2, 0, 3, 1))

	requireContractPanic(t, func() { a.Swizzle(0, 1, 2, 4) })
	requireContractPanic(t, func() { a.Permute(b, 0, 1, 2, 8) })
}

func TestVector4Transform(t *testing.T) {
	p := Vector4{X: 1, Y: 2, Z: 3, W: 1}

	id := Identity()
	assert.Equal(t, Vector4{X: 1, Y: 2, Z: 3, W: 1}, p.Transform(&id))

	tr := Translation(10, 20, 30)
	assert.Equal(t, Vector4{X: 11, Y: 22, Z: 33, W: 1}, p.Transform(&tr))

	dir := Vector4{X: 1, Y: 2, Z: 3}
	assert.Equal(t, dir, dir.Transform(&tr), "directions ignore translation")

	// Projection-style matrix copies z into w.
	proj := Identity()
	proj[2][3], proj[3][3] = 1, 0
	assert.Equal(t, Vector4{X: 1, Y: 2, Z: 3, W: 3}, p.Transform(&proj))

	assert.Equal(t, Vector3{X: 11, Y: 22, Z: 33}, p.Transform(&tr).XYZ())
}

func TestVector4MinMaxClamp(t *testing.T) {
	a := Vector4{X: 1, Y: 8, Z: nan, W: nan}
	b := Vector4{X: 4, Y: 2, Z: 3, W: nan}

	mn, mx := a.Min(b), a.Max(b)
	assert.Equal(t, []float32{1, 2, 3}, []float32{mn.X, mn.Y, mn.Z})
	assert.Equal(t, []float32{4, 8, 3}, []float32{mx.X, mx.Y, mx.Z})
	assert.True(t, math.IsNaN(float64(mn.W)))
	assert.True(t, math.IsNaN(float64(mx.W)))

	lo, hi := Replicate4(-1), Replicate4(1)
	c := Vector4{X: -2, Y: 2, Z: 0.25, W: -inf}.Clamp(lo, hi)
	assert.Equal(t, Vector4{X: -1, Y: 1, Z: 0.25, W: -1}, c)
	assert.Equal(t, c, c.Clamp(lo, hi))

	err := requireContractPanic(t, func() {
		c.Clamp(lo, Vector4{X: 1, Y: 1, Z: 1, W: -1})
	})
	assert.Equal(t, "w", err.(*ClampBoundsError).Axis)
}

func TestVector4Rounding(t *testing.T) {
	v := Vector4{X: 1.5, Y: -1.5, Z: 2.49, W: -0.2}

	assert.Equal(t, Vector4{X: 2, Y: -2, Z: 2, W: negZero}, v.Round())
	assert.Equal(t, Vector4{X: 1, Y: -1, Z: 2, W: negZero}, v.Trunc())
	assert.Equal(t, Vector4{X: 1, Y: -2, Z: 2, W: -1}, v.Floor())
	assert.Equal(t, Vector4{X: 2, Y: -1, Z: 3, W: negZero}, v.Ceil())
}

func TestVector4SplatAndArithmetic(t *testing.T) {
	v := Vector4{X: 1, Y: 2, Z: 3, W: 4}

	assert.Equal(t, Replicate4(1), v.SplatX())
	assert.Equal(t, Replicate4(2), v.SplatY())
	assert.Equal(t, Replicate4(3), v.SplatZ())
	assert.Equal(t, Replicate4(4), v.SplatW())

	assert.Equal(t, Vector4{X: 2, Y: 4, Z: 6, W: 8}, v.Scale(2))
	assert.Equal(t, Vector4{X: 0.5, Y: 1, Z: 1.5, W: 2}, v.Div(Replicate4(2)))
	assert.Equal(t, Vector4{X: 3, Y: 5, Z: 7, W: 9}, v.MultiplyAdd(Replicate4(2), One4()))
	assert.Equal(t, Vector4{X: -1, Y: -2, Z: -3, W: -4}, v.Neg())

	q := Vector4{X: 1, Y: -1, Z: 0, W: 2}.Div(Zero4())
	assert.Equal(t, inf, q.X)
	assert.Equal(t, -inf, q.Y)
	assert.True(t, math.IsNaN(float64(q.Z)))
	assert.Equal(t, inf, q.W)
}

func TestVector4String(t *testing.T) {
	assert.Equal(t, "Vector4(1, 2, 3, 0.5)", Vector4{X: 1, Y: 2, Z: 3, W: 0.5}.String())
}
