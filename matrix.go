package vecmath

import (
	"fmt"
	"strings"
)

// Matrix is a row-major 4x4 float32 matrix indexed as m[row][col].
//
// Vectors are treated as row vectors (v' = v * M): rows 0 to 2 hold the basis
// vectors and row 3 holds the translation.
type Matrix [4][4]float32

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix translating points by (x, y, z).
func Translation(x, y, z float32) Matrix {
	m := Identity()
	m[3][0], m[3][1], m[3][2] = x, y, z
	return m
}

// Scaling returns a matrix scaling along each axis.
func Scaling(x, y, z float32) Matrix {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = x, y, z
	return m
}

// Row returns row i as a Vector4.
func (m *Matrix) Row(i int) Vector4 {
	checkIndex(i, 4)
	r := m[i]
	return Vector4{X: r[0], Y: r[1], Z: r[2], W: r[3]}
}

// Mul returns m * b. Transforming by the product applies m first, then b.
func (m *Matrix) Mul(b *Matrix) Matrix {
	var out Matrix
	for r := range 4 {
		out[r] = m.Row(r).Transform(b).array()
	}
	return out
}

func (v Vector4) array() [4]float32 { return [4]float32{v.X, v.Y, v.Z, v.W} }

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("Matrix[")
	for r := range 4 {
		if r > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", m[r][0], m[r][1], m[r][2], m[r][3])
	}
	sb.WriteString("]")
	return sb.String()
}
