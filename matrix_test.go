package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixRow(t *testing.T) {
	m := Translation(1, 2, 3)

	assert.Equal(t, Vector4{X: 1, Y: 2, Z: 3, W: 1}, m.Row(3))
	assert.Equal(t, Vector4{X: 1}, m.Row(0))

	requireContractPanic(t, func() { m.Row(4) })
}

func TestMatrixMul(t *testing.T) {
	s := Scaling(2, 2, 2)
	tr := Translation(1, 2, 3)
	p := Vector3{X: 1, Y: 1, Z: 1}

	// Scale first, then translate.
	st := s.Mul(&tr)
	assert.Equal(t, Vector3{X: 3, Y: 4, Z: 5}, p.Transform(&st))

	// Translate first, then scale.
	ts := tr.Mul(&s)
	assert.Equal(t, Vector3{X: 4, Y: 6, Z: 8}, p.Transform(&ts))

	id := Identity()
	assert.Equal(t, st, st.Mul(&id))
	assert.Equal(t, st, id.Mul(&st))
}

func TestMatrixString(t *testing.T) {
	assert.Equal(t,
		"Matrix[[1 0 0 0], [0 1 0 0], [0 0 1 0], [4 5 6 1]]",
		Translation(4, 5, 6).String(),
	)
}
