package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/vecmath"
)

func TestArity(t *testing.T) {
	assert.Equal(t, 2, Arity[vecmath.Vector2]())
	assert.Equal(t, 3, Arity[vecmath.Vector3]())
	assert.Equal(t, 4, Arity[vecmath.Vector4]())
}

func TestFloatsSharesMemory(t *testing.T) {
	vs := []vecmath.Vector3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}

	fs := Floats(vs)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, fs)

	fs[4] = 50
	assert.Equal(t, float32(50), vs[1].Y)
}

func TestFloatsEmpty(t *testing.T) {
	assert.Nil(t, Floats[vecmath.Vector4](nil))
	assert.Nil(t, Floats([]vecmath.Vector2{}))
}
