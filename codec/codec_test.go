package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
)

type sceneNode struct {
	Name     string          `json:"name"`
	Position vecmath.Vector3 `json:"position"`
	Color    vecmath.Vector4 `json:"color"`
	World    vecmath.Matrix  `json:"world"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json", "cbor"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("gob")
	assert.False(t, ok)
}

func TestCodecRoundTrip(t *testing.T) {
	in := sceneNode{
		Name:     "lamp",
		Position: vecmath.Vector3{X: 1, Y: 2.5, Z: -3},
		Color:    vecmath.Vector4{X: 1, Y: 0.5, Z: 0.25, W: 1},
		World:    vecmath.Translation(4, 5, 6),
	}

	for _, c := range []Codec{JSON{}, GoJSON{}, CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out sceneNode
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestJSONFieldNames(t *testing.T) {
	data := MustMarshal(JSON{}, vecmath.Vector2{X: 1, Y: 2})
	assert.JSONEq(t, `{"x":1,"y":2}`, string(data))
}

func TestJSONRejectsNaN(t *testing.T) {
	_, err := JSON{}.Marshal(vecmath.NaN2())
	assert.Error(t, err)
}

func TestCBORKeepsSpecialValues(t *testing.T) {
	in := vecmath.Vector3{X: float32(math.NaN()), Y: float32(math.Inf(1)), Z: float32(math.Inf(-1))}

	var out vecmath.Vector3
	require.NoError(t, CBOR{}.Unmarshal(MustMarshal(nil, in), &out))

	assert.True(t, math.IsNaN(float64(out.X)))
	assert.True(t, math.IsInf(float64(out.Y), 1))
	assert.True(t, math.IsInf(float64(out.Z), -1))
}

func TestGoJSONAppend(t *testing.T) {
	dst := []byte("prefix:")
	out, err := GoJSON{}.Append(dst, vecmath.Vector2{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, "prefix:", string(out[:7]))
	assert.JSONEq(t, `{"x":1,"y":2}`, string(out[7:]))
	assert.NotEqual(t, byte('\n'), out[len(out)-1])
}

func TestGoJSONAppendReusesCapacity(t *testing.T) {
	dst := make([]byte, 0, 256)

	out, err := GoJSON{}.Append(dst, vecmath.Vector3{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	assert.Same(t, &dst[:1][0], &out[0])
	assert.JSONEq(t, `{"x":1,"y":2,"z":3}`, string(out))
}
