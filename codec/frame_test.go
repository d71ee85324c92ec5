package codec

import (
	"encoding/binary"
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/hash"
)

func grid(n int) []vecmath.Vector3 {
	out := make([]vecmath.Vector3, n)
	for i := range out {
		out[i] = vecmath.Vector3{X: float32(i % 16), Y: float32(i / 16), Z: 1}
	}
	return out
}

func TestFrameRoundTrip(t *testing.T) {
	in := grid(1024)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := Encode(in, WithCompression(c))
			require.NoError(t, err)

			h, err := ReadHeader(data)
			require.NoError(t, err)
			assert.Equal(t, Header{Version: 1, Arity: 3, Precision: PrecisionFloat32, Compression: c, Count: 1024}, h)

			out, err := Decode[vecmath.Vector3](data)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestFrameCompressionShrinksRepetitiveData(t *testing.T) {
	in := grid(4096)

	raw, err := Encode(in)
	require.NoError(t, err)
	packed, err := Encode(in, WithCompression(CompressionZSTD))
	require.NoError(t, err)

	assert.Less(t, len(packed), len(raw))
}

func TestFrameEmpty(t *testing.T) {
	data, err := Encode([]vecmath.Vector2{}, WithCompression(CompressionLZ4))
	require.NoError(t, err)

	out, err := Decode[vecmath.Vector2](data)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFrameFloat16(t *testing.T) {
	in := []vecmath.Vector4{
		{X: 1, Y: -0.5, Z: 1024, W: 0.1},
		{X: float32(math.Inf(1)), Y: float32(math.NaN()), Z: 1e6, W: 0},
	}

	data, err := Encode(in, WithPrecision(PrecisionFloat16))
	require.NoError(t, err)

	out, err := Decode[vecmath.Vector4](data)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, float32(1), out[0].X)
	assert.Equal(t, float32(-0.5), out[0].Y)
	assert.Equal(t, float32(1024), out[0].Z)
	assert.InDelta(t, 0.1, out[0].W, 1e-3)
	assert.True(t, math.IsInf(float64(out[1].X), 1))
	assert.True(t, math.IsNaN(float64(out[1].Y)))
	assert.True(t, math.IsInf(float64(out[1].Z), 1), "values beyond the half range overflow")
}

func TestDecodeArityMismatch(t *testing.T) {
	data, err := Encode([]vecmath.Vector2{{X: 1, Y: 2}})
	require.NoError(t, err)

	_, err = Decode[vecmath.Vector3](data)

	var arityErr *ArityError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 3, arityErr.Want)
	assert.Equal(t, 2, arityErr.Got)
}

func TestDecodeMalformed(t *testing.T) {
	valid, err := Encode(grid(8))
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", valid[:4], ErrInvalidFrame},
		{"magic", append([]byte{'X', 'X'}, valid[2:]...), ErrInvalidFrame},
		{"version", patch(valid, 2, 9), ErrUnsupportedVersion},
		{"arity", patch(valid, 3, 7), ErrInvalidFrame},
		{"precision", patch(valid, 4, 9), ErrUnknownPrecision},
		{"compression", patch(valid, 5, 9), ErrUnknownCompression},
		{"count", patch(valid, 8, 9), ErrInvalidFrame},
		{"truncated", valid[:len(valid)-1], ErrInvalidFrame},
		{"header only", valid[:frameHeaderSize], ErrInvalidFrame},
		{"payload", patch(valid, frameHeaderSize+blockHeaderSize, 0xff), ErrChecksumMismatch},
		{"checksum", patch(valid, len(valid)-1, valid[len(valid)-1]^0xff), ErrChecksumMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode[vecmath.Vector3](tc.data)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// rawFrame assembles a Vector4 frame with a valid checksum around an
// arbitrary block.
func rawFrame(count uint32, c Compression, uncompressed uint32, body []byte) []byte {
	out := append([]byte(nil), frameMagic[0], frameMagic[1], frameVersion, 4, byte(PrecisionFloat32), byte(c), 0, 0)
	out = binary.LittleEndian.AppendUint32(out, count)
	out = binary.LittleEndian.AppendUint32(out, uncompressed)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	out = append(out, body...)
	return hash.Append(out, out)
}

func TestDecodeOversizedCount(t *testing.T) {
	const count = 1 << 25 // 512 MiB of Vector4 components
	want := uint32(count * 16)

	// A genuine zstd block that decodes to far fewer bytes than claimed.
	small, err := Encode(make([]vecmath.Vector4, 256), WithCompression(CompressionZSTD))
	require.NoError(t, err)
	require.NotZero(t, binary.LittleEndian.Uint32(small[frameHeaderSize+4:]), "block should be compressed")
	zstdBody := small[frameHeaderSize+blockHeaderSize : len(small)-hash.Size]

	tests := []struct {
		name string
		data []byte
	}{
		{"lz4", rawFrame(count, CompressionLZ4, want, []byte{0x1f, 0, 0, 0})},
		{"zstd garbage", rawFrame(count, CompressionZSTD, want, []byte{1, 2, 3, 4})},
		{"zstd short", rawFrame(count, CompressionZSTD, want, zstdBody)},
		{"raw", rawFrame(count, CompressionNone, want, nil)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)

			out, err := Decode[vecmath.Vector4](tc.data)

			runtime.ReadMemStats(&after)
			assert.ErrorIs(t, err, ErrInvalidFrame)
			assert.Nil(t, out)
			assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(32<<20))
		})
	}
}

func TestEncodeRejectsUnknownOptions(t *testing.T) {
	_, err := Encode(grid(1), WithCompression(Compression(7)))
	assert.ErrorIs(t, err, ErrUnknownCompression)

	_, err = Encode(grid(1), WithPrecision(Precision(7)))
	assert.ErrorIs(t, err, ErrUnknownPrecision)
}

func patch(data []byte, i int, b byte) []byte {
	out := append([]byte(nil), data...)
	out[i] = b
	return out
}

func BenchmarkEncode(b *testing.B) {
	in := grid(16384)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Encode(in, WithCompression(c)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
