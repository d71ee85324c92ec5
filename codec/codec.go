// Package codec encodes vecmath values.
//
// Two layers are provided:
//
//   - Codec: self-describing value encoders (JSON, go-json, CBOR) for single
//     vectors, matrices or any structs embedding them.
//   - Frames: Encode and Decode pack a slice of one vector arity into a compact
//     little-endian frame guarded by a CRC32C trailer. Float16 precision and
//     LZ4/ZSTD compression are optional.
//
// JSON cannot represent NaN or infinities; use CBOR or frames for data that
// may contain them.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "cbor":
		return CBOR{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
