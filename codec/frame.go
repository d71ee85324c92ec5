package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/x448/float16"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/conv"
	"github.com/hupe1980/vecmath/internal/hash"
	"github.com/hupe1980/vecmath/internal/layout"
)

// Frame layout (little-endian):
//
//	[0:2]   magic "VM"
//	[2]     version
//	[3]     arity (2, 3 or 4)
//	[4]     precision
//	[5]     compression
//	[6:8]   reserved, zero
//	[8:12]  vector count uint32
//	[12:n]  block: [uncompressed uint32][compressed uint32][data]
//	[n:]    CRC32C of [0:n] uint32
const (
	frameVersion    = 1
	frameHeaderSize = 12
)

var frameMagic = [2]byte{'V', 'M'}

var (
	// ErrInvalidFrame indicates malformed or truncated frame bytes.
	ErrInvalidFrame = errors.New("invalid vector frame")
	// ErrUnsupportedVersion indicates a frame written by a newer encoder.
	ErrUnsupportedVersion = errors.New("unsupported frame version")
	// ErrUnknownCompression indicates an unknown compression id.
	ErrUnknownCompression = errors.New("unknown compression")
	// ErrUnknownPrecision indicates an unknown precision id.
	ErrUnknownPrecision = errors.New("unknown precision")
	// ErrChecksumMismatch indicates corrupted frame bytes. It is always
	// wrapped together with ErrInvalidFrame.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// ArityError is returned when a frame is decoded into a vector type of a
// different arity than it was encoded from.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: decoding into %d components, frame holds %d", e.Want, e.Got)
}

// Precision selects the on-wire width of each component.
type Precision uint8

const (
	// PrecisionFloat32 stores components losslessly.
	PrecisionFloat32 Precision = 0
	// PrecisionFloat16 stores IEEE-754 binary16 components, rounding to
	// nearest even. NaN and infinities are preserved; values beyond
	// +-65504 become infinite.
	PrecisionFloat16 Precision = 1
)

func (p Precision) String() string {
	switch p {
	case PrecisionFloat32:
		return "float32"
	case PrecisionFloat16:
		return "float16"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

func (p Precision) size() int {
	if p == PrecisionFloat16 {
		return 2
	}
	return 4
}

// Header describes an encoded frame.
type Header struct {
	Version     uint8
	Arity       int
	Precision   Precision
	Compression Compression
	Count       int
}

type frameOptions struct {
	compression Compression
	precision   Precision
}

// FrameOption configures Encode.
type FrameOption func(*frameOptions)

// WithCompression sets the block compression. Defaults to CompressionNone.
func WithCompression(c Compression) FrameOption {
	return func(o *frameOptions) {
		o.compression = c
	}
}

// WithPrecision sets the component precision. Defaults to PrecisionFloat32.
func WithPrecision(p Precision) FrameOption {
	return func(o *frameOptions) {
		o.precision = p
	}
}

// Encode packs vs into a frame.
func Encode[V vecmath.Fixed](vs []V, optFns ...FrameOption) ([]byte, error) {
	opts := frameOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if !opts.compression.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, opts.compression)
	}
	if opts.precision > PrecisionFloat16 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrecision, opts.precision)
	}

	count, err := conv.IntToUint32(len(vs))
	if err != nil {
		return nil, fmt.Errorf("vector count: %w", err)
	}

	fs := layout.Floats(vs)
	payload := make([]byte, 0, len(fs)*opts.precision.size())
	switch opts.precision {
	case PrecisionFloat16:
		for _, f := range fs {
			payload = binary.LittleEndian.AppendUint16(payload, float16.Fromfloat32(f).Bits())
		}
	default:
		for _, f := range fs {
			payload = binary.LittleEndian.AppendUint32(payload, math.Float32bits(f))
		}
	}

	out := make([]byte, 0, frameHeaderSize+blockHeaderSize+len(payload)+hash.Size)
	out = append(out, frameMagic[0], frameMagic[1], frameVersion,
		byte(layout.Arity[V]()), byte(opts.precision), byte(opts.compression), 0, 0)
	out = binary.LittleEndian.AppendUint32(out, count)

	out, err = appendBlock(out, payload, opts.compression)
	if err != nil {
		return nil, err
	}

	return hash.Append(out, out), nil
}

// ReadHeader parses the header of a frame without decoding its payload.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < frameHeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidFrame, len(data))
	}
	if data[0] != frameMagic[0] || data[1] != frameMagic[1] {
		return Header{}, fmt.Errorf("%w: bad magic", ErrInvalidFrame)
	}
	if data[2] != frameVersion {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[2])
	}

	h := Header{
		Version:     data[2],
		Arity:       int(data[3]),
		Precision:   Precision(data[4]),
		Compression: Compression(data[5]),
	}
	if h.Arity < 2 || h.Arity > 4 {
		return Header{}, fmt.Errorf("%w: arity %d", ErrInvalidFrame, h.Arity)
	}
	if h.Precision > PrecisionFloat16 {
		return Header{}, fmt.Errorf("%w: %s", ErrUnknownPrecision, h.Precision)
	}
	if !h.Compression.valid() {
		return Header{}, fmt.Errorf("%w: %s", ErrUnknownCompression, h.Compression)
	}

	count, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[8:]))
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrInvalidFrame, err)
	}
	h.Count = count

	return h, nil
}

// Decode unpacks a frame produced by Encode for the same vector type. The
// checksum is verified before the payload is decompressed.
func Decode[V vecmath.Fixed](data []byte) ([]V, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) < frameHeaderSize+blockHeaderSize+hash.Size {
		return nil, fmt.Errorf("%w: frame too small for block and checksum", ErrInvalidFrame)
	}
	if !hash.Verify(data) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFrame, ErrChecksumMismatch)
	}

	if arity := layout.Arity[V](); h.Arity != arity {
		return nil, &ArityError{Want: arity, Got: h.Arity}
	}

	components, err := conv.MulInt(h.Count, h.Arity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFrame, err)
	}
	size, err := conv.MulInt(components, h.Precision.size())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFrame, err)
	}

	payload, err := readBlock(data[frameHeaderSize:len(data)-hash.Size], h.Compression, size)
	if err != nil {
		return nil, err
	}

	// payload now holds exactly Count vectors, which bounds this allocation.
	out := make([]V, h.Count)
	fs := layout.Floats(out)
	switch h.Precision {
	case PrecisionFloat16:
		for i := range fs {
			fs[i] = float16.Frombits(binary.LittleEndian.Uint16(payload[2*i:])).Float32()
		}
	default:
		for i := range fs {
			fs[i] = math.Float32frombits(binary.LittleEndian.Uint32(payload[4*i:]))
		}
	}

	return out, nil
}
