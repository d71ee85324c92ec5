package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression of a frame.
type Compression uint8

const (
	// CompressionNone stores components uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio, good for cold data).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

func (c Compression) valid() bool { return c <= CompressionZSTD }

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

// zstdMaxWindow matches the encoder's default window. Larger windows come
// from frames we did not write and would size the history buffer.
const zstdMaxWindow = 8 << 20

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxWindow(zstdMaxWindow),
	)
	return dec
}

// lz4MaxExpansion bounds the output of an LZ4 block of n bytes: a match
// token can encode at most 255 bytes per input byte.
func lz4MaxExpansion(n int) int {
	return 255*n + 16
}

// blockHeaderSize covers [UncompressedSize uint32][CompressedSize uint32].
// CompressedSize == 0 means the data follows uncompressed.
const blockHeaderSize = 8

// appendBlock appends data to dst as a block. Compression that does not
// save at least 10% is discarded and the block is stored raw.
func appendBlock(dst, data []byte, c Compression) ([]byte, error) {
	var compressed []byte

	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(len(data)))
		dst = binary.LittleEndian.AppendUint32(dst, 0)
		return append(dst, data...), nil
	}

	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(data)))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(compressed)))
	return append(dst, compressed...), nil
}

// readBlock decodes a block whose uncompressed size must equal want.
func readBlock(data []byte, c Compression, want int) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrInvalidFrame)
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])
	body := data[blockHeaderSize:]

	if uint64(uncompressedSize) != uint64(want) {
		return nil, fmt.Errorf("%w: block holds %d bytes, header implies %d", ErrInvalidFrame, uncompressedSize, want)
	}

	if compressedSize == 0 {
		if len(body) != want {
			return nil, fmt.Errorf("%w: raw block size mismatch", ErrInvalidFrame)
		}
		return body, nil
	}

	if uint64(len(body)) != uint64(compressedSize) {
		return nil, fmt.Errorf("%w: compressed block size mismatch", ErrInvalidFrame)
	}

	// Nothing below may allocate want bytes before the body is known to be
	// able to produce them; want comes from an untrusted header.
	switch c {
	case CompressionLZ4:
		if want > lz4MaxExpansion(len(body)) {
			return nil, fmt.Errorf("%w: lz4 block of %d bytes cannot expand to %d", ErrInvalidFrame, len(body), want)
		}
		result := make([]byte, want)
		n, err := lz4.UncompressBlock(body, result)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %w", ErrInvalidFrame, err)
		}
		if n != want {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrInvalidFrame)
		}
		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		if err := dec.Reset(bytes.NewReader(body)); err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrInvalidFrame, err)
		}

		// The buffer grows with the decoded output, never with the header.
		var buf bytes.Buffer
		n, err := io.Copy(&buf, io.LimitReader(dec, int64(want)+1))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrInvalidFrame, err)
		}
		if n != int64(want) {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrInvalidFrame)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: compressed block in uncompressed frame", ErrInvalidFrame)
	}
}
