package hash

import (
	"encoding/binary"
	"hash/crc32"
)

// Size is the encoded size of a checksum in bytes.
const Size = 4

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Append appends the little-endian checksum of data to dst.
func Append(dst, data []byte) []byte {
	return binary.LittleEndian.AppendUint32(dst, CRC32C(data))
}

// Verify reports whether data ends with the checksum of the bytes before it.
func Verify(data []byte) bool {
	if len(data) < Size {
		return false
	}
	body, sum := data[:len(data)-Size], data[len(data)-Size:]
	return binary.LittleEndian.Uint32(sum) == CRC32C(body)
}
