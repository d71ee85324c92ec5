// Package hash provides checksums for encoded vector frames.
//
// All frame checksums use CRC32-Castagnoli (CRC32C), which Go's hash/crc32
// accelerates with SSE4.2 on x86 and the CRC extension on ARM.
//
//	framed := hash.Append(data, data)
//	ok := hash.Verify(framed)
package hash
