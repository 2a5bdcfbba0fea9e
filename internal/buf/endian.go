// Package buf contains helpers for endian-safe encoding of registry value data.
package buf

import "encoding/binary"

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// LE32 returns v as a fresh 4-byte little-endian slice, the layout of REG_DWORD data.
func LE32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, 4), v)
}
