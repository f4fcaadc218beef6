package format

import (
	"encoding/binary"

	"github.com/joshuapare/acctkit/internal/buf"
)

// Little-endian field codecs for record bodies. Offsets are relative to the
// body (byte 8 of the account); callers have already bounds-checked the body
// against the record size, so these index directly.

// ReadU64 reads a uint64 value from the buffer at the specified offset.
func ReadU64(b []byte, off int) uint64 {
	return buf.U64LE(b[off : off+8])
}

// ReadI64 reads an int64 value from the buffer at the specified offset.
func ReadI64(b []byte, off int) int64 {
	return buf.I64LE(b[off : off+8])
}

// PutU64 writes a uint64 value to the buffer at the specified offset.
func PutU64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}

// PutI64 writes an int64 value to the buffer at the specified offset.
func PutI64(b []byte, off int, v int64) {
	binary.LittleEndian.PutUint64(b[off:off+8], uint64(v))
}

// ReadKey copies the 32-byte field at off.
func ReadKey(b []byte, off int) [KeySize]byte {
	var k [KeySize]byte
	copy(k[:], b[off:off+KeySize])
	return k
}

// PutKey writes a 32-byte field at off.
func PutKey(b []byte, off int, k [KeySize]byte) {
	copy(b[off:off+KeySize], k[:])
}
