package bytebuf

import (
	"encoding/binary"
	"fmt"
)

// BufMut is a write cursor over a region of writable, possibly
// uninitialized capacity.
//
// The contract is a two-step protocol: obtain a writable region with
// ChunkMut, write some prefix of it, then assert exactly how many bytes
// were written with AdvanceMut. Writing into the region does not itself
// advance the cursor. The region may hold stale bytes left over from
// earlier use of the allocation; a caller that advances past bytes it
// never wrote exposes that stale content. This precondition is the
// central contract of the package and is not runtime-checked.
type BufMut interface {
	// RemainingMut returns the writable capacity left.
	RemainingMut() int

	// ChunkMut returns a contiguous writable region of unspecified
	// length (at most RemainingMut). The slice is invalidated by
	// AdvanceMut and by any reallocation of the underlying buffer.
	ChunkMut() []byte

	// AdvanceMut marks the first n bytes of the most recent ChunkMut
	// region as written. Panics if n exceeds RemainingMut.
	AdvanceMut(n int)
}

// PutSlice writes all of p. Panics if fewer than len(p) writable bytes
// remain; callers size or Reserve the destination first.
func PutSlice(b BufMut, p []byte) {
	if b.RemainingMut() < len(p) {
		panicPut(len(p), b.RemainingMut())
	}
	for len(p) > 0 {
		n := copy(b.ChunkMut(), p)
		b.AdvanceMut(n)
		p = p[n:]
	}
}

// PutUint8 writes one byte. Panics if no writable bytes remain.
func PutUint8(b BufMut, v uint8) {
	var s [1]byte
	s[0] = v
	PutSlice(b, s[:])
}

// PutUint16BE writes v as two big-endian bytes.
func PutUint16BE(b BufMut, v uint16) {
	var s [2]byte
	binary.BigEndian.PutUint16(s[:], v)
	PutSlice(b, s[:])
}

// PutUint16LE writes v as two little-endian bytes.
func PutUint16LE(b BufMut, v uint16) {
	var s [2]byte
	binary.LittleEndian.PutUint16(s[:], v)
	PutSlice(b, s[:])
}

// PutUint24BE writes the low 24 bits of v as three big-endian bytes.
func PutUint24BE(b BufMut, v uint32) {
	s := [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}
	PutSlice(b, s[:])
}

// PutUint24LE writes the low 24 bits of v as three little-endian bytes.
func PutUint24LE(b BufMut, v uint32) {
	s := [3]byte{byte(v), byte(v >> 8), byte(v >> 16)}
	PutSlice(b, s[:])
}

// PutUint32BE writes v as four big-endian bytes.
func PutUint32BE(b BufMut, v uint32) {
	var s [4]byte
	binary.BigEndian.PutUint32(s[:], v)
	PutSlice(b, s[:])
}

// PutUint32LE writes v as four little-endian bytes.
func PutUint32LE(b BufMut, v uint32) {
	var s [4]byte
	binary.LittleEndian.PutUint32(s[:], v)
	PutSlice(b, s[:])
}

// PutUint64BE writes v as eight big-endian bytes.
func PutUint64BE(b BufMut, v uint64) {
	var s [8]byte
	binary.BigEndian.PutUint64(s[:], v)
	PutSlice(b, s[:])
}

// PutUint64LE writes v as eight little-endian bytes.
func PutUint64LE(b BufMut, v uint64) {
	var s [8]byte
	binary.LittleEndian.PutUint64(s[:], v)
	PutSlice(b, s[:])
}

func panicPut(n, writable int) {
	panic(fmt.Sprintf("bytebuf: put of %d bytes exceeds writable %d", n, writable))
}
