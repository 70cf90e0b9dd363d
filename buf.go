// Package bytebuf provides a zero-copy byte-buffer primitive: an
// immutable, cheaply-clonable view over a byte region (Bytes), its
// mutable growable counterpart (BytesMut), and the cursor abstractions
// (Buf, BufMut) used to read and write such buffers sequentially.
//
// Producers obtain a BytesMut, write into it, and Freeze it into a Bytes;
// consumers read through Buf and slice into further Bytes that share the
// same backing. Slicing, splitting and cloning never copy bytes; a copy
// happens only when mutation is attempted on storage another handle can
// still observe (copy-on-write).
package bytebuf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnderflow is returned by the fixed-width Get helpers and CopyToSlice
// when a buffer holds fewer remaining bytes than requested. It is
// distinct from the panics raised on out-of-range Advance or Slice calls:
// underflow is an expected streaming condition callers retry once more
// data arrives, not a logic error.
var ErrUnderflow = errors.New("bytebuf: buffer underflow")

// Buf is a read cursor over a sequence of bytes.
//
// Chunk returns a contiguous run of the next unread bytes; it may be
// shorter than Remaining for fragmented implementations (such as Chain),
// but must be non-empty whenever Remaining is positive. Callers loop
// over Chunk/Advance until Remaining reaches zero.
type Buf interface {
	// Remaining returns the count of unread bytes.
	Remaining() int

	// Chunk returns a contiguous slice of the next unread bytes, of
	// unspecified length (at most Remaining). The slice is invalidated
	// by Advance.
	Chunk() []byte

	// Advance consumes n bytes from the front of the cursor. Panics if
	// n exceeds Remaining.
	Advance(n int)
}

// SeekBuf extends Buf with non-consuming access at arbitrary positions:
// lookahead and lookbehind without advancing the cursor.
type SeekBuf interface {
	Buf

	// ChunkFrom returns a chunk starting at the inclusive position
	// start, or (nil, false) when start is out of range.
	ChunkFrom(start int) ([]byte, bool)

	// ChunkTo returns a chunk ending at the exclusive position end, or
	// (nil, false) when end is out of range. ChunkTo(0) returns an empty
	// slice and true: the empty prefix is a valid chunk of any buffer.
	ChunkTo(end int) ([]byte, bool)
}

// CopyToSlice fills dst from b, consuming len(dst) bytes. Returns
// ErrUnderflow (and consumes nothing) when fewer bytes remain.
func CopyToSlice(b Buf, dst []byte) error {
	if b.Remaining() < len(dst) {
		return ErrUnderflow
	}
	copyChunks(b, dst)
	return nil
}

// copyChunks fills dst across possibly fragmented chunks. The caller has
// verified that enough bytes remain.
func copyChunks(b Buf, dst []byte) {
	for len(dst) > 0 {
		n := copy(dst, b.Chunk())
		b.Advance(n)
		dst = dst[n:]
	}
}

// GetUint8 consumes one byte.
func GetUint8(b Buf) (uint8, error) {
	if b.Remaining() < 1 {
		return 0, ErrUnderflow
	}
	v := b.Chunk()[0]
	b.Advance(1)
	return v, nil
}

// GetUint16BE consumes two bytes as a big-endian uint16.
func GetUint16BE(b Buf) (uint16, error) {
	c, err := getFixed(b, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(c), nil
}

// GetUint16LE consumes two bytes as a little-endian uint16.
func GetUint16LE(b Buf) (uint16, error) {
	c, err := getFixed(b, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(c), nil
}

// GetUint24BE consumes three bytes as a big-endian unsigned integer.
func GetUint24BE(b Buf) (uint32, error) {
	c, err := getFixed(b, 3)
	if err != nil {
		return 0, err
	}
	return uint32(c[0])<<16 | uint32(c[1])<<8 | uint32(c[2]), nil
}

// GetUint24LE consumes three bytes as a little-endian unsigned integer.
func GetUint24LE(b Buf) (uint32, error) {
	c, err := getFixed(b, 3)
	if err != nil {
		return 0, err
	}
	return uint32(c[2])<<16 | uint32(c[1])<<8 | uint32(c[0]), nil
}

// GetUint32BE consumes four bytes as a big-endian uint32.
func GetUint32BE(b Buf) (uint32, error) {
	c, err := getFixed(b, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(c), nil
}

// GetUint32LE consumes four bytes as a little-endian uint32.
func GetUint32LE(b Buf) (uint32, error) {
	c, err := getFixed(b, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(c), nil
}

// GetUint64BE consumes eight bytes as a big-endian uint64.
func GetUint64BE(b Buf) (uint64, error) {
	c, err := getFixed(b, 8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(c), nil
}

// GetUint64LE consumes eight bytes as a little-endian uint64.
func GetUint64LE(b Buf) (uint64, error) {
	c, err := getFixed(b, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(c), nil
}

// getScratch holds bytes gathered across chunk boundaries; wide enough
// for the largest fixed width.
type getScratch = [8]byte

// getFixed consumes n bytes and returns them contiguously, either as a
// direct sub-slice of the current chunk (fast path, decoded before the
// advance) or gathered into a scratch copy when the read straddles a
// chunk boundary.
func getFixed(b Buf, n int) ([]byte, error) {
	if b.Remaining() < n {
		return nil, ErrUnderflow
	}
	if c := b.Chunk(); len(c) >= n {
		var s getScratch
		copy(s[:], c[:n])
		b.Advance(n)
		return s[:n], nil
	}
	var s getScratch
	copyChunks(b, s[:n])
	return s[:n], nil
}

func panicAdvance(n, remaining int) {
	panic(fmt.Sprintf("bytebuf: advance %d exceeds remaining %d", n, remaining))
}

var (
	_ Buf     = (*Bytes)(nil)
	_ SeekBuf = (*Bytes)(nil)
	_ Buf     = (*BytesMut)(nil)
	_ BufMut  = (*BytesMut)(nil)
	_ SeekBuf = (*BytesMut)(nil)
	_ Buf     = (*Take)(nil)
	_ Buf     = (*Chain)(nil)
	_ BufMut  = (*Limit)(nil)
	_ BufMut  = (*ChainMut)(nil)
)
