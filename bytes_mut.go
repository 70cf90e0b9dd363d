package bytebuf

import (
	"fmt"

	"github.com/rawbytedev/bytebuf/internal/common"
)

// BytesMut is a unique, growable window over a byte allocation. It tracks
// an initialized readable prefix (Len) and a writable extent (Cap),
// supports in-place append, splitting into independently growing halves,
// and freezing into an immutable Bytes without copying.
//
// A BytesMut is a single-owner resource: it is never shared between
// goroutines, and handing one to another goroutine transfers ownership.
// Splitting lazily promotes the backing from uniquely-owned to
// refcount-shared; from then on the count decides whether an operation
// may reuse the allocation in place or must copy first.
//
// The zero value is an empty buffer ready for use.
type BytesMut struct {
	// buf is this handle's window: buf[:len] is initialized content,
	// buf[len:cap] is writable spare capacity. The cap is clamped at
	// split points so sibling halves can never write into each other.
	buf []byte

	// off is the window's start within shared.store; 0 while unique.
	off int

	// shared is nil while this handle uniquely owns the allocation.
	// Non-nil after a split, a freeze handoff, or pooled allocation.
	shared *sharedState
}

// NewBytesMut returns an empty buffer with no preallocated storage.
func NewBytesMut() BytesMut {
	return BytesMut{}
}

// WithCapacity returns an empty buffer able to hold at least n bytes
// before its first reallocation.
func WithCapacity(n int) BytesMut {
	if n <= 0 {
		return BytesMut{}
	}
	return BytesMut{buf: make([]byte, 0, n)}
}

// FromSlice copies p into a freshly allocated buffer.
func FromSlice(p []byte) BytesMut {
	if len(p) == 0 {
		return BytesMut{}
	}
	buf := make([]byte, len(p), common.GrowTo(0, len(p)))
	copy(buf, p)
	return BytesMut{buf: buf}
}

// Len returns the initialized length.
func (b *BytesMut) Len() int {
	return len(b.buf)
}

// Cap returns the writable extent of this handle's window.
func (b *BytesMut) Cap() int {
	return cap(b.buf)
}

// IsEmpty reports whether no bytes have been written.
func (b *BytesMut) IsEmpty() bool {
	return len(b.buf) == 0
}

// AsSlice returns the initialized bytes without copying. The slice is
// invalidated by any operation that may reallocate (Reserve, Extend...);
// do not hold it across such calls.
func (b *BytesMut) AsSlice() []byte {
	return b.buf
}

// String returns a copy of the initialized bytes as a string.
func (b *BytesMut) String() string {
	return string(b.buf)
}

// spare returns the writable capacity left in the window.
func (b *BytesMut) spare() int {
	return cap(b.buf) - len(b.buf)
}

// Reserve ensures at least n more bytes can be written without another
// reallocation. Existing content is preserved; previously obtained slices
// (AsSlice, ChunkMut) are invalidated when a reallocation occurs.
// Requesting less than the available spare capacity is a no-op; capacity
// never shrinks.
//
// When the handle is the sole owner of a shared backing whose earlier
// bytes have been consumed or split away, the content is slid down to
// reclaim the origin allocation instead of allocating anew.
func (b *BytesMut) Reserve(n int) {
	if n <= b.spare() {
		return
	}
	if s := b.shared; s != nil && s.isUnique() && len(s.store)-len(b.buf) >= n {
		// Sole owner: slide the window back to the start of the store and
		// take the whole allocation as capacity again.
		copy(s.store, b.buf)
		b.buf = s.store[:len(b.buf)]
		b.off = 0
		return
	}
	newCap := common.GrowTo(cap(b.buf), len(b.buf)+n)
	buf := make([]byte, len(b.buf), newCap)
	copy(buf, b.buf)
	if b.shared != nil {
		b.shared.release()
		b.shared = nil
	}
	b.buf = buf
	b.off = 0
}

// ExtendFromSlice appends p, growing as needed.
func (b *BytesMut) ExtendFromSlice(p []byte) {
	if len(p) == 0 {
		return
	}
	b.Reserve(len(p))
	b.buf = append(b.buf, p...)
}

// Write appends p, growing as needed. Implements io.Writer and never
// fails.
func (b *BytesMut) Write(p []byte) (int, error) {
	b.ExtendFromSlice(p)
	return len(p), nil
}

// WriteString appends s, growing as needed.
func (b *BytesMut) WriteString(s string) (int, error) {
	b.Reserve(len(s))
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte appends a single byte. Implements io.ByteWriter.
func (b *BytesMut) WriteByte(c byte) error {
	b.Reserve(1)
	b.buf = append(b.buf, c)
	return nil
}

// promote transitions the backing from uniquely-owned to shared. This is
// the explicit Unique -> Shared state change triggered by splitting and
// freezing; before it, no refcount exists at all.
func (b *BytesMut) promote() {
	if b.shared != nil {
		return
	}
	b.shared = newShared(b.buf[:cap(b.buf)], nil)
	b.off = 0
}

// SplitOff splits the buffer at n, keeping [0, n) in the receiver and
// returning a handle owning [n, len) along with all spare capacity beyond
// it. The receiver's capacity is capped at n, so the halves may grow and
// mutate independently without ever observing each other. Panics if n is
// out of range.
func (b *BytesMut) SplitOff(n int) BytesMut {
	if n < 0 || n > len(b.buf) {
		panic(fmt.Sprintf("bytebuf: split index %d out of range for length %d", n, len(b.buf)))
	}
	b.promote()
	b.shared.retain()
	s := b.shared
	tail := BytesMut{
		buf:    s.store[b.off+n : b.off+len(b.buf) : b.off+cap(b.buf)],
		off:    b.off + n,
		shared: s,
	}
	b.buf = s.store[b.off : b.off+n : b.off+n]
	return tail
}

// SplitTo splits the buffer at n, returning a handle owning [0, n) and
// keeping [n, len) plus the spare capacity in the receiver. Panics if n
// is out of range.
func (b *BytesMut) SplitTo(n int) BytesMut {
	if n < 0 || n > len(b.buf) {
		panic(fmt.Sprintf("bytebuf: split index %d out of range for length %d", n, len(b.buf)))
	}
	b.promote()
	b.shared.retain()
	s := b.shared
	head := BytesMut{
		buf:    s.store[b.off : b.off+n : b.off+n],
		off:    b.off,
		shared: s,
	}
	b.buf = s.store[b.off+n : b.off+len(b.buf) : b.off+cap(b.buf)]
	b.off += n
	return head
}

// Freeze converts the buffer into an immutable Bytes, consuming it. The
// backing transfers without a copy (small contents collapse into the
// handle itself, releasing the allocation early). No mutation through the
// receiver is possible afterwards.
func (b *BytesMut) Freeze() Bytes {
	if len(b.buf) <= inlineCap {
		out := CopyFromSlice(b.buf)
		b.Release()
		return out
	}
	b.promote()
	out := fromShared(b.shared, b.buf[:len(b.buf):len(b.buf)])
	*b = BytesMut{}
	return out
}

// Unsplit absorbs other, consuming it. When other is the receiver's
// sibling over the same backing and starts exactly where the receiver's
// content ends, the two windows are rejoined in place with no copy —
// the inverse of SplitOff on unmodified halves. Any other combination
// falls back to appending other's content.
func (b *BytesMut) Unsplit(other BytesMut) {
	if cap(b.buf) == 0 && b.shared == nil {
		*b = other
		return
	}
	if b.shared != nil && b.shared == other.shared &&
		other.off == b.off+len(b.buf) {
		capEnd := other.off - b.off + cap(other.buf)
		newLen := len(b.buf) + len(other.buf)
		b.buf = b.shared.store[b.off : b.off+newLen : b.off+capEnd]
		b.shared.release()
		return
	}
	b.ExtendFromSlice(other.buf)
	other.Release()
}

// Truncate shortens the initialized length to n. Capacity is unchanged;
// truncating to at or beyond the current length is a no-op.
func (b *BytesMut) Truncate(n int) {
	if n >= 0 && n < len(b.buf) {
		b.buf = b.buf[:n]
	}
}

// Clear empties the buffer, keeping its capacity.
func (b *BytesMut) Clear() {
	b.buf = b.buf[:0]
}

// Resize sets the initialized length to n, zero-filling any newly exposed
// bytes. Shrinking behaves like Truncate.
func (b *BytesMut) Resize(n int) {
	if n <= len(b.buf) {
		b.Truncate(n)
		return
	}
	b.Reserve(n - len(b.buf))
	grown := b.buf[len(b.buf):n]
	for i := range grown {
		grown[i] = 0
	}
	b.buf = b.buf[:n]
}

// Clone returns an independent deep copy. Unique ownership tracks no
// sharing, so duplicating a mutable buffer always copies content.
func (b *BytesMut) Clone() BytesMut {
	return FromSlice(b.buf)
}

// Release gives up the handle's share of the backing and resets it to
// empty. Required to return pooled storage promptly; optional otherwise.
func (b *BytesMut) Release() {
	if b.shared != nil {
		b.shared.release()
	}
	*b = BytesMut{}
}

// Buf implementation: reading consumes the initialized prefix.

// Remaining returns the number of unread bytes.
func (b *BytesMut) Remaining() int {
	return len(b.buf)
}

// Chunk returns the unread bytes. Always contiguous for BytesMut.
func (b *BytesMut) Chunk() []byte {
	return b.buf
}

// Advance consumes n bytes from the front. Panics if n exceeds Remaining.
func (b *BytesMut) Advance(n int) {
	if n < 0 || n > len(b.buf) {
		panic(fmt.Sprintf("bytebuf: advance %d exceeds remaining %d", n, len(b.buf)))
	}
	b.buf = b.buf[n:]
	b.off += n
}

// BufMut implementation.

// RemainingMut returns the writable capacity left in the window.
func (b *BytesMut) RemainingMut() int {
	return b.spare()
}

// ChunkMut returns the writable region between the initialized length and
// the window's capacity. Writing into it does not advance the buffer;
// call AdvanceMut with the count actually written. The region may hold
// leftover bytes from earlier use of the allocation — write before you
// read. Empty when no spare capacity remains; Reserve first.
func (b *BytesMut) ChunkMut() []byte {
	return b.buf[len(b.buf):cap(b.buf)]
}

// AdvanceMut extends the initialized length by n. The caller asserts that
// the first n bytes of the most recent ChunkMut region were written;
// advancing past bytes that were never written exposes stale storage.
// Panics if n exceeds RemainingMut.
func (b *BytesMut) AdvanceMut(n int) {
	if n < 0 || n > b.spare() {
		panic(fmt.Sprintf("bytebuf: advance_mut %d exceeds writable %d", n, b.spare()))
	}
	b.buf = b.buf[:len(b.buf)+n]
}

// ChunkFrom returns the initialized bytes from position start onward
// without advancing, or (nil, false) when start is out of range.
func (b *BytesMut) ChunkFrom(start int) ([]byte, bool) {
	if start < 0 || start > len(b.buf) {
		return nil, false
	}
	return b.buf[start:len(b.buf)], true
}

// ChunkTo returns the initialized bytes up to (excluding) position end
// without advancing, or (nil, false) when end is out of range. ChunkTo(0)
// returns an empty slice, not false.
func (b *BytesMut) ChunkTo(end int) ([]byte, bool) {
	if end < 0 || end > len(b.buf) {
		return nil, false
	}
	return b.buf[:end], true
}

// storeBase returns the window's backing pointer; used by tests to verify
// zero-copy behavior.
func (b *BytesMut) storeBase() *byte {
	if cap(b.buf) == 0 {
		return nil
	}
	return &b.buf[:cap(b.buf)][0]
}
