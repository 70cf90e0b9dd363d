package bytebuf

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// inlineCap is the largest length stored directly inside a handle with no
// heap indirection. Sized so the Bytes struct rounds out to a single
// cache line.
const inlineCap = 15

// Bytes is an immutable, cheaply-clonable window into a byte region.
//
// Cloning is O(1): handles sharing a refcounted backing all point into the
// same storage, and slicing or splitting a handle never copies the
// underlying bytes. Content reached through a Bytes never changes; to
// build content use BytesMut and Freeze it.
//
// The zero value is an empty, ready-to-use handle. Methods use pointer
// receivers; duplicate a handle with Clone rather than by assignment so
// the backing's reference count stays accurate.
type Bytes struct {
	view  []byte
	state unsafe.Pointer
	vt    *vtable
	ilen  uint8
	inl   [inlineCap]byte
}

// FromStatic wraps memory that lives for the remainder of the process,
// typically a package-level literal. No allocation, no copy; clone and
// release are no-ops. The caller must not mutate b afterwards.
func FromStatic(b []byte) Bytes {
	return Bytes{view: b, vt: &staticVtable}
}

// FromString copies s into a new handle.
func FromString(s string) Bytes {
	return CopyFromSlice([]byte(s))
}

// CopyFromSlice copies p into a new handle. Short inputs are stored
// inline in the handle itself; anything longer gets a fresh refcounted
// allocation.
func CopyFromSlice(p []byte) Bytes {
	if len(p) <= inlineCap {
		b := Bytes{vt: &inlineVtable, ilen: uint8(len(p))}
		copy(b.inl[:], p)
		return b
	}
	store := make([]byte, len(p))
	copy(store, p)
	s := newShared(store, nil)
	return Bytes{view: store, state: unsafe.Pointer(s), vt: &sharedVtable}
}

// fromShared adopts one reference of s, windowed to view. The caller
// transfers its reference; it must not release s afterwards.
func fromShared(s *sharedState, view []byte) Bytes {
	return Bytes{view: view, state: unsafe.Pointer(s), vt: &sharedVtable}
}

func (b *Bytes) load() []byte {
	if b.vt == &inlineVtable {
		return b.inl[:b.ilen]
	}
	return b.view
}

// Len returns the number of bytes in the view.
func (b *Bytes) Len() int {
	return len(b.load())
}

// IsEmpty reports whether the view is empty.
func (b *Bytes) IsEmpty() bool {
	return b.Len() == 0
}

// AsSlice returns the viewed bytes without copying. The slice is valid
// for the lifetime of the handle and must not be modified.
func (b *Bytes) AsSlice() []byte {
	return b.load()
}

// String returns a copy of the content as a string.
func (b *Bytes) String() string {
	return string(b.load())
}

// At returns the byte at index i. Panics if i is out of range.
func (b *Bytes) At(i int) byte {
	return b.load()[i]
}

// Clone returns a second handle over the same content. O(1): shared
// backings gain a reference, static backings are borrowed again, inline
// bytes are copied within the handle. Dropping either handle leaves the
// other fully usable.
func (b *Bytes) Clone() Bytes {
	if b.vt == nil {
		return Bytes{}
	}
	state, view := b.vt.clone(b.state, b.view)
	nb := *b
	nb.state, nb.view = state, view
	return nb
}

// Release gives up this handle's share of the backing and resets the
// handle to empty. For pooled backings this is what returns the storage
// to its pool; for everything else the garbage collector is the backstop
// and calling Release is optional. Release at most once per handle.
func (b *Bytes) Release() {
	if b.vt == nil {
		return
	}
	b.vt.drop(b.state, b.view)
	*b = Bytes{}
}

// Slice returns a handle over the half-open range [begin, end) of the
// view. O(1) and zero-copy: the result shares the backing. Panics if the
// range is out of bounds or inverted; sharing never silently truncates.
func (b *Bytes) Slice(begin, end int) Bytes {
	n := b.Len()
	if begin < 0 || begin > end || end > n {
		panic(fmt.Sprintf("bytebuf: slice bounds out of range [%d:%d] with length %d", begin, end, n))
	}
	if b.vt == &inlineVtable || b.vt == nil {
		nb := Bytes{vt: &inlineVtable, ilen: uint8(end - begin)}
		copy(nb.inl[:], b.inl[begin:end])
		return nb
	}
	state, _ := b.vt.clone(b.state, b.view)
	return Bytes{view: b.view[begin:end:end], state: state, vt: b.vt}
}

// SplitOff splits the handle at n, keeping [0, n) in the receiver and
// returning [n, len). Both handles share the backing; no bytes move.
// Panics if n is out of range.
func (b *Bytes) SplitOff(n int) Bytes {
	tail := b.Slice(n, b.Len())
	b.truncateView(n)
	return tail
}

// SplitTo splits the handle at n, returning [0, n) and keeping [n, len)
// in the receiver. Both handles share the backing; no bytes move. Panics
// if n is out of range.
func (b *Bytes) SplitTo(n int) Bytes {
	head := b.Slice(0, n)
	b.advanceView(n)
	return head
}

func (b *Bytes) truncateView(n int) {
	if b.vt == &inlineVtable || b.vt == nil {
		b.ilen = uint8(n)
		return
	}
	b.view = b.view[:n:n]
}

func (b *Bytes) advanceView(n int) {
	if b.vt == &inlineVtable || b.vt == nil {
		copy(b.inl[:], b.inl[n:b.ilen])
		b.ilen -= uint8(n)
		return
	}
	b.view = b.view[n:]
}

// Equal reports whether both handles hold identical content. Identity of
// the backing is irrelevant.
func (b *Bytes) Equal(o *Bytes) bool {
	return bytes.Equal(b.load(), o.load())
}

// EqualSlice reports whether the content equals p.
func (b *Bytes) EqualSlice(p []byte) bool {
	return bytes.Equal(b.load(), p)
}

// Compare orders two handles lexicographically by content, returning
// -1, 0 or +1 like bytes.Compare.
func (b *Bytes) Compare(o *Bytes) int {
	return bytes.Compare(b.load(), o.load())
}

// Hash returns a 64-bit content hash. Handles with equal content hash
// identically regardless of backing.
func (b *Bytes) Hash() uint64 {
	return xxhash.Sum64(b.load())
}

// IntoMut converts the handle into a mutable buffer, consuming it.
//
// When the receiver holds the only reference to a shared backing the
// allocation is taken over in place with no copy. Otherwise (static,
// inline, or a backing still visible through sibling handles) the content
// is copied first, so mutations are never observable through clones made
// earlier. The receiver is reset to empty either way.
func (b *Bytes) IntoMut() BytesMut {
	if b.vt == &sharedVtable {
		s := (*sharedState)(b.state)
		if s.isUnique() && len(b.view) > 0 {
			off := sliceOffset(s.store, b.view)
			m := BytesMut{
				buf:    s.store[off : off+len(b.view) : len(s.store)],
				off:    off,
				shared: s,
			}
			*b = Bytes{}
			return m
		}
	}
	m := FromSlice(b.load())
	b.Release()
	return m
}

// Buf implementation: a Bytes is its own read cursor; advancing narrows
// the view and never touches the backing.

// Remaining returns the number of unread bytes.
func (b *Bytes) Remaining() int {
	return b.Len()
}

// Chunk returns the unread bytes. Always contiguous for Bytes.
func (b *Bytes) Chunk() []byte {
	return b.load()
}

// Advance consumes n bytes from the front of the view. Panics if
// n exceeds Remaining.
func (b *Bytes) Advance(n int) {
	if n < 0 || n > b.Len() {
		panic(fmt.Sprintf("bytebuf: advance %d exceeds remaining %d", n, b.Len()))
	}
	b.advanceView(n)
}

// ChunkFrom returns the bytes from position start to the end of the view
// without advancing, or (nil, false) when start is out of range.
func (b *Bytes) ChunkFrom(start int) ([]byte, bool) {
	s := b.load()
	if start < 0 || start > len(s) {
		return nil, false
	}
	return s[start:], true
}

// ChunkTo returns the bytes up to (excluding) position end without
// advancing, or (nil, false) when end is out of range. ChunkTo(0) returns
// an empty slice, not false: the empty prefix is a valid chunk of any
// buffer.
func (b *Bytes) ChunkTo(end int) ([]byte, bool) {
	s := b.load()
	if end < 0 || end > len(s) {
		return nil, false
	}
	return s[:end], true
}
