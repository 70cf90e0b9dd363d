package bytebuf

import (
	"sync/atomic"
	"unsafe"
)

// A backing is one of a closed set of storage representations: borrowed
// static memory, a uniquely-owned growable allocation, a shared allocation
// behind an atomic refcount, or a few bytes stored inline in the handle
// itself. Every representation is driven through the same fixed dispatch
// table so that clone and release never pay for interface dispatch or an
// allocation on the hot path.
//
// The raw form of a backing is the pair (state, view): state points at
// representation-specific bookkeeping (only the shared kind has any) and
// view is the window the handle exposes. Reconstructing a handle from a
// raw pair is unsafe: the pair must have been produced by the matching
// representation. That precondition is the caller's responsibility and is
// never checked at runtime.
type vtable struct {
	// clone produces a second owning pair. Shared backings bump the
	// refcount; static and inline backings are no-ops. Unique backings are
	// never cloned through this path: callers copy-on-write instead.
	clone func(state unsafe.Pointer, view []byte) (unsafe.Pointer, []byte)

	// drop releases one ownership share. Shared backings decrement the
	// refcount and hand the storage back at zero; the rest are no-ops.
	drop func(state unsafe.Pointer, view []byte)
}

var staticVtable = vtable{
	clone: func(state unsafe.Pointer, view []byte) (unsafe.Pointer, []byte) {
		return state, view
	},
	drop: func(unsafe.Pointer, []byte) {},
}

// Inline bytes travel inside the handle, so cloning is the struct copy the
// caller already performs; nothing to do here.
var inlineVtable = vtable{
	clone: func(state unsafe.Pointer, view []byte) (unsafe.Pointer, []byte) {
		return state, view
	},
	drop: func(unsafe.Pointer, []byte) {},
}

var sharedVtable = vtable{
	clone: func(state unsafe.Pointer, view []byte) (unsafe.Pointer, []byte) {
		(*sharedState)(state).retain()
		return state, view
	},
	drop: func(state unsafe.Pointer, view []byte) {
		(*sharedState)(state).release()
	},
}

// sharedState is the refcounted bookkeeping behind the shared backing
// kind. store is the full allocation every sharing handle windows into;
// free, when non-nil, returns the storage to its pool once the last
// reference is released.
//
// The refcount is the only synchronization in the package. Content behind
// a sharedState is immutable while the count may exceed one; a mutator
// must either observe a count of one (sole owner, in-place mutation is
// safe) or copy first.
type sharedState struct {
	refs  atomic.Int32
	store []byte
	free  func([]byte)
}

func newShared(store []byte, free func([]byte)) *sharedState {
	s := &sharedState{store: store, free: free}
	s.refs.Store(1)
	return s
}

func (s *sharedState) retain() {
	s.refs.Add(1)
}

func (s *sharedState) release() {
	if s.refs.Add(-1) == 0 {
		if s.free != nil {
			s.free(s.store)
		}
		s.store = nil
	}
}

// isUnique reports whether the calling handle holds the only reference.
// A true result is stable: no other handle exists that could re-share the
// backing, so the caller may mutate in place.
func (s *sharedState) isUnique() bool {
	return s.refs.Load() == 1
}

// sliceOffset returns the position of view's first byte within store.
// Both slices must alias the same allocation and view must be non-empty.
func sliceOffset(store, view []byte) int {
	return int(uintptr(unsafe.Pointer(&view[0])) - uintptr(unsafe.Pointer(&store[0])))
}
