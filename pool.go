package bytebuf

import (
	"sync"

	"github.com/rawbytedev/bytebuf/internal/common"
)

// Buffer pools in power-of-two tiers. Each pool hands out slices of a
// fixed capacity so that hot allocation sizes recycle instead of hitting
// the heap. Requests above the largest tier allocate directly and are
// left to the garbage collector.
var pools [len(common.SizeClasses)]sync.Pool

func init() {
	for i, size := range common.SizeClasses {
		size := size
		pools[i].New = func() any { return make([]byte, size) }
	}
}

// allocPooled returns a slice with capacity of the smallest tier holding
// size bytes, or a direct allocation when size exceeds every tier.
func allocPooled(size int) []byte {
	if i := common.ClassFor(size); i >= 0 {
		return pools[i].Get().([]byte)
	}
	return make([]byte, size)
}

// freePooled returns storage to its tier. Slices whose capacity is not
// an exact tier (oversized direct allocations) are left to the GC.
func freePooled(p []byte) {
	if i := common.ClassOf(cap(p)); i >= 0 {
		pools[i].Put(p[:cap(p)])
	}
}

// NewPooled returns an empty BytesMut backed by pooled storage with
// capacity for at least n bytes. The backing is refcounted from the
// start: when the last handle derived from it (splits, frozen Bytes,
// clones of those) is Released, the storage returns to its pool.
// Forgetting to Release leaks nothing — the GC reclaims the memory —
// but forfeits the recycling.
func NewPooled(n int) BytesMut {
	if n <= 0 {
		return BytesMut{}
	}
	store := allocPooled(n)
	s := newShared(store, freePooled)
	return BytesMut{buf: store[:0], shared: s}
}
