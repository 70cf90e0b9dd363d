package common

import "math/bits"

// MinAlloc is the smallest capacity handed out for a growable buffer.
// Requests below it are rounded up so tiny appends do not thrash the
// allocator.
const MinAlloc = 64

// GrowTo returns the capacity to allocate when a buffer holding cur bytes
// needs room for at least need bytes total. The result is never below
// need, never below MinAlloc, and rounds up to the next power of two so
// repeated appends amortize to O(1).
func GrowTo(cur, need int) int {
	if need < cur {
		need = cur
	}
	if need < MinAlloc {
		return MinAlloc
	}
	return NextPow2(need)
}

// NextPow2 returns the smallest power of two >= n. n must be positive.
func NextPow2(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// Size classes for pooled allocations, power-of-two tiers from 32 bytes
// to 8 MB. Sizes above MaxPooled bypass the pools entirely.
const (
	Size32   = 1 << 5
	Size512  = 1 << 9
	Size4K   = 1 << 12
	Size16K  = 1 << 14
	Size64K  = 1 << 16
	Size256K = 1 << 18
	Size1M   = 1 << 20
	Size4M   = 1 << 22
	Size8M   = 1 << 23

	MaxPooled = Size8M
)

// SizeClasses lists the pooled tiers in ascending order.
var SizeClasses = [...]int{
	Size32, Size512, Size4K, Size16K, Size64K, Size256K, Size1M, Size4M, Size8M,
}

// ClassFor returns the index in SizeClasses of the smallest tier that can
// hold size bytes, or -1 if size exceeds MaxPooled.
func ClassFor(size int) int {
	for i, c := range SizeClasses {
		if size <= c {
			return i
		}
	}
	return -1
}

// ClassOf returns the index of the tier whose capacity is exactly size,
// or -1 when size is not a pooled tier. Used when returning storage to a
// pool: only buffers that came out of a pool go back in.
func ClassOf(size int) int {
	for i, c := range SizeClasses {
		if size == c {
			return i
		}
	}
	return -1
}
