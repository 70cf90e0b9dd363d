package bytebuf

// Limit caps how many bytes may be written through an inner BufMut. No
// bytes are copied; the adapter only clamps the inner cursor's writable
// region.
type Limit struct {
	inner BufMut
	limit int
}

// NewLimit wraps b, allowing at most limit bytes to be written through
// the adapter. A negative limit is treated as zero.
func NewLimit(b BufMut, limit int) *Limit {
	if limit < 0 {
		limit = 0
	}
	return &Limit{inner: b, limit: limit}
}

// RemainingMut returns the lesser of the cap and the inner cursor's
// writable capacity.
func (l *Limit) RemainingMut() int {
	if r := l.inner.RemainingMut(); r < l.limit {
		return r
	}
	return l.limit
}

// ChunkMut returns the inner writable region clamped to the cap.
func (l *Limit) ChunkMut() []byte {
	c := l.inner.ChunkMut()
	if len(c) > l.limit {
		c = c[:l.limit]
	}
	return c
}

// AdvanceMut marks n bytes written on the inner cursor and decrements
// the cap. Panics if n exceeds the cap or the inner writable capacity.
func (l *Limit) AdvanceMut(n int) {
	if n < 0 || n > l.limit {
		panicPut(n, l.limit)
	}
	l.inner.AdvanceMut(n)
	l.limit -= n
}

// Limit returns the number of bytes still permitted through the adapter.
func (l *Limit) Limit() int {
	return l.limit
}

// SetLimit resets the cap. The inner cursor's position is unaffected.
func (l *Limit) SetLimit(n int) {
	if n < 0 {
		n = 0
	}
	l.limit = n
}

// Inner returns the wrapped cursor.
func (l *Limit) Inner() BufMut {
	return l.inner
}
