package bytebuf

// Take caps how many bytes may be consumed from an inner Buf. No bytes
// are copied; the adapter only clamps the inner cursor's view.
type Take struct {
	inner Buf
	limit int
}

// NewTake wraps b, allowing at most limit bytes to be read through the
// adapter. A negative limit is treated as zero.
func NewTake(b Buf, limit int) *Take {
	if limit < 0 {
		limit = 0
	}
	return &Take{inner: b, limit: limit}
}

// Remaining returns the lesser of the cap and the inner cursor's
// remaining bytes.
func (t *Take) Remaining() int {
	if r := t.inner.Remaining(); r < t.limit {
		return r
	}
	return t.limit
}

// Chunk returns the inner chunk clamped to the cap.
func (t *Take) Chunk() []byte {
	c := t.inner.Chunk()
	if len(c) > t.limit {
		c = c[:t.limit]
	}
	return c
}

// Advance consumes n bytes from the inner cursor and decrements the cap.
// Panics if n exceeds Remaining.
func (t *Take) Advance(n int) {
	if n < 0 || n > t.Remaining() {
		panicAdvance(n, t.Remaining())
	}
	t.inner.Advance(n)
	t.limit -= n
}

// Limit returns the number of bytes still permitted through the adapter.
func (t *Take) Limit() int {
	return t.limit
}

// SetLimit resets the cap. The inner cursor's position is unaffected.
func (t *Take) SetLimit(n int) {
	if n < 0 {
		n = 0
	}
	t.limit = n
}

// Inner returns the wrapped cursor.
func (t *Take) Inner() Buf {
	return t.inner
}
