package bytebuf

// Chain presents two read cursors as one logical sequence: reads drain
// the first fully before touching the second. No bytes are copied.
type Chain struct {
	first, second Buf
}

// NewChain chains a before b.
func NewChain(a, b Buf) *Chain {
	return &Chain{first: a, second: b}
}

// Remaining returns the sum of both cursors' remaining bytes.
func (c *Chain) Remaining() int {
	return c.first.Remaining() + c.second.Remaining()
}

// Chunk returns the first cursor's chunk until it is drained, then the
// second's.
func (c *Chain) Chunk() []byte {
	if c.first.Remaining() > 0 {
		return c.first.Chunk()
	}
	return c.second.Chunk()
}

// Advance consumes n bytes, draining the first cursor before the second.
// Panics if n exceeds Remaining.
func (c *Chain) Advance(n int) {
	if n < 0 || n > c.Remaining() {
		panicAdvance(n, c.Remaining())
	}
	if r := c.first.Remaining(); r > 0 {
		if n <= r {
			c.first.Advance(n)
			return
		}
		c.first.Advance(r)
		n -= r
	}
	c.second.Advance(n)
}

// First returns the leading cursor.
func (c *Chain) First() Buf {
	return c.first
}

// Second returns the trailing cursor.
func (c *Chain) Second() Buf {
	return c.second
}

// ChainMut presents two write cursors as one logical region: writes fill
// the first fully before spilling into the second.
type ChainMut struct {
	first, second BufMut
}

// NewChainMut chains a before b for writing.
func NewChainMut(a, b BufMut) *ChainMut {
	return &ChainMut{first: a, second: b}
}

// RemainingMut returns the sum of both cursors' writable capacity.
func (c *ChainMut) RemainingMut() int {
	return c.first.RemainingMut() + c.second.RemainingMut()
}

// ChunkMut returns the first cursor's writable region until it is full,
// then the second's.
func (c *ChainMut) ChunkMut() []byte {
	if c.first.RemainingMut() > 0 {
		return c.first.ChunkMut()
	}
	return c.second.ChunkMut()
}

// AdvanceMut marks n bytes written, filling the first cursor before the
// second. Panics if n exceeds RemainingMut.
func (c *ChainMut) AdvanceMut(n int) {
	if n < 0 || n > c.RemainingMut() {
		panicPut(n, c.RemainingMut())
	}
	if r := c.first.RemainingMut(); r > 0 {
		if n <= r {
			c.first.AdvanceMut(n)
			return
		}
		c.first.AdvanceMut(r)
		n -= r
	}
	c.second.AdvanceMut(n)
}

// First returns the leading cursor.
func (c *ChainMut) First() BufMut {
	return c.first
}

// Second returns the trailing cursor.
func (c *ChainMut) Second() BufMut {
	return c.second
}
