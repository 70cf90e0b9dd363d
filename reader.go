package bytebuf

import "io"

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.Writer     = (*Writer)(nil)
	_ io.ByteWriter = (*Writer)(nil)
	_ io.Writer     = (*BytesMut)(nil)
)

// Reader adapts a Buf to the stdlib io.Reader and io.ByteReader
// interfaces, consuming the underlying cursor as it reads.
type Reader struct {
	b Buf
}

// NewReader returns an io.Reader that drains b.
func NewReader(b Buf) *Reader {
	return &Reader{b: b}
}

// Read copies up to len(p) bytes out of the cursor. Returns io.EOF once
// the cursor is exhausted.
func (r *Reader) Read(p []byte) (int, error) {
	if r.b.Remaining() == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b.Chunk())
	r.b.Advance(n)
	return n, nil
}

// ReadByte consumes one byte. Returns io.EOF once the cursor is
// exhausted.
func (r *Reader) ReadByte() (byte, error) {
	if r.b.Remaining() == 0 {
		return 0, io.EOF
	}
	c := r.b.Chunk()[0]
	r.b.Advance(1)
	return c, nil
}

// Buf returns the wrapped cursor.
func (r *Reader) Buf() Buf {
	return r.b
}

// Writer adapts a BufMut to the stdlib io.Writer and io.ByteWriter
// interfaces. Writes stop at the cursor's writable capacity: a short
// write returns io.ErrShortWrite rather than growing anything.
type Writer struct {
	b BufMut
}

// NewWriter returns an io.Writer that fills b.
func NewWriter(b BufMut) *Writer {
	return &Writer{b: b}
}

// Write copies p into the cursor. When the cursor cannot hold all of p
// the prefix that fits is written and io.ErrShortWrite is returned.
func (w *Writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 && w.b.RemainingMut() > 0 {
		n := copy(w.b.ChunkMut(), p)
		w.b.AdvanceMut(n)
		p = p[n:]
		written += n
	}
	if len(p) > 0 {
		return written, io.ErrShortWrite
	}
	return written, nil
}

// WriteByte writes one byte, or returns io.ErrShortWrite when no
// capacity remains.
func (w *Writer) WriteByte(c byte) error {
	if w.b.RemainingMut() == 0 {
		return io.ErrShortWrite
	}
	w.b.ChunkMut()[0] = c
	w.b.AdvanceMut(1)
	return nil
}

// BufMut returns the wrapped cursor.
func (w *Writer) BufMut() BufMut {
	return w.b
}
