package bytebuf

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPutRoundTrip(t *testing.T) {
	m := WithCapacity(64)
	PutUint8(&m, 0x01)
	PutUint16BE(&m, 0x0203)
	PutUint16LE(&m, 0x0203)
	PutUint24BE(&m, 0x040506)
	PutUint24LE(&m, 0x040506)
	PutUint32BE(&m, 0x0708090A)
	PutUint32LE(&m, 0x0708090A)
	PutUint64BE(&m, 0x0B0C0D0E0F101112)
	PutUint64LE(&m, 0x0B0C0D0E0F101112)

	b := m.Freeze()

	v8, err := GetUint8(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x01, v8)

	v16, err := GetUint16BE(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x0203, v16)
	v16, err = GetUint16LE(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x0203, v16)

	v24, err := GetUint24BE(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x040506, v24)
	v24, err = GetUint24LE(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x040506, v24)

	v32, err := GetUint32BE(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x0708090A, v32)
	v32, err = GetUint32LE(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x0708090A, v32)

	v64, err := GetUint64BE(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x0B0C0D0E0F101112, v64)
	v64, err = GetUint64LE(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x0B0C0D0E0F101112, v64)

	require.Zero(t, b.Remaining())
}

func TestGetUnderflow(t *testing.T) {
	b := CopyFromSlice([]byte{1, 2, 3})

	_, err := GetUint32BE(&b)
	require.ErrorIs(t, err, ErrUnderflow)
	require.Equal(t, 3, b.Remaining(), "a failed get must consume nothing")

	_, err = GetUint64LE(&b)
	require.ErrorIs(t, err, ErrUnderflow)

	v, err := GetUint24BE(&b)
	require.NoError(t, err)
	require.EqualValues(t, 0x010203, v)

	_, err = GetUint8(&b)
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestCopyToSlice(t *testing.T) {
	b := CopyFromSlice([]byte("abcdef"))
	dst := make([]byte, 4)
	require.NoError(t, CopyToSlice(&b, dst))
	require.Equal(t, "abcd", string(dst))

	err := CopyToSlice(&b, make([]byte, 3))
	require.ErrorIs(t, err, ErrUnderflow)
	require.Equal(t, 2, b.Remaining())
}

func TestPutPanicsWithoutCapacity(t *testing.T) {
	m := WithCapacity(2)
	assert.Panics(t, func() { PutUint32BE(&m, 1) })
	PutUint16BE(&m, 0xBEEF)
	assert.Panics(t, func() { PutUint8(&m, 1) })
}

func TestTakeCapsReads(t *testing.T) {
	b := CopyFromSlice([]byte("0123456789"))
	tk := NewTake(&b, 4)

	require.Equal(t, 4, tk.Remaining())
	require.Equal(t, "0123", string(tk.Chunk()))

	tk.Advance(2)
	require.Equal(t, 2, tk.Remaining())
	require.Equal(t, 2, tk.Limit())
	assert.Panics(t, func() { tk.Advance(3) })

	tk.Advance(2)
	require.Zero(t, tk.Remaining())
	require.Equal(t, 6, b.Remaining(), "inner cursor keeps the rest")

	tk.SetLimit(3)
	require.Equal(t, 3, tk.Remaining())
}

func TestLimitCapsWrites(t *testing.T) {
	m := WithCapacity(16)
	lm := NewLimit(&m, 5)

	require.Equal(t, 5, lm.RemainingMut())
	require.Len(t, lm.ChunkMut(), 5)

	PutSlice(lm, []byte("abc"))
	require.Equal(t, 2, lm.RemainingMut())
	require.Equal(t, 2, lm.Limit())
	assert.Panics(t, func() { PutSlice(lm, []byte("toolong")) })

	PutSlice(lm, []byte("de"))
	require.Zero(t, lm.RemainingMut())
	require.Equal(t, "abcde", m.String())
	require.Equal(t, 11, m.RemainingMut(), "inner cursor keeps its spare capacity")
}

func TestChainDrainsInOrder(t *testing.T) {
	a := CopyFromSlice([]byte("hello "))
	b := CopyFromSlice([]byte("world"))
	ch := NewChain(&a, &b)

	require.Equal(t, 11, ch.Remaining())
	out := make([]byte, 11)
	require.NoError(t, CopyToSlice(ch, out))
	require.Equal(t, "hello world", string(out))
	require.Zero(t, ch.Remaining())
}

func TestChainGetStraddlesBoundary(t *testing.T) {
	a := CopyFromSlice([]byte{0x12, 0x34})
	b := CopyFromSlice([]byte{0x56, 0x78})
	ch := NewChain(&a, &b)

	v, err := GetUint32BE(ch)
	require.NoError(t, err)
	require.EqualValues(t, 0x12345678, v, "fixed-width get must gather across chunks")
}

func TestChainAdvanceAcrossBoundary(t *testing.T) {
	a := CopyFromSlice([]byte("abc"))
	b := CopyFromSlice([]byte("defgh"))
	ch := NewChain(&a, &b)

	ch.Advance(5)
	require.Equal(t, "fgh", string(ch.Chunk()))
	assert.Panics(t, func() { ch.Advance(4) })
}

func TestChainMutFillsInOrder(t *testing.T) {
	a := WithCapacity(3)
	b := WithCapacity(8)
	ch := NewChainMut(&a, &b)

	require.Equal(t, 11, ch.RemainingMut())
	PutSlice(ch, []byte("hello wo"))

	require.Equal(t, "hel", a.String())
	require.Equal(t, "lo wo", b.String())
	require.Equal(t, 3, ch.RemainingMut())
}

func TestReaderDrainsBuf(t *testing.T) {
	b := CopyFromSlice(bytes.Repeat([]byte("data"), 100))
	r := NewReader(&b)

	var sink bytes.Buffer
	n, err := io.Copy(&sink, r)
	require.NoError(t, err)
	require.EqualValues(t, 400, n)
	require.Equal(t, bytes.Repeat([]byte("data"), 100), sink.Bytes())

	_, err = r.ReadByte()
	require.True(t, errors.Is(err, io.EOF))
}

func TestWriterFillsBufMut(t *testing.T) {
	m := WithCapacity(8)
	w := NewWriter(&m)

	n, err := w.Write([]byte("12345"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.NoError(t, w.WriteByte('6'))

	n, err = w.Write([]byte("789"))
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Equal(t, 2, n)
	require.Equal(t, "12345678", m.String())
	require.ErrorIs(t, w.WriteByte('9'), io.ErrShortWrite)
}

func TestWriteThenReadSameRegion(t *testing.T) {
	src := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}
	m := WithCapacity(len(src))
	PutSlice(&m, src)
	b := m.Freeze()

	got := make([]byte, len(src))
	require.NoError(t, CopyToSlice(&b, got))
	require.Equal(t, src, got)
}

func TestSeekBufThroughInterface(t *testing.T) {
	var sb SeekBuf
	b := CopyFromSlice([]byte("seekable content"))
	sb = &b

	c, ok := sb.ChunkFrom(9)
	require.True(t, ok)
	require.Equal(t, "content", string(c))

	sb.Advance(4)
	c, ok = sb.ChunkTo(4)
	require.True(t, ok)
	require.Equal(t, "able", string(c), "seek positions are relative to the unread view")
}

func TestBytesMutSeekBuf(t *testing.T) {
	m := FromSlice([]byte("0123456789"))
	c, ok := m.ChunkFrom(5)
	require.True(t, ok)
	require.Equal(t, "56789", string(c))

	_, ok = m.ChunkFrom(11)
	require.False(t, ok)

	c, ok = m.ChunkTo(0)
	require.True(t, ok)
	require.Empty(t, c)
}
