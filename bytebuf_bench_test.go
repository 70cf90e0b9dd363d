package bytebuf

import (
	"bytes"
	"testing"
)

func BenchmarkCloneShared(b *testing.B) {
	h := CopyFromSlice(bytes.Repeat([]byte("x"), 4096))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := h.Clone()
		c.Release()
	}
}

func BenchmarkSliceShared(b *testing.B) {
	h := CopyFromSlice(bytes.Repeat([]byte("x"), 4096))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := h.Slice(128, 256)
		s.Release()
	}
}

func BenchmarkExtendFromSlice(b *testing.B) {
	chunk := bytes.Repeat([]byte("y"), 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var m BytesMut
		for j := 0; j < 16; j++ {
			m.ExtendFromSlice(chunk)
		}
	}
}

func BenchmarkPooledRoundTrip(b *testing.B) {
	payload := bytes.Repeat([]byte("z"), 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewPooled(4096)
		m.ExtendFromSlice(payload)
		f := m.Freeze()
		f.Release()
	}
}

func BenchmarkGetUint32BE(b *testing.B) {
	src := CopyFromSlice(bytes.Repeat([]byte{1, 2, 3, 4}, 256))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := src.Clone()
		for c.Remaining() >= 4 {
			if _, err := GetUint32BE(&c); err != nil {
				b.Fatal(err)
			}
		}
		c.Release()
	}
}
