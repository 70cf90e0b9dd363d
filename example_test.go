package bytebuf_test

import (
	"fmt"

	"github.com/rawbytedev/bytebuf"
)

// Slicing shares the backing allocation; no bytes are copied.
func ExampleBytes_Slice() {
	b := bytebuf.CopyFromSlice([]byte("hello world, zero copy"))
	hello := b.Slice(0, 5)
	world := b.Slice(6, 11)

	fmt.Println(hello.String())
	fmt.Println(world.String())
	// Output:
	// hello
	// world
}

// A producer fills a BytesMut and freezes it; consumers read the
// immutable result through the Buf cursor.
func ExampleBytesMut_Freeze() {
	m := bytebuf.WithCapacity(16)
	bytebuf.PutUint32BE(&m, 0xCAFEBABE)
	bytebuf.PutUint32BE(&m, 42)

	b := m.Freeze()
	magic, _ := bytebuf.GetUint32BE(&b)
	count, _ := bytebuf.GetUint32BE(&b)

	fmt.Printf("%#x %d\n", magic, count)
	// Output: 0xcafebabe 42
}

// Splitting partitions a buffer into halves that grow independently;
// Unsplit rejoins adjacent, unmodified halves without copying.
func ExampleBytesMut_SplitOff() {
	m := bytebuf.FromSlice([]byte("header|payload"))
	payload := m.SplitOff(7)

	fmt.Println(m.String())
	fmt.Println(payload.String())

	m.Unsplit(payload)
	fmt.Println(m.String())
	// Output:
	// header|
	// payload
	// header|payload
}

// Pooled buffers return their storage once the last handle releases it.
func ExampleNewPooled() {
	m := bytebuf.NewPooled(4096)
	m.ExtendFromSlice([]byte("recycled"))

	b := m.Freeze()
	defer b.Release()

	fmt.Println(b.String())
	// Output: recycled
}
