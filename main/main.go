package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/bytebuf"
)

// Exercises the hot paths (pooled allocation, append, freeze, clone,
// zero-copy slice) in a loop with pprof exposed, for eyeballing
// allocation behavior under load.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	payload := make([]byte, 1024)
	for i := range payload {
		payload[i] = byte(i)
	}
	for i := 0; i < 10000; i++ {
		m := bytebuf.NewPooled(4096)
		m.ExtendFromSlice(payload)
		m.ExtendFromSlice(payload)
		b := m.Freeze()
		c := b.Clone()
		s := b.Slice(256, 1792)
		if s.Len() != 1536 {
			log.Fatal("unexpected slice length")
		}
		s.Release()
		c.Release()
		b.Release()
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
}
