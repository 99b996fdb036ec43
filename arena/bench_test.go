package arena

import (
	"testing"

	"github.com/bytedance/gopkg/lang/dirtmake"
)

func BenchmarkMallocFree(b *testing.B) {
	a, err := NewWithBuffer(dirtmake.Bytes(1<<20, 1<<20), 8)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := a.Malloc(64)
		a.Free(p)
	}
}

func BenchmarkMallocBatch(b *testing.B) {
	const batch = 128
	a, err := NewWithBuffer(dirtmake.Bytes(batch*64, batch*64), 8)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < batch; j++ {
			a.Malloc(64)
		}
		for j := 0; j < batch; j++ {
			a.Free(nil)
		}
	}
}

func BenchmarkMallocWithChangeHandler(b *testing.B) {
	a, err := NewWithBuffer(dirtmake.Bytes(1<<20, 1<<20), 8)
	if err != nil {
		b.Fatal(err)
	}
	var last Event
	a.OnChange(func(e Event) { last = e })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := a.Malloc(64)
		a.Free(p)
	}
	_ = last
}

func BenchmarkLockedMallocFree(b *testing.B) {
	a, err := NewWithBuffer(dirtmake.Bytes(1<<20, 1<<20), 8)
	if err != nil {
		b.Fatal(err)
	}
	l := NewLocked(a)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			p := l.Malloc(64)
			l.Free(p)
		}
	})
}
