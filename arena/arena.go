// Package arena implements a fixed-capacity bump allocator over a single
// byte slab, for code that must not touch the general-purpose heap at
// runtime. Allocation advances a head offset in O(1); space is reclaimed
// only in bulk, once every outstanding allocation has been freed.
package arena

import "fmt"

// Arena is a fixed-capacity bump allocator. It owns its slab exclusively:
// nothing else may read or write the backing memory except through the
// slices Malloc hands out.
//
// Arena is not goroutine-safe. Wrap it in a Locked for concurrent use.
type Arena struct {
	buf       []byte
	alignment int

	head        int // offset of the next free byte, 0 <= head <= len(buf)
	outstanding int // allocations not yet matched by a Free
	highWater   int // largest head ever reached

	onLeak   func()
	onChange func(Event)

	slabFree func([]byte) // set when the slab is borrowed from a pool
	closed   bool
}

// New creates an Arena backed by a freshly allocated, zeroed slab of
// capacity bytes. Every allocation size is rounded up to a multiple of
// alignment. Both values are fixed for the arena's lifetime.
func New(capacity, alignment int) (*Arena, error) {
	if err := checkParams(capacity, alignment); err != nil {
		return nil, err
	}
	return &Arena{buf: make([]byte, capacity), alignment: alignment}, nil
}

// NewWithBuffer creates an Arena over a caller-provided slab, so that no
// allocation happens at all. The arena takes exclusive ownership of buf for
// its lifetime and zeroes it before use; the capacity is len(buf).
func NewWithBuffer(buf []byte, alignment int) (*Arena, error) {
	if err := checkParams(len(buf), alignment); err != nil {
		return nil, err
	}
	for i := range buf {
		buf[i] = 0
	}
	return &Arena{buf: buf, alignment: alignment}, nil
}

func checkParams(capacity, alignment int) error {
	if alignment <= 0 {
		return fmt.Errorf("alignment must be positive, got %d", alignment)
	}
	if capacity < 0 {
		return fmt.Errorf("capacity must be non-negative, got %d", capacity)
	}
	return nil
}

// Malloc returns size bytes carved from the slab, or nil if the rounded
// request does not fit in the remaining capacity. The returned slice has
// len == size and cap equal to the rounded region; it stays valid until
// the arena drains (every allocation freed) or is closed.
//
// size 0 is legal: it returns a zero-length slice at the current head and
// still counts as one outstanding allocation.
func (a *Arena) Malloc(size int) []byte {
	a.panicIfClosed()
	if size < 0 {
		a.fire(EventFailed)
		return nil
	}
	rounded := (size + a.alignment - 1) / a.alignment * a.alignment
	next := a.head + rounded
	if next > len(a.buf) {
		a.fire(EventFailed)
		return nil
	}
	p := a.buf[a.head : a.head+size : next]
	a.head = next
	a.outstanding++
	if a.head > a.highWater {
		a.highWater = a.head
	}
	a.fire(EventAllocated)
	return p
}

// Free releases one outstanding allocation. The argument is deliberately
// ignored: the arena counts allocations instead of tracking them, so any
// Free decrements the shared count, and the whole slab becomes available
// again only when the count reaches zero. Space never comes back
// incrementally. Freeing when nothing is outstanding is a no-op.
func (a *Arena) Free(_ []byte) {
	a.panicIfClosed()
	if a.outstanding > 0 {
		a.outstanding--
		if a.outstanding == 0 {
			a.head = 0
		}
	}
	a.fire(EventReleased)
}

// Reset force-reclaims the whole slab, dropping the outstanding count.
// Unlike Free it does not wait for the arena to drain, and it fires no
// change event. Memory previously handed out must no longer be used.
func (a *Arena) Reset() {
	a.panicIfClosed()
	a.head = 0
	a.outstanding = 0
}

// Close tears the arena down. If allocations are still outstanding the
// leak handler installed with OnLeak runs exactly once; a pooled slab is
// returned to its pool. Close is idempotent. Any other use of the arena
// after Close panics.
func (a *Arena) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.outstanding > 0 && a.onLeak != nil {
		a.onLeak()
	}
	if a.slabFree != nil {
		a.slabFree(a.buf)
	}
	a.buf = nil
}

// Outstanding returns the number of allocations not yet freed.
func (a *Arena) Outstanding() int {
	return a.outstanding
}

// HighWaterMark returns the largest number of bytes the arena has ever had
// in use at once. It never decreases.
func (a *Arena) HighWaterMark() int {
	return a.highWater
}

// BytesInUse returns the current head offset, i.e. the bytes consumed from
// the slab including alignment padding.
func (a *Arena) BytesInUse() int {
	return a.head
}

// Capacity returns the slab size in bytes. It is 0 after Close.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Available returns the bytes left between the head and the end of the
// slab. A Malloc of up to Available bytes (after rounding) succeeds.
func (a *Arena) Available() int {
	return len(a.buf) - a.head
}

// Alignment returns the allocation granularity in bytes.
func (a *Arena) Alignment() int {
	return a.alignment
}

// Handle returns a type-erased, non-owning reference to this arena. It is
// valid only as long as the arena is.
func (a *Arena) Handle() Handle {
	return Handle{a: a}
}

func (a *Arena) panicIfClosed() {
	if a.closed {
		panic("arena: use after Close")
	}
}
