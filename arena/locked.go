package arena

import "sync"

// Locked wraps an Arena with a mutex. The core arena deliberately carries
// no synchronization; Locked is the external layer to reach for when one
// arena must be shared between goroutines. Handlers installed on the
// underlying arena run with the lock held.
type Locked struct {
	mu sync.Mutex
	a  *Arena
}

// NewLocked wraps a. The caller must stop using a directly.
func NewLocked(a *Arena) *Locked {
	return &Locked{a: a}
}

// Malloc allocates under the lock. See Arena.Malloc.
func (l *Locked) Malloc(size int) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Malloc(size)
}

// Free releases under the lock. See Arena.Free.
func (l *Locked) Free(p []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Free(p)
}

// Reset force-reclaims the slab under the lock. See Arena.Reset.
func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Reset()
}

// Close tears down the underlying arena. See Arena.Close.
func (l *Locked) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Close()
}

// Outstanding returns the number of allocations not yet freed.
func (l *Locked) Outstanding() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Outstanding()
}

// HighWaterMark returns the largest number of bytes ever in use at once.
func (l *Locked) HighWaterMark() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.HighWaterMark()
}

// BytesInUse returns the bytes currently consumed from the slab.
func (l *Locked) BytesInUse() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.BytesInUse()
}

// Available returns the bytes left in the slab.
func (l *Locked) Available() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Available()
}

// Capacity returns the slab size in bytes.
func (l *Locked) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Capacity()
}

// Handle returns a type-erased reference that allocates through the lock.
func (l *Locked) Handle() Handle {
	return Handle{a: l}
}
