package arena

// Allocator is the capability contract shared by every allocator in this
// package. Code written against Allocator works with any implementation
// without knowing its concrete type or construction parameters.
type Allocator interface {
	// Malloc returns size bytes, or nil when the request cannot be
	// satisfied.
	Malloc(size int) []byte

	// Free releases one allocation previously obtained from Malloc.
	Free(p []byte)

	// Handle returns a type-erased reference to this allocator.
	Handle() Handle
}

var (
	_ Allocator = (*Arena)(nil)
	_ Allocator = (*Locked)(nil)
)

// Handle is an opaque, fixed-size reference to some Allocator: one data
// word plus one dispatch-table word, suitable for passing across module
// boundaries where the concrete allocator type is unknown. It borrows the
// allocator and must not outlive it.
//
// Handles are obtained from an allocator's Handle method; the zero Handle
// references nothing and panics on use.
type Handle struct {
	a Allocator
}

// Malloc allocates through the referenced allocator.
func (h Handle) Malloc(size int) []byte {
	return h.a.Malloc(size)
}

// Free releases through the referenced allocator.
func (h Handle) Free(p []byte) {
	h.a.Free(p)
}
