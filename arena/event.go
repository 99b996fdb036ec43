package arena

// EventKind tags what an arena operation did.
type EventKind uint8

const (
	// EventAllocated reports a successful Malloc.
	EventAllocated EventKind = iota
	// EventReleased reports a Free, including no-op frees on a drained
	// arena.
	EventReleased
	// EventFailed reports a Malloc the arena could not satisfy.
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventAllocated:
		return "allocated"
	case EventReleased:
		return "released"
	case EventFailed:
		return "failed"
	}
	return "unknown"
}

// Event is a snapshot of arena state taken immediately after an operation.
// It is produced fresh per operation and not retained by the arena.
type Event struct {
	Kind        EventKind
	Outstanding int // allocations not yet freed
	BytesInUse  int // head offset after the operation
	HighWater   int // largest head ever reached
}

// OnLeak installs fn to run, synchronously and exactly once, when the
// arena is closed while allocations are still outstanding. The default
// does nothing: leaking at teardown is tolerated, not fatal. Installing
// nil restores the default.
func (a *Arena) OnLeak(fn func()) {
	a.onLeak = fn
}

// OnChange installs fn to run synchronously after every Malloc and Free,
// successful or not, with a snapshot of the post-operation state. The
// default is no handler; installing nil uninstalls.
func (a *Arena) OnChange(fn func(Event)) {
	a.onChange = fn
}

func (a *Arena) fire(kind EventKind) {
	if a.onChange == nil {
		return
	}
	a.onChange(Event{
		Kind:        kind,
		Outstanding: a.outstanding,
		BytesInUse:  a.head,
		HighWater:   a.highWater,
	})
}
