package arena

import "github.com/bytedance/gopkg/lang/mcache"

// NewPooled creates an Arena whose slab is borrowed from mcache instead of
// allocated, for create-per-request arenas that come and go without GC
// churn. The slab is zeroed before use and returned to the pool by Close;
// neither the arena nor any memory it handed out may be used afterwards.
func NewPooled(capacity, alignment int) (*Arena, error) {
	if err := checkParams(capacity, alignment); err != nil {
		return nil, err
	}
	buf := mcache.Malloc(capacity)
	for i := range buf {
		buf[i] = 0
	}
	return &Arena{buf: buf, alignment: alignment, slabFree: mcache.Free}, nil
}
