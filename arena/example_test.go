package arena

import "fmt"

func Example() {
	a, _ := New(1024, 8)
	defer a.Close()

	a.OnChange(func(e Event) {
		fmt.Printf("%s: outstanding=%d in_use=%d high_water=%d\n",
			e.Kind, e.Outstanding, e.BytesInUse, e.HighWater)
	})

	b1 := a.Malloc(20)
	b2 := a.Malloc(20)
	_ = a.Malloc(1024) // does not fit
	a.Free(b1)
	a.Free(b2)

	// Output:
	// allocated: outstanding=1 in_use=24 high_water=24
	// allocated: outstanding=2 in_use=48 high_water=48
	// failed: outstanding=2 in_use=48 high_water=48
	// released: outstanding=1 in_use=48 high_water=48
	// released: outstanding=0 in_use=0 high_water=48
}

func ExampleArena_Handle() {
	a, _ := New(512, 8)
	defer a.Close()

	// pass the handle to code that knows nothing about Arena
	h := a.Handle()
	buf := h.Malloc(100)
	fmt.Printf("len=%d cap=%d\n", len(buf), cap(buf))
	h.Free(buf)

	// Output:
	// len=100 cap=104
}
