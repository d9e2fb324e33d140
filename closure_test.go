package ffclosure

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCaptureSquare(t *testing.T) {
	sq := Capture1[Go](Local(func(x uint32) uint32 { return x * x }))
	defer sq.Free()

	if got := sq.Call(3); got != 9 {
		t.Fatalf("Call(3) = %d, want 9", got)
	}
	if !sq.HasDestructor() {
		t.Fatal("captured closure should own a destructor")
	}
	if sq.Context() == Null {
		t.Fatal("captured closure should have a context")
	}
}

func TestAdoptSquare(t *testing.T) {
	square := Trampoline1(func(x uintptr, _ Context) uintptr { return x * x })

	sq := Adopt1[Go, Unsync, uint32, uint32](square.Code(), Null, Destructor{})
	defer sq.Free()

	if got := sq.Call(3); got != 9 {
		t.Fatalf("Call(3) = %d, want 9", got)
	}
	if sq.HasDestructor() {
		t.Fatal("adopted closure without destructor reports one")
	}
}

func TestExportSymmetry(t *testing.T) {
	add := Capture2[Go](Sendable(func(a, b int32) int32 { return a - b }))
	defer add.Free()

	code, ctx := add.ExternParts()
	if code != add.Code() || ctx != add.Context() {
		t.Fatal("ExternParts disagrees with Code/Context")
	}

	direct := int32(Invoke2[Go](code, uintptr(7), uintptr(10), ctx))
	if via := add.Call(7, 10); direct != via || via != -3 {
		t.Fatalf("direct=%d call=%d, want -3", direct, via)
	}
}

func TestCounterSingleDestroy(t *testing.T) {
	counter := 0
	drops := 0

	inc := Capture0[Go](Local(func() Void {
		counter++
		return 0
	}).OnDrop(func() { drops++ }))

	for i := 0; i < 10; i++ {
		inc.Call()
	}
	if counter != 10 {
		t.Fatalf("counter = %d, want 10", counter)
	}

	inc.Free()
	inc.Free()
	if drops != 1 {
		t.Fatalf("drop hook ran %d times, want 1", drops)
	}
	if inc.HasDestructor() {
		t.Fatal("destructor should be cleared after Free")
	}
}

func TestCaptureFreesBox(t *testing.T) {
	before := boxes.Len()
	c := Capture1[Go](Local(func(x int) int { return x }))
	if boxes.Len() != before+1 {
		t.Fatalf("expected one new box, have %d -> %d", before, boxes.Len())
	}
	c.Free()
	if boxes.Len() != before {
		t.Fatalf("box leaked: %d live, want %d", boxes.Len(), before)
	}
}

func TestAdoptedDestructorRunsOnce(t *testing.T) {
	calls := map[Context]int{}
	dtor := NewDestructor[Go](func(ctx Context) { calls[ctx]++ })

	identity := Trampoline1(func(x uintptr, _ Context) uintptr { return x })
	c := Adopt1[Go, Unsync, int32, int32](identity.Code(), Context(0xC0FFEE), dtor)

	if got := c.Call(-5); got != -5 {
		t.Fatalf("Call(-5) = %d", got)
	}
	c.Free()
	c.Free()
	if calls[Context(0xC0FFEE)] != 1 {
		t.Fatalf("destructor ran %d times, want 1", calls[Context(0xC0FFEE)])
	}
}

func TestNoDestructorNoTeardown(t *testing.T) {
	inner := Capture1[Go](Local(func(x uint8) uint8 { return x + 1 }))
	defer inner.Free()

	code, ctx := inner.ExternParts()
	borrowed := Adopt1[Go, Unsync, uint8, uint8](code, ctx, Destructor{})
	borrowed.Free()

	// The box is still owned by inner.
	if got := inner.Call(1); got != 2 {
		t.Fatalf("inner.Call(1) = %d after borrowed.Free", got)
	}
	if lookup(ctx) == nil {
		t.Fatal("borrowed Free released the box")
	}
}

func TestDetachTransfersOwnership(t *testing.T) {
	drops := 0
	c := Capture1[Go](Local(func(x uint16) uint16 { return x << 1 }).OnDrop(func() { drops++ }))

	code, ctx, dtor := c.Detach()
	if c.HasDestructor() {
		t.Fatal("closure still owns a destructor after Detach")
	}
	c.Free()
	if drops != 0 {
		t.Fatal("Free after Detach destroyed the box")
	}

	if got := uint16(Invoke1[Go](code, 21, ctx)); got != 42 {
		t.Fatalf("detached invoke = %d, want 42", got)
	}

	Destroy[Go](dtor, ctx)
	if drops != 1 {
		t.Fatalf("drop hook ran %d times, want 1", drops)
	}
}

func TestArgumentOrder(t *testing.T) {
	c := Capture4[Go](Local(func(a int8, b uint16, c int32, d uint32) int32 {
		return int32(a)*1000 + int32(b)*100 + c*10 + int32(d)
	}))
	defer c.Free()

	if got := c.Call(-1, 2, 3, 4); got != -1000+200+30+4 {
		t.Fatalf("Call = %d", got)
	}
}

func TestMaxArity(t *testing.T) {
	weigh := func(args ...uint8) uint32 {
		var v uint32
		for _, a := range args {
			v = v*31 + uint32(a)
		}
		return v
	}
	c := Capture14[Go](Local(func(a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13 uint8) uint32 {
		return weigh(a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13)
	}))
	defer c.Free()

	want := weigh(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14)
	if got := c.Call(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14); got != want {
		t.Fatalf("Call = %#x, want %#x", got, want)
	}
}

func TestSignature(t *testing.T) {
	c := Capture2[Go](Concurrent(func(a uint32, b int8) Void { return 0 }))
	defer c.Free()

	sig := c.Signature()
	if got, want := sig.String(), "Go fn(uint32, int8, ctx) [send+sync]"; got != want {
		t.Fatalf("Signature() = %q, want %q", got, want)
	}

	sq := Capture1[Go](Local(func(x uint32) uint32 { return x }))
	defer sq.Free()
	if got, want := sq.Signature().String(), "Go fn(uint32, ctx) uint32"; got != want {
		t.Fatalf("Signature() = %q, want %q", got, want)
	}
}

func TestCapabilityWeakening(t *testing.T) {
	f := Concurrent(func(x int) int { return -x })

	send := Capture1[Go](SendOnly(f))
	defer send.Free()
	sync := Capture1[Go](SyncOnly(f))
	defer sync.Free()
	local := Capture1[Go](f.Local())
	defer local.Free()

	for _, got := range []int{send.Call(4), sync.Call(4), local.Call(4)} {
		if got != -4 {
			t.Fatalf("weakened closure returned %d", got)
		}
	}
	if got := send.Signature().Capability; got != "send" {
		t.Fatalf("SendOnly capability = %q", got)
	}
}

func TestUnreachableClosureIsReleased(t *testing.T) {
	dropped := make(chan struct{}, 1)
	func() {
		c := Capture0[Go](Local(func() Void { return 0 }).OnDrop(func() { dropped <- struct{}{} }))
		c.Call()
	}()

	deadline := time.After(5 * time.Second)
	for {
		runtime.GC()
		select {
		case <-dropped:
			return
		case <-deadline:
			t.Fatal("cleanup never released the unreachable closure")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestCallKeepsClosureAlive(t *testing.T) {
	for i := 0; i < 20; i++ {
		var dropped atomic.Bool
		early := false

		got := Capture1[Go](Local(func(x uint32) uint32 {
			for j := 0; j < 5; j++ {
				runtime.GC()
				time.Sleep(time.Millisecond)
			}
			early = dropped.Load()
			return x * x
		}).OnDrop(func() { dropped.Store(true) })).Call(3)

		if got != 9 {
			t.Fatalf("Call(3) = %d, want 9", got)
		}
		if early {
			t.Fatalf("iteration %d: captured state destroyed while its call was running", i)
		}
	}
}

func TestConcurrentCalls(t *testing.T) {
	const (
		workers = 8
		calls   = 500
	)
	var total atomic.Int64
	add := Capture1[Go](Concurrent(func(x int32) int32 {
		total.Add(int64(x))
		return x + 1
	}))
	defer add.Free()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < calls; i++ {
				if got := add.Call(2); got != 3 {
					t.Errorf("Call(2) = %d, want 3", got)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got, want := total.Load(), int64(2*workers*calls); got != want {
		t.Fatalf("total = %d, want %d", got, want)
	}
}

func TestConventionsIncludeGo(t *testing.T) {
	for _, info := range Conventions() {
		if info.Name == "Go" && !info.Foreign {
			return
		}
	}
	t.Fatalf("Go convention missing from %v", Conventions())
}
