//go:build (darwin || linux || windows) && (amd64 || arm64)

package ffclosure

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ebitengine/purego"
)

func TestForeignExportSquare(t *testing.T) {
	sq := Capture1[C](Sendable(func(x uint32) uint32 { return x * x }))
	defer sq.Free()

	code, ctx := sq.ExternParts()
	r1, _, _ := purego.SyscallN(code.Addr(), 3, uintptr(ctx))
	if uint32(r1) != 9 {
		t.Fatalf("foreign call returned %d, want 9", r1)
	}
	if got := sq.Call(3); got != 9 {
		t.Fatalf("Call(3) = %d, want 9", got)
	}
}

func TestForeignImportSquare(t *testing.T) {
	square := purego.NewCallback(func(x uintptr, _ Context) uintptr { return x * x })

	sq := Adopt1[C, Unsync, uint32, uint32](ForeignCode(square), Null, Destructor{})
	defer sq.Free()

	if got := sq.Call(3); got != 9 {
		t.Fatalf("Call(3) = %d, want 9", got)
	}
}

func TestForeignCounter(t *testing.T) {
	var counter atomic.Int32
	drops := 0

	inc := Capture0[C](Local(func() Void {
		counter.Add(1)
		return 0
	}).OnDrop(func() { drops++ }))

	for i := 0; i < 10; i++ {
		inc.Call()
	}
	if counter.Load() != 10 {
		t.Fatalf("counter = %d, want 10", counter.Load())
	}

	inc.Free()
	inc.Free()
	if drops != 1 {
		t.Fatalf("drop hook ran %d times, want 1", drops)
	}
}

func TestForeignDestructor(t *testing.T) {
	calls := map[Context]int{}
	dtor := NewDestructor[C](func(ctx Context) { calls[ctx]++ })

	noop := purego.NewCallback(func(_ Context) uintptr { return 0 })
	c := Adopt0[C, Unsync, Void](ForeignCode(noop), Context(0xBEEF), dtor)
	c.Call()
	c.Free()
	c.Free()

	if calls[Context(0xBEEF)] != 1 {
		t.Fatalf("destructor ran %d times, want 1", calls[Context(0xBEEF)])
	}
}

func TestForeignTrampolinesAreShared(t *testing.T) {
	a := Capture1[C](Local(func(x int) int { return x + 1 }))
	defer a.Free()
	b := Capture1[C](Local(func(x int) int { return x + 2 }))
	defer b.Free()

	if a.Code() != b.Code() {
		t.Fatal("closures of one arity should share a trampoline")
	}
	if a.Context() == b.Context() {
		t.Fatal("closures must not share a context")
	}
	if a.Call(1) != 2 || b.Call(1) != 3 {
		t.Fatal("shared trampoline dispatched to the wrong closure")
	}
}

func TestForeignNegativeArguments(t *testing.T) {
	c := Capture3[System](Local(func(a int8, b int16, c int32) int64 {
		return int64(a) + int64(b) + int64(c)
	}))
	defer c.Free()

	if got := c.Call(-1, -300, -70000); got != -70301 {
		t.Fatalf("Call = %d, want -70301", got)
	}
}

func TestForeignConventionsListed(t *testing.T) {
	var foreign int
	for _, info := range Conventions() {
		if info.Foreign {
			foreign++
			if info.ABI != platformABI {
				t.Errorf("%s reports ABI %q, want %q", info.Name, info.ABI, platformABI)
			}
		}
	}
	// C, system and the platform's named convention.
	if foreign != 3 {
		t.Fatalf("expected 3 foreign conventions, got %d", foreign)
	}
}

func TestForeignConcurrentCalls(t *testing.T) {
	const workers = 8
	var total atomic.Int64
	twice := Capture1[C](Concurrent(func(x int32) int32 {
		total.Add(int64(x))
		return 2 * x
	}))
	defer twice.Free()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if got := twice.Call(-3); got != -6 {
					t.Errorf("Call(-3) = %d, want -6", got)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := total.Load(); got != -3*workers*200 {
		t.Fatalf("total = %d, want %d", got, -3*workers*200)
	}
}

func TestForeignCallKeepsClosureAlive(t *testing.T) {
	var dropped atomic.Bool
	early := false

	got := Capture1[C](Local(func(x uint32) uint32 {
		for j := 0; j < 5; j++ {
			runtime.GC()
		}
		early = dropped.Load()
		return x + 1
	}).OnDrop(func() { dropped.Store(true) })).Call(41)

	if got != 42 {
		t.Fatalf("Call(41) = %d, want 42", got)
	}
	if early {
		t.Fatal("captured state destroyed while its call was running")
	}
}
