package handle

import (
	"sync"
	"testing"
)

// TestTableBasic tests basic handle operations.
func TestTableBasic(t *testing.T) {
	tab := NewTable()

	value := "test value"
	h := tab.New(value)
	if h == Invalid {
		t.Fatal("expected non-zero handle")
	}

	if got := tab.Get(h); got != value {
		t.Fatalf("expected %v, got %v", value, got)
	}

	typed, ok := GetTyped[string](tab, h)
	if !ok || typed != value {
		t.Fatalf("typed get: got (%v, %v)", typed, ok)
	}

	if tab.Len() != 1 {
		t.Fatalf("expected 1 live handle, got %d", tab.Len())
	}

	if freed := tab.Free(h); freed != value {
		t.Fatalf("expected freed value %v, got %v", value, freed)
	}

	if got := tab.Get(h); got != nil {
		t.Fatalf("expected nil after free, got %v", got)
	}
	if tab.Len() != 0 {
		t.Fatalf("expected 0 live handles, got %d", tab.Len())
	}
}

// TestTableInvalid tests behavior with invalid handles.
func TestTableInvalid(t *testing.T) {
	tab := NewTable()

	if got := tab.Get(Invalid); got != nil {
		t.Errorf("expected nil for handle 0, got %v", got)
	}
	if v, ok := GetTyped[string](tab, Invalid); ok || v != "" {
		t.Errorf("expected ('', false) for handle 0, got (%v, %v)", v, ok)
	}
	if freed := tab.Free(Invalid); freed != nil {
		t.Errorf("expected nil from Free(0), got %v", freed)
	}
	if got := tab.Get(999999); got != nil {
		t.Errorf("expected nil for non-existent handle, got %v", got)
	}
}

// TestTableDoubleFree checks that a second Free neither returns the value
// again nor disturbs the live count.
func TestTableDoubleFree(t *testing.T) {
	tab := NewTable()
	h := tab.New(42)

	if v := tab.Free(h); v != 42 {
		t.Fatalf("first free: got %v", v)
	}
	if v := tab.Free(h); v != nil {
		t.Fatalf("second free: got %v", v)
	}
	if tab.Len() != 0 {
		t.Fatalf("live count drifted to %d", tab.Len())
	}
}

// TestFreeTyped tests typed free operations.
func TestFreeTyped(t *testing.T) {
	tab := NewTable()
	h := tab.New("test")

	if v, ok := FreeTyped[int](tab, h); ok {
		t.Errorf("expected FreeTyped[int] to fail, got %v", v)
	}
	if tab.Get(h) == nil {
		t.Fatal("handle was incorrectly freed")
	}

	if v, ok := FreeTyped[string](tab, h); !ok || v != "test" {
		t.Errorf("expected (test, true), got (%v, %v)", v, ok)
	}
	if tab.Get(h) != nil {
		t.Error("handle should be freed")
	}
}

// TestTableConcurrency tests thread-safety of the handle table.
func TestTableConcurrency(t *testing.T) {
	const numGoroutines = 64
	const opsPerGoroutine = 500

	tab := NewTable()

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				value := id*opsPerGoroutine + j
				h := tab.New(value)

				got, ok := GetTyped[int](tab, h)
				if !ok || got != value {
					t.Errorf("goroutine %d: expected %v, got %v (ok=%v)", id, value, got, ok)
				}

				freed, ok := FreeTyped[int](tab, h)
				if !ok || freed != value {
					t.Errorf("goroutine %d: expected freed %v, got %v (ok=%v)", id, value, freed, ok)
				}
			}
		}(i)
	}
	wg.Wait()

	if tab.Len() != 0 {
		t.Fatalf("expected empty table, got %d live handles", tab.Len())
	}
}

// TestTableUniqueHandles verifies handles are unique.
func TestTableUniqueHandles(t *testing.T) {
	const numHandles = 1000
	tab := NewTable()
	seen := make(map[uint64]bool, numHandles)

	for i := 0; i < numHandles; i++ {
		h := tab.New(i)
		if seen[h] {
			t.Fatalf("duplicate handle: %d", h)
		}
		seen[h] = true
	}
	for h := range seen {
		tab.Free(h)
	}
}
