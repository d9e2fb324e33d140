//go:build linux && (amd64 || arm64)

package dl

import (
	"errors"
	"runtime"
	"slices"
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/tinyrange/ffclosure"
)

func openLibc(t *testing.T) *Library {
	t.Helper()
	for _, name := range []string{"libc.so.6", "libc.so"} {
		if lib, err := Open(name); err == nil {
			t.Cleanup(func() { lib.Close() })
			return lib
		}
	}
	t.Skip("libc not available")
	return nil
}

// TestQsortRoundTrip hands a captured comparator to qsort_r, which takes the
// comparator's user data as its own trailing argument, so qsort_r itself can be
// adopted with that user data as its context.
func TestQsortRoundTrip(t *testing.T) {
	libc := openLibc(t)

	qsortR, err := libc.Lookup("qsort_r")
	if err != nil {
		t.Skipf("qsort_r: %v", err)
	}

	calls := 0
	cmp := ffclosure.Capture2[ffclosure.C](ffclosure.Local(func(a, b uintptr) int32 {
		calls++
		x := *(*int64)(unsafe.Pointer(a))
		y := *(*int64)(unsafe.Pointer(b))
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}))
	defer cmp.Free()

	cmpCode, cmpCtx := cmp.ExternParts()
	sorter := ffclosure.Adopt4[ffclosure.C, ffclosure.Unsync, uintptr, uintptr, uintptr, uintptr, ffclosure.Void](qsortR, cmpCtx, ffclosure.Destructor{})
	defer sorter.Free()

	values := []int64{5, -2, 9, 0, 3, -7}
	var pinner runtime.Pinner
	pinner.Pin(&values[0])
	defer pinner.Unpin()

	sorter.Call(uintptr(unsafe.Pointer(&values[0])), uintptr(len(values)), 8, cmpCode.Addr())

	if !slices.IsSorted(values) {
		t.Fatalf("values not sorted: %v", values)
	}
	if calls == 0 {
		t.Fatal("comparator was never called")
	}
}

// TestForeignContextAndDestructor adopts a context allocated by malloc with
// free as its destructor.
func TestForeignContextAndDestructor(t *testing.T) {
	libc := openLibc(t)

	malloc, err := libc.Addr("malloc")
	if err != nil {
		t.Skipf("malloc: %v", err)
	}
	usable, err := libc.Lookup("malloc_usable_size")
	if err != nil {
		t.Skipf("malloc_usable_size: %v", err)
	}
	free, err := libc.LookupDestructor("free")
	if err != nil {
		t.Fatalf("free: %v", err)
	}

	ptr, _, _ := purego.SyscallN(malloc, 64)
	if ptr == 0 {
		t.Fatal("malloc returned NULL")
	}

	size := ffclosure.Adopt0[ffclosure.C, ffclosure.Unsync, uintptr](usable, ffclosure.Context(ptr), free)
	if !size.HasDestructor() {
		t.Fatal("adopted closure lost its destructor")
	}
	if got := size.Call(); got < 64 {
		t.Fatalf("malloc_usable_size = %d, want >= 64", got)
	}
	size.Free()
	size.Free()
}

func TestOpenMissingLibrary(t *testing.T) {
	_, err := Open("/nonexistent/libffclosure-missing.so")
	if err == nil {
		t.Fatal("expected an error")
	}
	var dlErr *Error
	if !errors.As(err, &dlErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if dlErr.Op != "open" || dlErr.Path != "/nonexistent/libffclosure-missing.so" {
		t.Fatalf("unexpected error fields: %+v", dlErr)
	}
}

func TestLookupMissingSymbol(t *testing.T) {
	libc := openLibc(t)

	_, err := libc.Lookup("ffclosure_no_such_symbol")
	var dlErr *Error
	if !errors.As(err, &dlErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if dlErr.Op != "lookup" || dlErr.Symbol != "ffclosure_no_such_symbol" {
		t.Fatalf("unexpected error fields: %+v", dlErr)
	}
}
