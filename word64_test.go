//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm

package ffclosure

import (
	"math"
	"testing"
)

func TestWideScalarsRoundTrip(t *testing.T) {
	u := Capture1[Go](Local(func(x uint64) uint64 { return x }))
	defer u.Free()
	for _, v := range []uint64{0x100000002, math.MaxUint64} {
		if got := u.Call(v); got != v {
			t.Fatalf("Call(%#x) = %#x", v, got)
		}
	}

	s := Capture2[Go](Local(func(a, b int64) int64 { return a - b }))
	defer s.Free()
	if got := s.Call(math.MinInt64+1, 1); got != math.MinInt64 {
		t.Fatalf("Call = %d, want %d", got, int64(math.MinInt64))
	}

	code, ctx := u.ExternParts()
	if got := uint64(Invoke1[Go](code, uintptr(uint64(math.MaxUint64)), ctx)); got != math.MaxUint64 {
		t.Fatalf("Invoke1 = %#x", got)
	}
}
