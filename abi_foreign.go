//go:build (darwin || linux || windows) && (amd64 || arm64)

package ffclosure

import (
	"sync"

	"github.com/ebitengine/purego"
)

// C is the platform's C calling convention.
type C struct{ foreignABI }

func (C) Name() string { return "C" }

// System is the platform's system calling convention. On every platform Go
// targets through purego it is the C convention.
type System struct{ foreignABI }

func (System) Name() string { return "system" }

func init() {
	registerConvention(ConventionInfo{Name: "C", ABI: platformABI, Foreign: true})
	registerConvention(ConventionInfo{Name: "system", ABI: platformABI, Foreign: true})
}

// foreignABI reaches foreign code through purego. Every convention built on
// it shares the same callbacks since they are the same ABI on this platform.
type foreignABI struct{}

// Slots 0..MaxArity hold the trampolines, the last one the box destructor.
const destructorSlot = MaxArity + 1

var foreignCallbacks [destructorSlot + 1]struct {
	once sync.Once
	code Code
}

// foreignCallback returns the C function pointer for fn, creating it on first
// use. purego callbacks are never released, so each slot is filled once.
func foreignCallback(slot int, fn any) Code {
	cb := &foreignCallbacks[slot]
	cb.once.Do(func() {
		cb.code = ForeignCode(purego.NewCallback(fn))
	})
	return cb.code
}

func destroyBoxTrampoline(ctx Context) uintptr {
	destroyBox(ctx)
	return 0
}

func (foreignABI) boxDestructor() Destructor {
	return Destructor{code: foreignCallback(destructorSlot, destroyBoxTrampoline)}
}

func (foreignABI) newDestructor(fn DestructorFunc) Destructor {
	return ForeignDestructor(purego.NewCallback(func(ctx Context) uintptr {
		fn(ctx)
		return 0
	}))
}

func (foreignABI) destroy(d Destructor, ctx Context) {
	purego.SyscallN(d.code.Addr(), uintptr(ctx))
}
