package ffclosure

import (
	"slices"
	"unsafe"

	"github.com/tinyrange/ffclosure/internal/handle"
)

// Convention selects a calling convention at compile time. The set is closed:
// only the types in this package implement it, and which of them exist
// depends on the target platform.
type Convention interface {
	// Name is the convention's name as it appears in signatures.
	Name() string

	dispatcher
	boxDestructor() Destructor
	newDestructor(fn DestructorFunc) Destructor
	destroy(d Destructor, ctx Context)
}

// ConventionInfo describes a convention compiled into this binary.
type ConventionInfo struct {
	Name    string `yaml:"name"`
	ABI     string `yaml:"abi"`
	Foreign bool   `yaml:"foreign"`
}

var conventions []ConventionInfo

func registerConvention(info ConventionInfo) {
	conventions = append(conventions, info)
}

// Conventions returns the conventions available on this platform.
func Conventions() []ConventionInfo {
	return slices.Clone(conventions)
}

// Destroy runs d against ctx under convention Cc. A zero d does nothing.
func Destroy[Cc Convention](d Destructor, ctx Context) {
	if d.IsZero() {
		return
	}
	var cc Cc
	cc.destroy(d, ctx)
}

// NewDestructor makes fn callable as a destructor under convention Cc.
// Foreign conventions use up one callback slot per call for the life of the
// process, so destructors should be created once and reused.
func NewDestructor[Cc Convention](fn DestructorFunc) Destructor {
	var cc Cc
	return cc.newDestructor(fn)
}

// obfuscate reinterprets a func value as Code. F must be a func type.
func obfuscate[F any](fn F) Code {
	return Code{p: *(*unsafe.Pointer)(unsafe.Pointer(&fn))}
}

// deobfuscate is the inverse of obfuscate. F must be the type code was
// obfuscated from.
func deobfuscate[F any](code Code) F {
	return *(*F)(unsafe.Pointer(&code.p))
}

// boxes holds every captured closure, keyed by its context.
var boxes = handle.NewTable()

type box struct {
	// call is a func(a0, ..., aN-1 uintptr) uintptr for the box's arity.
	call any
	drop func()
}

func capture(call any, drop func()) Context {
	return Context(boxes.New(&box{call: call, drop: drop}))
}

func lookup(ctx Context) *box {
	b, _ := handle.GetTyped[*box](boxes, uint64(ctx))
	return b
}

// destroyBox is the destructor of every captured closure.
func destroyBox(ctx Context) {
	b, ok := handle.FreeTyped[*box](boxes, uint64(ctx))
	if !ok {
		return
	}
	if b.drop != nil {
		b.drop()
	}
}
