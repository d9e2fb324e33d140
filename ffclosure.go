// Package ffclosure passes Go closures across a foreign-function boundary as
// a function pointer plus an opaque context, the usual C callback idiom, and
// wraps foreign (function pointer, context, destructor) triples back into
// callable values.
//
// A closure value couples three things:
//
//   - Code, a function pointer whose real signature is TrampolineN for the
//     value's arity: the arguments as machine words followed by the context.
//   - Context, passed to Code as its last argument on every call.
//   - Destructor, an optional function taking only the context. It is present
//     when the value owns whatever the context denotes.
//
// The calling convention, the capability set and the argument and result
// types are type parameters of ClosureN. Nothing about them is checked at
// run time.
//
// Capturing a Go closure (CaptureN) is safe: the closure is boxed under a
// fresh context, Code becomes the convention's shared trampoline for that
// arity and the destructor frees the box. Adopting a raw triple (AdoptN) is
// the unchecked direction; getting the signature or the context/destructor
// pairing wrong is undefined behaviour.
//
// A closure value is destroyed exactly once, by Free or, if it becomes
// unreachable first, by a runtime cleanup. Callers that hand the parts returned
// by ExternParts to foreign code must keep the value reachable until the
// foreign side is done with them, or Detach it.
package ffclosure

import "unsafe"

//go:generate go run ./internal/cmd/closuregen

// Version is the API version of this package.
const Version = "v0.1.0"

// MaxArity is the largest supported argument count. Larger shapes must be
// packed into an aggregate passed by pointer.
const MaxArity = 14

// Void is the result type of closures that return nothing. Its value is
// meaningless.
type Void uintptr

// Context is the opaque user-data pointer passed to Code as the last argument.
type Context uintptr

// Null is the context of a closure without captured state.
const Null Context = 0

// Code is an opaque function pointer. Its real signature is known only to the
// dispatch path that produced it or that it was adopted for.
type Code struct {
	p unsafe.Pointer
}

// ForeignCode wraps the address of a foreign function.
func ForeignCode(addr uintptr) Code {
	return Code{p: *(*unsafe.Pointer)(unsafe.Pointer(&addr))}
}

// Addr returns the raw address. For foreign conventions this is what a C
// caller receives.
func (c Code) Addr() uintptr {
	return uintptr(c.p)
}

// IsNil reports whether c is the zero Code.
func (c Code) IsNil() bool {
	return c.p == nil
}

// Destructor is a function pointer of shape (ctx) -> () for some convention.
// The zero value means "no destructor".
type Destructor struct {
	code Code
}

// DestructorFunc is the Go form of a destructor.
type DestructorFunc func(ctx Context)

// ForeignDestructor wraps the address of a foreign destructor.
func ForeignDestructor(addr uintptr) Destructor {
	return Destructor{code: ForeignCode(addr)}
}

// Code returns the destructor's function pointer.
func (d Destructor) Code() Code {
	return d.code
}

// IsZero reports whether d is absent.
func (d Destructor) IsZero() bool {
	return d.code.IsNil()
}
