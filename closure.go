package ffclosure

import (
	"context"
	"log/slog"
	"runtime"
)

// noCopy lets go vet flag closure values copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// closure is the arity-independent part of every ClosureN.
type closure[Cc Convention, K Capability] struct {
	_       noCopy
	code    Code
	ctx     Context
	dtor    Destructor
	cleanup runtime.Cleanup
}

type parts struct {
	ctx  Context
	dtor Destructor
}

func release[Cc Convention](p parts) {
	slog.Debug("ffclosure: releasing unreachable closure", "context", p.ctx)
	Destroy[Cc](p.dtor, p.ctx)
}

// setup fills c and, when it owns a destructor, arranges for it to run if
// owner becomes unreachable before Free.
func setup[T any, Cc Convention, K Capability](owner *T, c *closure[Cc, K], code Code, ctx Context, dtor Destructor) {
	c.code = code
	c.ctx = ctx
	c.dtor = dtor
	if !dtor.IsZero() {
		c.cleanup = runtime.AddCleanup(owner, release[Cc], parts{ctx: ctx, dtor: dtor})
	}
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		var cc Cc
		slog.Debug("ffclosure: closure created",
			"convention", cc.Name(),
			"context", ctx,
			"owned", !dtor.IsZero(),
		)
	}
}

// Code returns the closure's function pointer.
func (c *closure[Cc, K]) Code() Code {
	return c.code
}

// Context returns the raw context pointer.
func (c *closure[Cc, K]) Context() Context {
	return c.ctx
}

// HasDestructor reports whether the closure still owns a destructor.
func (c *closure[Cc, K]) HasDestructor() bool {
	return !c.dtor.IsZero()
}

// ExternParts returns the pair a foreign caller needs: call code with the
// arguments followed by ctx. The closure keeps ownership; it must outlive
// every foreign use of the pair.
func (c *closure[Cc, K]) ExternParts() (Code, Context) {
	return c.code, c.ctx
}

// Detach gives up ownership and returns the full triple. The closure no
// longer destroys anything; whoever receives dtor must call it exactly once.
func (c *closure[Cc, K]) Detach() (Code, Context, Destructor) {
	dtor := c.dtor
	if !dtor.IsZero() {
		c.dtor = Destructor{}
		c.cleanup.Stop()
		slog.Debug("ffclosure: closure detached", "context", c.ctx)
	}
	return c.code, c.ctx, dtor
}

// Free runs the destructor, if any, against the context and clears it.
// Calling Free again is a no-op. The closure must not be called afterwards.
func (c *closure[Cc, K]) Free() {
	dtor := c.dtor
	if dtor.IsZero() {
		return
	}
	c.dtor = Destructor{}
	c.cleanup.Stop()
	slog.Debug("ffclosure: closure freed", "context", c.ctx)
	Destroy[Cc](dtor, c.ctx)
}
