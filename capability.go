package ffclosure

import "strings"

type caps uint8

const (
	capSend caps = 1 << iota
	capSync
)

func (k caps) String() string {
	var names []string
	if k&capSend != 0 {
		names = append(names, "send")
	}
	if k&capSync != 0 {
		names = append(names, "sync")
	}
	if len(names) == 0 {
		return "unsync"
	}
	return strings.Join(names, "+")
}

// Capability is a thread-safety capability set. It only exists at the type
// level; closure values perform no synchronization of their own.
type Capability interface {
	capabilities() caps
}

// Unsync closures stay on the goroutine that created them.
type Unsync struct{}

// Send closures may be handed to another goroutine or foreign thread.
type Send struct{}

// Sync closures may be called from several threads at once.
type Sync struct{}

// SendSync closures are both Send and Sync.
type SendSync struct{}

func (Unsync) capabilities() caps { return 0 }
func (Send) capabilities() caps { return capSend }
func (Sync) capabilities() caps { return capSync }
func (SendSync) capabilities() caps { return capSend | capSync }

// Func is a native closure labelled with the capability set it satisfies.
// A shape declaring capability K only captures a Func[K, F], so a closure
// labelled with fewer capabilities is rejected by the compiler.
type Func[K Capability, F any] struct {
	fn   F
	drop func()
}

// Local labels fn as usable from a single thread only.
func Local[F any](fn F) Func[Unsync, F] {
	return Func[Unsync, F]{fn: fn}
}

// Sendable labels fn as safe to call from a thread other than the one that
// created it, one thread at a time.
func Sendable[F any](fn F) Func[Send, F] {
	return Func[Send, F]{fn: fn}
}

// Shareable labels fn as safe to call concurrently from threads that share it.
func Shareable[F any](fn F) Func[Sync, F] {
	return Func[Sync, F]{fn: fn}
}

// Concurrent labels fn as both Sendable and Shareable. Everything fn captures
// must tolerate concurrent use; invocation takes no lock.
func Concurrent[F any](fn F) Func[SendSync, F] {
	return Func[SendSync, F]{fn: fn}
}

// OnDrop registers a hook that runs once when the captured closure is
// destroyed.
func (f Func[K, F]) OnDrop(fn func()) Func[K, F] {
	f.drop = fn
	return f
}

// Local drops every capability from f.
func (f Func[K, F]) Local() Func[Unsync, F] {
	return Func[Unsync, F]{fn: f.fn, drop: f.drop}
}

// SendOnly drops the Sync capability.
func SendOnly[F any](f Func[SendSync, F]) Func[Send, F] {
	return Func[Send, F]{fn: f.fn, drop: f.drop}
}

// SyncOnly drops the Send capability.
func SyncOnly[F any](f Func[SendSync, F]) Func[Sync, F] {
	return Func[Sync, F]{fn: f.fn, drop: f.drop}
}
