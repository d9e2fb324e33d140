//go:build 386 || arm || mips || mipsle

package ffclosure

// Scalar is the set of argument and result types that travel in a single
// integer register. 64-bit integers need two registers on this platform and
// are not members.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uintptr
}
