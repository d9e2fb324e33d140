package ffclosure_test

import (
	"fmt"

	"github.com/tinyrange/ffclosure"
)

func ExampleCapture1() {
	square := ffclosure.Capture1[ffclosure.Go](ffclosure.Local(func(x uint32) uint32 { return x * x }))
	defer square.Free()

	fmt.Println(square.Call(3))
	// Output: 9
}

func ExampleAdopt1() {
	// A library function that only knows the callback idiom: a function
	// pointer and the user data to pass back to it.
	someLibFn := func(code ffclosure.Code, userData ffclosure.Context) {
		cb := ffclosure.Adopt1[ffclosure.Go, ffclosure.Unsync, int8, ffclosure.Void](code, userData, ffclosure.Destructor{})
		for i := int8(0); i < 3; i++ {
			cb.Call(i)
		}
	}

	var seen []int8
	collect := ffclosure.Capture1[ffclosure.Go](ffclosure.Local(func(i int8) ffclosure.Void {
		seen = append(seen, i)
		return 0
	}))
	defer collect.Free()

	someLibFn(collect.ExternParts())
	fmt.Println(seen)
	// Output: [0 1 2]
}

func ExampleClosure2_Signature() {
	sub := ffclosure.Capture2[ffclosure.Go](ffclosure.Sendable(func(a, b int32) int32 { return a - b }))
	defer sub.Free()

	fmt.Println(sub.Signature())
	// Output: Go fn(int32, int32, ctx) int32 [send]
}
