//go:build !(darwin || linux)

package main

import "runtime"

func platformDescription() string {
	return runtime.GOOS + " " + runtime.GOARCH
}
