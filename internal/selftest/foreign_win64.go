//go:build windows && amd64

package selftest

import "github.com/tinyrange/ffclosure"

func init() {
	register("win64", runConvention[ffclosure.Win64])
}
