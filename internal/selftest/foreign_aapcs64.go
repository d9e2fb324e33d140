//go:build (darwin || linux || windows) && arm64

package selftest

import "github.com/tinyrange/ffclosure"

func init() {
	register("aapcs64", runConvention[ffclosure.AAPCS64])
}
