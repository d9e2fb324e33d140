//go:build (darwin || linux || windows) && (amd64 || arm64)

package selftest

import "github.com/tinyrange/ffclosure"

func init() {
	register("C", runConvention[ffclosure.C])
	register("system", runConvention[ffclosure.System])
}
