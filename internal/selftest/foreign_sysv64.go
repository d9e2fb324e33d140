//go:build (darwin || linux) && amd64

package selftest

import "github.com/tinyrange/ffclosure"

func init() {
	register("sysv64", runConvention[ffclosure.SysV64])
}
