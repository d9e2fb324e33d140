package selftest

import "github.com/tinyrange/ffclosure"

func init() {
	register("Go", runConvention[ffclosure.Go])
}
