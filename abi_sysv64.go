//go:build (darwin || linux) && amd64

package ffclosure

const platformABI = "sysv64"

// SysV64 is the System V AMD64 convention, the C convention on this platform.
type SysV64 struct{ foreignABI }

func (SysV64) Name() string { return "sysv64" }

func init() {
	registerConvention(ConventionInfo{Name: "sysv64", ABI: platformABI, Foreign: true})
}
