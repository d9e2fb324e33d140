//go:build (darwin || linux || windows) && arm64

package ffclosure

const platformABI = "aapcs64"

// AAPCS64 is the Arm 64-bit procedure call standard, the C convention on this
// platform.
type AAPCS64 struct{ foreignABI }

func (AAPCS64) Name() string { return "aapcs64" }

func init() {
	registerConvention(ConventionInfo{Name: "aapcs64", ABI: platformABI, Foreign: true})
}
