//go:build windows && amd64

package ffclosure

const platformABI = "win64"

// Win64 is the Microsoft x64 convention, the C convention on this platform.
type Win64 struct{ foreignABI }

func (Win64) Name() string { return "win64" }

func init() {
	registerConvention(ConventionInfo{Name: "win64", ABI: platformABI, Foreign: true})
}
