package ffclosure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// typeCheckWith type-checks this package with src added as an extra file and
// returns the type errors reported for that file. env is appended to the go
// command's environment.
func typeCheckWith(t *testing.T, src string, env ...string) []string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	probe := filepath.Join(dir, "zz_capability_probe.go")

	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:     dir,
		Overlay: map[string][]byte{probe: []byte(src)},
	}
	if len(env) > 0 {
		cfg.Env = append(os.Environ(), env...)
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var errs []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			if strings.Contains(e.Pos, "zz_capability_probe.go") {
				errs = append(errs, e.Msg)
			}
		}
	})
	return errs
}

func TestCapabilityGating(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks the package through the go command")
	}

	tests := []struct {
		name    string
		body    string
		env     []string
		wantErr bool
	}{
		{
			name: "matching capability",
			body: `var _ = Capture1[Go](Sendable(func(x int) int { return x }))
var _ *Closure1[Go, Send, int, int] = Capture1[Go](Sendable(func(x int) int { return x }))`,
		},
		{
			name:    "local closure into send shape",
			body:    `var _ *Closure1[Go, Send, int, int] = Capture1[Go, Send](Local(func(x int) int { return x }))`,
			wantErr: true,
		},
		{
			name:    "send closure into sync shape",
			body:    `var _ = Capture1[Go, SendSync](Sendable(func(x int) int { return x }))`,
			wantErr: true,
		},
		{
			name: "weakened capability",
			body: `var _ = Capture1[Go, Send](SendOnly(Concurrent(func(x int) int { return x })))`,
		},
		{
			name: "32-bit words on a 32-bit target",
			body: `var _ = Capture1[Go](Local(func(x uint32) uint32 { return x }))`,
			env:  []string{"GOARCH=386", "CGO_ENABLED=0"},
		},
		{
			name:    "64-bit argument on a 32-bit target",
			body:    `var _ = Capture1[Go](Local(func(x uint64) uint32 { return 0 }))`,
			env:     []string{"GOARCH=386", "CGO_ENABLED=0"},
			wantErr: true,
		},
		{
			name:    "64-bit result on a 32-bit target",
			body:    `var _ = Capture0[Go](Local(func() int64 { return 0 }))`,
			env:     []string{"GOARCH=386", "CGO_ENABLED=0"},
			wantErr: true,
		},
		{
			name:    "non scalar argument",
			body:    `var _ = Capture1[Go](Local(func(x string) int { return 0 }))`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := typeCheckWith(t, "package ffclosure\n\n"+tt.body+"\n", tt.env...)
			if tt.wantErr && len(errs) == 0 {
				t.Fatal("expected a type error, got none")
			}
			if !tt.wantErr && len(errs) != 0 {
				t.Fatalf("unexpected type errors: %v", errs)
			}
		})
	}
}
