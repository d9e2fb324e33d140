package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckCompatible(t *testing.T) {
	tests := []struct {
		have, want string
		ok         bool
	}{
		{"v0.1.0", "v0.1.0", true},
		{"v0.2.3", "v0.2.0", true},
		{"v0.1.0", "v0.2.0", false},
		{"v1.0.0", "v0.9.0", false},
		{"v0.1.0", "not-a-version", false},
	}
	for _, tt := range tests {
		err := checkCompatible(tt.have, tt.want)
		if (err == nil) != tt.ok {
			t.Errorf("checkCompatible(%s, %s) = %v, want ok=%v", tt.have, tt.want, err, tt.ok)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ffclosure.yaml")
	data := "debug: true\nselftest:\n  conventions: [Go]\n  report: out.yaml\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug not loaded")
	}
	if len(cfg.Selftest.Conventions) != 1 || cfg.Selftest.Conventions[0] != "Go" {
		t.Errorf("conventions = %v", cfg.Selftest.Conventions)
	}
	if cfg.Selftest.Iterations != 100 {
		t.Errorf("iterations default = %d, want 100", cfg.Selftest.Iterations)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	if _, err := loadConfig(missing, false); err != nil {
		t.Fatalf("implicit missing config should not fail: %v", err)
	}
	if _, err := loadConfig(missing, true); err == nil {
		t.Fatal("explicit missing config should fail")
	}
}
