package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigName = "ffclosure.yaml"

// Config is the optional configuration file.
type Config struct {
	Debug bool `yaml:"debug,omitempty"`

	Selftest SelftestConfig `yaml:"selftest"`
}

type SelftestConfig struct {
	Iterations  int      `yaml:"iterations,omitempty"`
	Conventions []string `yaml:"conventions,omitempty"`
	Report      string   `yaml:"report,omitempty"`
}

func (c *Config) normalize() {
	if c.Selftest.Iterations <= 0 {
		c.Selftest.Iterations = 100
	}
}

// loadConfig reads path. A missing file is only an error when the path was
// given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg.normalize()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func writeYAML(path string, v any) error {
	var out *os.File
	if path == "" || path == "-" {
		out = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
