package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planetgen.yaml")
	data := []byte("planet:\n  seed: 7\n  scale: 0.5\n  radius: 2.0\nexport:\n  size: 128\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Planet.Seed != 7 || cfg.Planet.Scale != 0.5 || cfg.Planet.Radius != 2.0 {
		t.Errorf("planet config not applied: %+v", cfg.Planet)
	}
	if cfg.Export.Size != 128 {
		t.Errorf("export.size = %d, want 128", cfg.Export.Size)
	}
	// Untouched fields keep their defaults.
	if cfg.Export.Output != Default().Export.Output {
		t.Errorf("export.output = %q, want default %q", cfg.Export.Output, Default().Export.Output)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planetgen.yaml")
	if err := os.WriteFile(path, []byte("export:\n  size: -4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load accepted a negative export size")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero radius", func(c *Config) { c.Planet.Radius = 0 }},
		{"empty output", func(c *Config) { c.Export.Output = "" }},
		{"empty listen", func(c *Config) { c.Serve.Listen = "" }},
		{"zero max size", func(c *Config) { c.Serve.MaxSize = 0 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate accepted invalid config", tc.name)
		}
	}
}
