package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/galpot/internal/potential"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.R.N < 2 || cfg.Z.N < 2 {
		t.Error("default axes need at least two samples")
	}
	if len(cfg.Components) == 0 {
		t.Error("default config should carry components")
	}
	if _, _, err := cfg.Pack(); err != nil {
		t.Errorf("default config should pack cleanly: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	cfg := DefaultConfig()
	cfg.R.Log = true
	cfg.Workers = 3
	cfg.Components = []ComponentConfig{{Type: "loghalo", Params: []float64{1.0, 0.1, 0.9}}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !loaded.R.Log {
		t.Error("R.Log lost in round trip")
	}
	if loaded.Workers != 3 {
		t.Errorf("Workers = %d, want 3", loaded.Workers)
	}
	if len(loaded.Components) != 1 || loaded.Components[0].Type != "loghalo" {
		t.Errorf("components lost in round trip: %+v", loaded.Components)
	}
}

func TestPack(t *testing.T) {
	cfg := &Config{
		Components: []ComponentConfig{
			{Type: "pointmass", Params: []float64{1.0}},
			{Type: "nfw", Params: []float64{2.0, 16.0}},
		},
	}

	types, params, err := cfg.Pack()
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if len(types) != 2 || types[0] != potential.TypePointMass || types[1] != potential.TypeNFW {
		t.Errorf("types = %v", types)
	}
	want := []float64{1.0, 2.0, 16.0}
	if len(params) != len(want) {
		t.Fatalf("params = %v, want %v", params, want)
	}
	for i := range want {
		if params[i] != want[i] {
			t.Errorf("params[%d] = %g, want %g", i, params[i], want[i])
		}
	}

	// Packed output must build.
	comps, err := potential.Build(types, params)
	if err != nil {
		t.Fatalf("packed spec failed to build: %v", err)
	}
	potential.Release(comps)
}

func TestPackUnknownComponent(t *testing.T) {
	cfg := &Config{Components: []ComponentConfig{{Type: "blackhole9000"}}}
	if _, _, err := cfg.Pack(); !errors.Is(err, potential.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}
