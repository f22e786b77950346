package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Check.Samples != DefaultSamples {
		t.Errorf("samples = %d, want %d", cfg.Check.Samples, DefaultSamples)
	}
	if cfg.Check.Step != DefaultStep {
		t.Errorf("step = %g, want %g", cfg.Check.Step, DefaultStep)
	}
	if cfg.Size.MaxMeshSize != DefaultMaxMeshSize {
		t.Errorf("max mesh = %d, want %d", cfg.Size.MaxMeshSize, DefaultMaxMeshSize)
	}
	if cfg.Plot.Width != DefaultPlotWidth || cfg.Plot.Height != DefaultPlotHeight {
		t.Errorf("plot = %dx%d", cfg.Plot.Width, cfg.Plot.Height)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"default", "quick", "strict"} {
		if GetPreset(name) == nil {
			t.Errorf("preset %q missing", name)
		}
	}
	if GetPreset("nosuch") != nil {
		t.Error("unknown preset must return nil")
	}
	if GetPreset("quick").Check.Samples >= GetPreset("default").Check.Samples {
		t.Error("quick preset should use fewer samples than default")
	}
	if GetPreset("strict").Check.AbsTol == 0 {
		t.Error("strict preset should pin tolerances")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bvp.yaml")
	raw := `
problem: bratu
check:
  samples: 11
size:
  max_mesh_size: 250
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Problem != "bratu" {
		t.Errorf("problem = %q, want bratu", cfg.Problem)
	}
	if cfg.Check.Samples != 11 {
		t.Errorf("samples = %d, want 11", cfg.Check.Samples)
	}
	if cfg.Size.MaxMeshSize != 250 {
		t.Errorf("max mesh = %d, want 250", cfg.Size.MaxMeshSize)
	}
	// Untouched fields keep their defaults.
	if cfg.Check.Step != DefaultStep {
		t.Errorf("step = %g, want default %g", cfg.Check.Step, DefaultStep)
	}
	if cfg.Plot.Points != DefaultPlotPoints {
		t.Errorf("plot points = %d, want default %d", cfg.Plot.Points, DefaultPlotPoints)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file must fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("check: [not, a, map]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml must fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Problem = "mathieu"
	cfg.Check.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Problem != "mathieu" || got.Check.Seed != 42 {
		t.Errorf("round trip lost fields: %+v", got)
	}
}
