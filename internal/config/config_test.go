package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Vehicle != "gr86" || cfg.Integrator != "rk4" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Dt != DefaultDt || cfg.Steps != DefaultSteps {
		t.Errorf("time grid defaults: dt=%g steps=%d", cfg.Dt, cfg.Steps)
	}
	if cfg.Cycle.Type != "target_speed" || cfg.Cycle.TargetKmh != 65 {
		t.Errorf("cycle defaults: %+v", cfg.Cycle)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := DefaultConfig()
	cfg.Vehicle = "samber"
	cfg.Steps = 5000
	cfg.Cycle.Brake = -6.0
	cfg.Overrides = map[string]float64{"cs1": 1800}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Vehicle != "samber" || loaded.Steps != 5000 {
		t.Errorf("roundtrip lost fields: %+v", loaded)
	}
	if loaded.Cycle.Brake != -6.0 {
		t.Errorf("Cycle.Brake = %g, want -6", loaded.Cycle.Brake)
	}
	if loaded.Overrides["cs1"] != 1800 {
		t.Errorf("Overrides = %v", loaded.Overrides)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("vehicle: lexusls\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Vehicle != "lexusls" {
		t.Errorf("Vehicle = %q", cfg.Vehicle)
	}
	if cfg.Dt != DefaultDt || cfg.Integrator != "rk4" {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gr86", "sprint")
	if cfg == nil {
		t.Fatal("gr86/sprint should exist")
	}
	if cfg.Cycle.Type != "target_speed" || cfg.Steps != 9000 {
		t.Errorf("unexpected preset: %+v", cfg)
	}

	if GetPreset("gr86", "nope") != nil {
		t.Error("unknown preset should return nil")
	}
	if GetPreset("nope", "sprint") != nil {
		t.Error("unknown vehicle should return nil")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("lexusls")
	if len(names) != 2 {
		t.Errorf("ListPresets(lexusls) = %v, want 2 entries", names)
	}
	if ListPresets("nope") != nil {
		t.Error("unknown vehicle should return nil")
	}
}

func TestCycleParams(t *testing.T) {
	cfg := DefaultConfig()
	params := cfg.CycleParams()

	if params["target_kmh"] != 65 || params["drive"] != 3.3 {
		t.Errorf("CycleParams() = %v", params)
	}
}
