package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Width != 1200 || cfg.Window.Height != 800 {
		t.Errorf("unexpected window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Animation.TransitionRate <= 0 {
		t.Error("transition rate should be positive")
	}
	if cfg.Animation.AutoplayTicks <= 0 {
		t.Error("autoplay ticks should be positive")
	}
	if cfg.Particles <= 0 {
		t.Error("particle count should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("calm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles != 100 {
		t.Errorf("expected 100 particles, got %d", cfg.Particles)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hkaqi.yaml")

	want := DefaultConfig()
	want.Particles = 321
	want.Seed = 99
	want.Animation.TransitionRate = 0.08

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got.Particles != want.Particles || got.Seed != want.Seed {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if got.Animation.TransitionRate != want.Animation.TransitionRate {
		t.Errorf("transition rate mismatch: %f", got.Animation.TransitionRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
