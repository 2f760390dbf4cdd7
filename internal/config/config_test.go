package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TimeStepper.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Body.Mass <= 0 {
		t.Error("mass should be positive")
	}
	if cfg.Body.Inertia[0] <= 0 || cfg.Body.Inertia[1] <= 0 || cfg.Body.Inertia[2] <= 0 {
		t.Error("inertia components should be positive")
	}
}

func TestDefaultConfigBuilds(t *testing.T) {
	cfg := DefaultConfig()
	scenario, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenario.Initial.Q) != 7 {
		t.Errorf("len(Initial.Q) = %d, want 7", len(scenario.Initial.Q))
	}
	if len(scenario.Initial.V) != 6 {
		t.Errorf("len(Initial.V) = %d, want 6", len(scenario.Initial.V))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("upright-spin")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.InitialState.Angular[2] == 0 {
		t.Errorf("expected nonzero spin, got %v", cfg.InitialState.Angular)
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected at least one preset")
	}
}

func TestAllPresetsBuild(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if _, err := cfg.Build(); err != nil {
			t.Errorf("preset %q failed to build: %v", name, err)
		}
	}
}
