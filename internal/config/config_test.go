package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	var cfg RaceConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultRaceConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultRaceConfig() %+v", cfg, DefaultRaceConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRaceConfig().Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultRaceConfig()
	if cfg.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 50ms", cfg.TickInterval())
	}
	if cfg.HoldWindow() != 550*time.Millisecond {
		t.Errorf("HoldWindow() = %v, expected 550ms", cfg.HoldWindow())
	}

	rt := cfg.Runtime(7)
	if rt.CanvasW != 800 || rt.CanvasH != 480 || rt.Seed != 7 || rt.TickInterval != 50*time.Millisecond {
		t.Errorf("Runtime() = %+v", rt)
	}
	if rt.MaxPlacementAttempts != 1000 {
		t.Errorf("Runtime().MaxPlacementAttempts = %d, expected 1000", rt.MaxPlacementAttempts)
	}
	if rt.Labels["neuro"] != "Neuro" || rt.Labels["evil"] != "Evil" {
		t.Errorf("Runtime().Labels = %v, expected Neuro and Evil", rt.Labels)
	}
}

func TestValidateHoldWindowCoversTick(t *testing.T) {
	tests := []struct {
		name    string
		holdMS  int
		tickMS  int
		wantErr bool
	}{
		{"default", 550, 50, false},
		{"equal to tick", 50, 50, false},
		{"shorter than tick", 40, 50, true},
		{"zero", 0, 50, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRaceConfig()
			cfg.Input.HoldMS = tc.holdMS
			cfg.Timing.TickMS = tc.tickMS

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "hold_ms") {
				t.Errorf("error %q should mention hold_ms", err)
			}
		})
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := DefaultRaceConfig()
	cfg.Canvas.Width = 0
	cfg.Timing.TickMS = -1
	cfg.Labels.Evil = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("error should wrap ErrInvalid: %v", err)
	}
	for _, want := range []string{"canvas", "tick_ms", "labels"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestLoadRaceCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yaml")
	data := "canvas:\n  width: 400\n  height: 300\nlabels:\n  neuro: Vedal\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadRace(path)
	if err != nil {
		t.Fatalf("LoadRace() failed: %v", err)
	}
	if source != SourceCustom {
		t.Errorf("source = %q, expected %q", source, SourceCustom)
	}
	if cfg.Canvas.Width != 400 || cfg.Canvas.Height != 300 {
		t.Errorf("canvas = %+v, expected 400x300", cfg.Canvas)
	}
	if cfg.Labels.Neuro != "Vedal" {
		t.Errorf("neuro label = %q", cfg.Labels.Neuro)
	}
	// Untouched keys keep their defaults
	if cfg.Labels.Evil != "Evil" || cfg.Timing.TickMS != 50 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadRaceCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadRace(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("canvas: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadRace(bad); err == nil {
		t.Error("unparsable custom file should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  tick_ms: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := LoadRace(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid custom file should wrap ErrInvalid, got %v", err)
	}
}

func TestLoadRaceFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := LoadRace("")
	if err != nil {
		t.Fatalf("LoadRace() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultRaceConfig() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
}

func TestLoadRaceLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(localConfigPath, []byte("input:\n  hold_ms: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadRace("")
	if err != nil {
		t.Fatalf("LoadRace() failed: %v", err)
	}
	if source != SourceLocal {
		t.Errorf("source = %q, expected %q", source, SourceLocal)
	}
	if cfg.Input.HoldMS != 300 {
		t.Errorf("hold_ms = %d, expected 300", cfg.Input.HoldMS)
	}
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	data, err := Marshal(DefaultRaceConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_ms: 50") {
		t.Errorf("Marshal() output missing tick_ms:\n%s", data)
	}
}
