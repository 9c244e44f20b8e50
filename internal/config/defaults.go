package config

import (
	_ "embed"
)

//go:embed defaults/race.yaml
var defaultRaceYAML []byte

// DefaultRaceConfig returns the hard-coded race configuration.
// It matches defaults/race.yaml and is used if the embedded file is unusable.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 480,
		},
		Timing: TimingConfig{
			TickMS: 50,
		},
		Input: InputConfig{
			HoldMS: 550,
		},
		Placement: PlacementConfig{
			MaxAttempts: 1000,
		},
		Labels: LabelsConfig{
			Neuro: "Neuro",
			Evil:  "Evil",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRaceYAML
}
