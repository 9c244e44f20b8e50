package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded config came from.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// localConfigPath is relative to the working directory.
var localConfigPath = filepath.Join("configs", "race.yaml")

// LoadRace loads the race configuration and reports which source won.
// Search order: customPath -> ~/.race/configs/race.yaml -> ./configs/race.yaml -> embedded default.
// Files are decoded on top of the defaults, so they only need the keys they change.
// A custom path that cannot be read or parsed is an error; the other locations
// are skipped silently.
func LoadRace(customPath string) (RaceConfig, string, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("race.yaml"); userCfgPath != "" {
		if cfg, err := decodeFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := decodeFile(localConfigPath); err == nil && cfg.Validate() == nil {
		return cfg, SourceLocal, nil
	}

	cfg := DefaultRaceConfig()
	if err := yaml.Unmarshal(defaultRaceYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultRaceConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// decodeFile reads a YAML file over the default config.
func decodeFile(path string) (RaceConfig, error) {
	cfg := DefaultRaceConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".race", "configs", filename)
}

// Marshal renders a config as YAML.
func Marshal(cfg RaceConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
