package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const baseName = "breakout"

// LoadBreakout loads the round configuration.
// Search order: customPath -> ~/.brickbreaker/configs/breakout.{yaml,toml}
// -> ./configs/breakout.yaml -> embedded default.
// Files only need to name the values they override.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Decode(customPath, data)
		if err != nil {
			return BreakoutConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory
	for _, ext := range []string{".yaml", ".toml"} {
		path := userConfigPath(baseName + ext)
		if path == "" {
			break
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Decode(path, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", baseName+".yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := Decode(local, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Decode("embedded.yaml", defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses data on top of the defaults. The format is chosen by the
// file extension of name: .toml uses TOML, anything else YAML.
func Decode(name string, data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if isTOML(name) {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: parse %s: %w", name, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("config: parse %s: %w", name, err)
	}
	return cfg, nil
}

// Encode renders cfg in the given format ("yaml" or "toml").
func Encode(cfg BreakoutConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		return data, nil
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

func isTOML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".toml")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 130
		cfg.Ball.Speed = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 5.5
	}
}
