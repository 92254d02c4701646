package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "antidote.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.antidote/configs/antidote.yaml -> ./configs/antidote.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadVariant loads the configuration and applies the variant and difficulty preset.
// On a load error the returned config is still usable (defaults plus overrides).
func LoadVariant(customPath, variantID string, preset DifficultyPreset) (GameConfig, error) {
	cfg, loadErr := Load(customPath)

	v, err := LookupVariant(variantID)
	if err != nil {
		return cfg, err
	}
	v.Apply(&cfg)
	ApplyPreset(&cfg, preset)

	return cfg, loadErr
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".antidote", "configs", filename)
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
func Validate(cfg GameConfig) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0:
		return invalid("screen size must be positive")
	case cfg.Screen.GroundHeight < 0 || cfg.Screen.GroundHeight >= cfg.Screen.Height:
		return invalid("ground_height must be in [0, height)")
	case cfg.Physics.MaxDelta <= 0:
		return invalid("max_delta must be positive")
	case cfg.Player.Width <= 0 || cfg.Player.Height <= 0:
		return invalid("player size must be positive")
	case cfg.Player.MaxHealth <= 0:
		return invalid("max_health must be positive")
	case cfg.Bullet.Width <= 0 || cfg.Bullet.Height <= 0:
		return invalid("bullet size must be positive")
	case cfg.Monsters.Width <= 0 || cfg.Monsters.Height <= 0:
		return invalid("monster size must be positive")
	case cfg.Monsters.MinSpeed > cfg.Monsters.MaxSpeed:
		return invalid("monsters: min_speed > max_speed")
	case cfg.Monsters.MinHealth < 1 || cfg.Monsters.MinHealth > cfg.Monsters.MaxHealth:
		return invalid("monsters: health range must be within [1, max_health]")
	case cfg.Monsters.KillableChance < 0 || cfg.Monsters.KillableChance > 1:
		return invalid("monsters: killable_chance must be in [0, 1]")
	case cfg.Monsters.MinInterval <= 0 || cfg.Monsters.MinInterval > cfg.Monsters.MaxInterval:
		return invalid("monsters: interval range must be positive and ordered")
	case cfg.Particles.MinSpeed > cfg.Particles.MaxSpeed || cfg.Particles.MinY > cfg.Particles.MaxY:
		return invalid("particles: inverted range")
	case cfg.Particles.MinInterval <= 0 || cfg.Particles.MinInterval > cfg.Particles.MaxInterval:
		return invalid("particles: interval range must be positive and ordered")
	case cfg.Antidote.Enabled && (cfg.Antidote.Width <= 0 || cfg.Antidote.Height <= 0):
		return invalid("antidote size must be positive")
	case cfg.Antidote.MinY > cfg.Antidote.MaxY:
		return invalid("antidote: min_y > max_y")
	}
	return nil
}
