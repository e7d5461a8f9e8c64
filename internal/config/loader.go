package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadThrust loads the thrust configuration.
// Search order: customPath -> ~/.thrust/configs/thrust.yaml -> ./configs/thrust.yaml -> embedded default.
// Every file is decoded over DefaultThrustConfig, so partial files only override what they name.
func LoadThrust(customPath string) (ThrustConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultThrustConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseThrust(data)
		if err != nil {
			return DefaultThrustConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("thrust.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseThrust(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/thrust.yaml"); err == nil {
		if cfg, err := ParseThrust(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseThrust(defaultThrustYAML)
	if err != nil {
		return DefaultThrustConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseThrust decodes YAML over the defaults and validates the result.
func ParseThrust(data []byte) (ThrustConfig, error) {
	cfg := DefaultThrustConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with.
func (c ThrustConfig) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Grid.CellSize > 0, "grid.cell_size"},
		{c.Player.Size > 0, "player.size"},
		{c.Economy.MaxFuel > 0, "economy.max_fuel"},
		{c.Economy.MaxAmmo > 0, "economy.max_ammo"},
		{c.Physics.PushFactor > 1, "physics.push_factor"},
		{c.Physics.ResolvePasses > 0, "physics.resolve_passes"},
		{c.Turret.FirePeriod > 0, "turret.fire_period"},
		{c.Weapons.Player.Lifespan > 0, "weapons.player.lifespan"},
		{c.Weapons.Enemy.Lifespan > 0, "weapons.enemy.lifespan"},
		{c.Chaser.MaxSize >= c.Chaser.MinSize, "chaser.max_size"},
		{c.Chaser.MaxSpeed >= c.Chaser.MinSpeed, "chaser.max_speed"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalidConfig, chk.field)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".thrust", "configs", filename)
}

// ApplyThrustPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the loaded values.
func ApplyThrustPreset(cfg *ThrustConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Economy.MaxFuel *= 1.5
		cfg.Economy.ContactFuelLoss *= 0.6
		cfg.Turret.FirePeriod = cfg.Turret.FirePeriod * 3 / 2
	case DifficultyHard:
		cfg.Economy.MaxFuel *= 0.7
		cfg.Economy.ContactFuelLoss *= 1.5
		cfg.Turret.FirePeriod = max(1, cfg.Turret.FirePeriod*2/3)
		cfg.Chaser.SpeedLimit *= 1.25
	}
}
