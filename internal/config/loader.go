package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the session configuration.
// Search order: customPath -> ~/.starblitz/config.yaml -> ./configs/shooter.yaml -> embedded default
func Load(customPath string) (Shooter, error) {
	var cfg Shooter

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applyDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applyDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/shooter.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applyDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return applyDefaults(cfg), nil
}

// applyDefaults fills zero-valued required fields so a partial user config
// still yields a playable session.
func applyDefaults(cfg Shooter) Shooter {
	def := DefaultShooterConfig()
	if cfg.Screen.Width <= 0 {
		cfg.Screen.Width = def.Screen.Width
	}
	if cfg.Screen.Height <= 0 {
		cfg.Screen.Height = def.Screen.Height
	}
	if cfg.Engine.TickRate <= 0 {
		cfg.Engine.TickRate = def.Engine.TickRate
	}
	if cfg.Gameplay.PlayerSpeed <= 0 {
		cfg.Gameplay.PlayerSpeed = def.Gameplay.PlayerSpeed
	}
	if cfg.Gameplay.SpawnRate <= 0 {
		cfg.Gameplay.SpawnRate = def.Gameplay.SpawnRate
	}
	if cfg.Gameplay.LevelScore <= 0 {
		cfg.Gameplay.LevelScore = def.Gameplay.LevelScore
	}
	if cfg.Gameplay.PickupEvery <= 0 {
		cfg.Gameplay.PickupEvery = def.Gameplay.PickupEvery
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starblitz", "config.yaml")
}
