package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default session configuration.
func DefaultShooterConfig() Shooter {
	return Shooter{
		Screen: ScreenConfig{
			Width:  80,
			Height: 24,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Gameplay: GameplayConfig{
			PlayerSpeed: 24,
			SpawnRate:   1.2,
			LevelScore:  200,
			PickupEvery: 7,
			Seed:        0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML document.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
