// Package config provides YAML-based configuration loading and difficulty
// presets for the shooter.
package config

// Shooter contains all configuration for a session.
type Shooter struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Engine   EngineConfig   `yaml:"engine"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Debug    bool           `yaml:"debug"`
}

// ScreenConfig defines the playfield dimensions in terminal cells.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EngineConfig defines frame clock parameters.
type EngineConfig struct {
	TickRate int `yaml:"tick_rate"` // logical frames per second
}

// GameplayConfig defines tuning for the run itself.
type GameplayConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"` // cells per second
	SpawnRate   float64 `yaml:"spawn_rate"`   // enemy spawns per second at level 1
	LevelScore  int     `yaml:"level_score"`  // score per level advance
	PickupEvery int     `yaml:"pickup_every"` // kills between power-up drops
	Seed        int64   `yaml:"seed"`         // 0 picks a random seed at startup
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts gameplay tuning for a difficulty preset. Unknown
// presets leave the config unchanged.
func ApplyPreset(cfg *Shooter, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.SpawnRate *= 0.7
		cfg.Gameplay.PickupEvery = 5
	case DifficultyNormal:
	case DifficultyHard:
		cfg.Gameplay.SpawnRate *= 1.5
		cfg.Gameplay.PickupEvery = 10
	}
}
