// Package config provides YAML-based tuning for the tower simulation with
// difficulty presets layered on top of the loaded values.
package config

// GameConfig contains all tunable parameters of the tower game.
type GameConfig struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Speed    SpeedConfig    `yaml:"speed"`
	Camera   CameraConfig   `yaml:"camera"`
	Session  SessionConfig  `yaml:"session"`
}

// GeometryConfig defines the grid and starting platform dimensions.
type GeometryConfig struct {
	GridWidth     int `yaml:"grid_width"`     // Columns in the tower grid
	PlatformWidth int `yaml:"platform_width"` // Starting platform width
}

// SpeedConfig defines oscillation and fall timing.
type SpeedConfig struct {
	MoveInterval  float64 `yaml:"move_interval"`  // Seconds per one-column step
	SpeedIncrease float64 `yaml:"speed_increase"` // Interval multiplier per landing (<1 accelerates)
	FallSpeed     float64 `yaml:"fall_speed"`     // Rows per second for cut-away blocks
}

// CameraConfig defines when and how the viewport follows the tower.
type CameraConfig struct {
	TopBand     float64 `yaml:"top_band"`      // Live row is pinned this fraction down from the top
	TriggerBand float64 `yaml:"trigger_band"`  // Scrolling starts once the live row rises above this fraction
	MinLevel    int     `yaml:"min_level"`     // No scrolling below this level
	MinRowCount int     `yaml:"min_row_count"` // No scrolling with fewer rows than this
}

// SessionConfig defines session-level timing.
type SessionConfig struct {
	GameOverDelay float64 `yaml:"game_over_delay"` // Seconds before GameOver returns to the menu
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the config for a difficulty preset. The fixed preset
// disables acceleration entirely; easy/hard trade platform width against
// step interval.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Geometry.PlatformWidth = 7
		cfg.Speed.MoveInterval = 0.25
		cfg.Speed.SpeedIncrease = 0.95
	case DifficultyHard:
		cfg.Geometry.PlatformWidth = 4
		cfg.Speed.MoveInterval = 0.15
		cfg.Speed.SpeedIncrease = 0.90
	case DifficultyFixed:
		cfg.Speed.SpeedIncrease = 1.0
	}
}

// Normalize clamps nonsensical values back into a playable range.
// Loaded files are user-editable, so the engine never trusts them raw.
func (c *GameConfig) Normalize() {
	if c.Geometry.GridWidth < 3 {
		c.Geometry.GridWidth = 3
	}
	if c.Geometry.PlatformWidth < 1 {
		c.Geometry.PlatformWidth = 1
	}
	if c.Geometry.PlatformWidth > c.Geometry.GridWidth {
		c.Geometry.PlatformWidth = c.Geometry.GridWidth
	}
	if c.Speed.MoveInterval <= 0 {
		c.Speed.MoveInterval = 0.2
	}
	if c.Speed.SpeedIncrease <= 0 || c.Speed.SpeedIncrease > 1 {
		c.Speed.SpeedIncrease = 0.92
	}
	if c.Speed.FallSpeed <= 0 {
		c.Speed.FallSpeed = 10.0
	}
	if c.Camera.TopBand <= 0 || c.Camera.TopBand >= 1 {
		c.Camera.TopBand = 0.3
	}
	if c.Camera.TriggerBand <= c.Camera.TopBand || c.Camera.TriggerBand > 1 {
		c.Camera.TriggerBand = 0.7
	}
	if c.Camera.MinLevel < 0 {
		c.Camera.MinLevel = 4
	}
	if c.Camera.MinRowCount < 2 {
		c.Camera.MinRowCount = 2
	}
	if c.Session.GameOverDelay <= 0 {
		c.Session.GameOverDelay = 3.0
	}
}
