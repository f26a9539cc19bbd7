package config

import (
	_ "embed"
)

//go:embed defaults/stacktower.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, mirroring the
// embedded YAML. Used as the last-resort fallback.
func Default() GameConfig {
	return GameConfig{
		Geometry: GeometryConfig{
			GridWidth:     15,
			PlatformWidth: 5,
		},
		Speed: SpeedConfig{
			MoveInterval:  0.2,
			SpeedIncrease: 0.92,
			FallSpeed:     10.0,
		},
		Camera: CameraConfig{
			TopBand:     0.3,
			TriggerBand: 0.7,
			MinLevel:    4,
			MinRowCount: 2,
		},
		Session: SessionConfig{
			GameOverDelay: 3.0,
		},
	}
}
