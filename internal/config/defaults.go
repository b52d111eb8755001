package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:   20,
			Origin: OriginConfig{X: 10, Y: 10},
		},
		Speed: SpeedConfig{
			InitialMS:  150,
			DecreaseMS: 8,
			MinMS:      60,
		},
		Input: InputConfig{
			SwipeThreshold: 30,
			CellSize:       20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
