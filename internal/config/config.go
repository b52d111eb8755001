// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/MjakaMwise/VJSnake-Game/internal/games/snake"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Speed      SpeedConfig      `yaml:"speed"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size   int          `yaml:"size"`
	Origin OriginConfig `yaml:"origin"` // Starting cell of the snake
}

// OriginConfig is a cell position in the grid.
type OriginConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpeedConfig defines the tick interval and how it shrinks per food.
type SpeedConfig struct {
	InitialMS  int `yaml:"initial_ms"`
	DecreaseMS int `yaml:"decrease_ms"`
	MinMS      int `yaml:"min_ms"`
}

// InputConfig defines gesture handling.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Minimum swipe length in gesture units
	CellSize       int `yaml:"cell_size"`       // Gesture units per terminal cell
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. The empty string means "use the
// speed section as written".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports every problem with the configuration at once.
func (c SnakeConfig) Validate() error {
	var errs []error
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		errs = append(errs, err)
	}
	if c.Input.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("input.cell_size must be positive, got %d", c.Input.CellSize))
	}
	if err := c.ToSettings().Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// ToSettings converts the configuration into engine settings.
func (c SnakeConfig) ToSettings() snake.Settings {
	return snake.Settings{
		GridSize:       c.Grid.Size,
		Origin:         snake.Cell{X: c.Grid.Origin.X, Y: c.Grid.Origin.Y},
		InitialSpeed:   time.Duration(c.Speed.InitialMS) * time.Millisecond,
		SpeedDecrease:  time.Duration(c.Speed.DecreaseMS) * time.Millisecond,
		MinSpeed:       time.Duration(c.Speed.MinMS) * time.Millisecond,
		SwipeThreshold: c.Input.SwipeThreshold,
	}
}
