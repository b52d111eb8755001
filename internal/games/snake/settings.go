package snake

import (
	"errors"
	"fmt"
	"time"
)

// Default game constants.
const (
	DefaultGridSize       = 20
	DefaultInitialSpeed   = 150 * time.Millisecond
	DefaultSpeedDecrease  = 8 * time.Millisecond
	DefaultMinSpeed       = 60 * time.Millisecond
	DefaultSwipeThreshold = 30
)

// DefaultOrigin is the spawn cell of a fresh snake.
var DefaultOrigin = Cell{X: 10, Y: 10}

// Settings holds the tunable constants of a game.
type Settings struct {
	GridSize       int           // Cells per side of the square grid
	InitialSpeed   time.Duration // Tick interval at game start
	SpeedDecrease  time.Duration // Interval reduction per food eaten
	MinSpeed       time.Duration // Interval floor
	SwipeThreshold int           // Minimum dominant-axis swipe length
	Origin         Cell          // Spawn cell
}

// DefaultSettings returns the classic 20×20 configuration.
func DefaultSettings() Settings {
	return Settings{
		GridSize:       DefaultGridSize,
		InitialSpeed:   DefaultInitialSpeed,
		SpeedDecrease:  DefaultSpeedDecrease,
		MinSpeed:       DefaultMinSpeed,
		SwipeThreshold: DefaultSwipeThreshold,
		Origin:         DefaultOrigin,
	}
}

// Validate checks that the settings describe a playable game.
func (s Settings) Validate() error {
	var errs []error
	if s.GridSize < 2 {
		errs = append(errs, fmt.Errorf("grid size must be at least 2, got %d", s.GridSize))
	}
	if !InBounds(s.Origin, s.GridSize) {
		errs = append(errs, fmt.Errorf("origin (%d,%d) is outside the %dx%d grid", s.Origin.X, s.Origin.Y, s.GridSize, s.GridSize))
	}
	if s.MinSpeed <= 0 {
		errs = append(errs, fmt.Errorf("min speed must be positive, got %v", s.MinSpeed))
	}
	if s.InitialSpeed < s.MinSpeed {
		errs = append(errs, fmt.Errorf("initial speed %v is below min speed %v", s.InitialSpeed, s.MinSpeed))
	}
	if s.SpeedDecrease < 0 {
		errs = append(errs, fmt.Errorf("speed decrease must not be negative, got %v", s.SpeedDecrease))
	}
	if s.SwipeThreshold < 0 {
		errs = append(errs, fmt.Errorf("swipe threshold must not be negative, got %d", s.SwipeThreshold))
	}
	if len(errs) > 0 {
		return fmt.Errorf("snake: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
