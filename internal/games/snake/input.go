package snake

import (
	"fmt"
	"strings"

	"github.com/MjakaMwise/VJSnake-Game/internal/core"
)

// Point is a position in gesture space (pixels, or scaled terminal cells).
type Point struct {
	X, Y int
}

// Accept applies the reversal lock: requested is taken unless it points
// straight back along applied.
func Accept(requested, applied Direction) (Direction, bool) {
	if requested == applied.Opposite() {
		return applied, false
	}
	return requested, true
}

// SwipeDirection interprets a gesture from start to end.
// The dominant axis decides the direction; a gesture whose dominant
// component does not exceed threshold is ignored.
func SwipeDirection(start, end Point, threshold int) (Direction, bool) {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if core.Abs(dx) > core.Abs(dy) {
		switch {
		case dx > threshold:
			return DirRight, true
		case dx < -threshold:
			return DirLeft, true
		}
		return DirRight, false
	}

	switch {
	case dy > threshold:
		return DirDown, true
	case dy < -threshold:
		return DirUp, true
	}
	return DirDown, false
}

// ParseDirection parses "up", "down", "left" or "right" (case-insensitive,
// single-letter forms allowed).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction %q", s)
}
