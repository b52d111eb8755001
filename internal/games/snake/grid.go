package snake

import (
	"errors"
	"math/rand"
)

// ErrNoFreeCell is returned by GenerateFood when the snake covers the whole grid.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// Cell is a grid position.
type Cell struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for the direction.
// Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Move returns the neighbouring cell in direction d.
func (c Cell) Move(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether c lies on a size×size grid.
func InBounds(c Cell, size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Contains reports whether any segment of body equals c.
func Contains(body []Cell, c Cell) bool {
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}

// GenerateFood picks a uniformly random cell of the grid that no snake
// segment occupies. Free cells are enumerated first, so the call always
// terminates; a full grid yields ErrNoFreeCell.
func GenerateFood(rng *rand.Rand, size int, body []Cell) (Cell, error) {
	occupied := make(map[Cell]bool, len(body))
	for _, seg := range body {
		occupied[seg] = true
	}

	free := make([]Cell, 0, size*size-len(occupied))
	for y := range size {
		for x := range size {
			c := Cell{X: x, Y: y}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{X: -1, Y: -1}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}

// Step is the outcome of advancing the snake by one cell.
type Step struct {
	Head     Cell
	AteFood  bool
	Collided bool
	Reason   GameOverReason // Set when Collided
}

// Advance computes the next head for body moving in dir and classifies the
// move. It does not modify body.
//
// The tail cell is vacated on a move that does not eat, so the self check
// skips it in that case; entering the cell the tail is leaving is legal.
func Advance(body []Cell, dir Direction, food Cell, size int) Step {
	if len(body) == 0 {
		return Step{Collided: true, Reason: ReasonSelf}
	}

	head := body[0].Move(dir)
	step := Step{Head: head, AteFood: head == food}

	if !InBounds(head, size) {
		step.Collided = true
		step.Reason = ReasonWall
		return step
	}

	checkLen := len(body)
	if !step.AteFood {
		checkLen-- // Tail will be removed
	}
	if Contains(body[:checkLen], head) {
		step.Collided = true
		step.Reason = ReasonSelf
	}
	return step
}
