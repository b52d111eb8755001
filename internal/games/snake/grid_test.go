package snake

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, expected %s", d, got, want)
		}
	}
}

func TestCellMove(t *testing.T) {
	c := Cell{X: 5, Y: 5}
	tests := []struct {
		dir  Direction
		want Cell
	}{
		{DirUp, Cell{X: 5, Y: 4}},
		{DirDown, Cell{X: 5, Y: 6}},
		{DirLeft, Cell{X: 4, Y: 5}},
		{DirRight, Cell{X: 6, Y: 5}},
	}
	for _, tc := range tests {
		if got := c.Move(tc.dir); got != tc.want {
			t.Errorf("Move(%s) = %v, expected %v", tc.dir, got, tc.want)
		}
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	body := []Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}, {X: 3, Y: 6}}

	for i := 0; i < 500; i++ {
		food, err := GenerateFood(rng, DefaultGridSize, body)
		if err != nil {
			t.Fatalf("GenerateFood() failed: %v", err)
		}
		if Contains(body, food) {
			t.Errorf("Food spawned on snake at (%d, %d)", food.X, food.Y)
		}
		if !InBounds(food, DefaultGridSize) {
			t.Errorf("Food spawned out of bounds at (%d, %d)", food.X, food.Y)
		}
	}
}

func TestFoodSpawnLastFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	body := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	food, err := GenerateFood(rng, 2, body)
	if err != nil {
		t.Fatalf("GenerateFood() failed: %v", err)
	}
	if food != (Cell{X: 0, Y: 1}) {
		t.Errorf("Only free cell is (0,1), got %v", food)
	}
}

func TestFoodSpawnFullGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	body := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	_, err := GenerateFood(rng, 2, body)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("GenerateFood() on full grid: err = %v, expected ErrNoFreeCell", err)
	}
}

func TestFoodSpawnCoversAllFreeCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	body := []Cell{{X: 1, Y: 1}}
	seen := make(map[Cell]bool)

	for i := 0; i < 2000; i++ {
		food, err := GenerateFood(rng, 3, body)
		if err != nil {
			t.Fatalf("GenerateFood() failed: %v", err)
		}
		seen[food] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected all 8 free cells to be chosen eventually, saw %d", len(seen))
	}
}

func TestAdvance(t *testing.T) {
	far := Cell{X: 19, Y: 19}
	tests := []struct {
		name string
		body []Cell
		dir  Direction
		food Cell
		want Step
	}{
		{
			name: "plain move",
			body: []Cell{{X: 10, Y: 10}},
			dir:  DirRight,
			food: far,
			want: Step{Head: Cell{X: 11, Y: 10}},
		},
		{
			name: "eat food",
			body: []Cell{{X: 5, Y: 5}, {X: 4, Y: 5}},
			dir:  DirRight,
			food: Cell{X: 6, Y: 5},
			want: Step{Head: Cell{X: 6, Y: 5}, AteFood: true},
		},
		{
			name: "left wall",
			body: []Cell{{X: 0, Y: 5}},
			dir:  DirLeft,
			food: far,
			want: Step{Head: Cell{X: -1, Y: 5}, Collided: true, Reason: ReasonWall},
		},
		{
			name: "bottom wall",
			body: []Cell{{X: 3, Y: 19}},
			dir:  DirDown,
			food: far,
			want: Step{Head: Cell{X: 3, Y: 20}, Collided: true, Reason: ReasonWall},
		},
		{
			name: "self collision",
			body: []Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}},
			dir:  DirRight,
			food: far,
			want: Step{Head: Cell{X: 6, Y: 5}, Collided: true, Reason: ReasonSelf},
		},
		{
			name: "into vacating tail",
			body: []Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}},
			dir:  DirDown,
			food: far,
			want: Step{Head: Cell{X: 5, Y: 6}},
		},
		{
			name: "into tail while eating",
			body: []Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}},
			dir:  DirDown,
			food: Cell{X: 5, Y: 6},
			want: Step{Head: Cell{X: 5, Y: 6}, AteFood: true, Collided: true, Reason: ReasonSelf},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := append([]Cell(nil), tc.body...)
			got := Advance(tc.body, tc.dir, tc.food, DefaultGridSize)
			if got != tc.want {
				t.Errorf("Advance() = %+v, expected %+v", got, tc.want)
			}
			for i := range before {
				if tc.body[i] != before[i] {
					t.Fatalf("Advance() modified the body")
				}
			}
		})
	}
}
