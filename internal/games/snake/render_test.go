package snake

import (
	"strings"
	"testing"

	"github.com/MjakaMwise/VJSnake-Game/internal/clock"
	"github.com/MjakaMwise/VJSnake-Game/internal/core"
)

func newRenderEngine(t *testing.T) (*Engine, *clock.Manual) {
	t.Helper()
	m := clock.NewManual()
	e, err := NewEngine(EngineConfig{Settings: DefaultSettings(), Scheduler: m, Seed: 5})
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e, m
}

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(20)
	if w != 42 || h != 24 {
		t.Errorf("RequiredSize(20) = %dx%d, expected 42x24", w, h)
	}
}

func TestScreenToCell(t *testing.T) {
	// 80 wide: board starts at x=19, inner area at x=20, y=2
	tests := []struct {
		x, y int
		want Cell
		ok   bool
	}{
		{20, 2, Cell{X: 0, Y: 0}, true},
		{21, 2, Cell{X: 0, Y: 0}, true},
		{22, 3, Cell{X: 1, Y: 1}, true},
		{59, 21, Cell{X: 19, Y: 19}, true},
		{19, 2, Cell{}, false},
		{60, 2, Cell{}, false},
		{20, 1, Cell{}, false},
	}
	for _, tc := range tests {
		got, ok := ScreenToCell(80, 20, tc.x, tc.y)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ScreenToCell(%d, %d) = %v, %v; expected %v, %v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRenderIdleOverlay(t *testing.T) {
	e, _ := newRenderEngine(t)
	s := core.NewScreen(80, 24)

	Render(s, e)

	out := s.String()
	if !strings.Contains(out, "S N A K E") || !strings.Contains(out, "Press Enter to start") {
		t.Errorf("idle screen missing title overlay:\n%s", out)
	}
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD missing score:\n%s", out)
	}
}

func TestRenderRunning(t *testing.T) {
	e, _ := newRenderEngine(t)
	e.Start()
	s := core.NewScreen(80, 24)

	Render(s, e)

	board := BoardRect(80, 20)
	sx, sy := cellOrigin(board, e.Snake()[0])
	if c := s.GetCell(sx, sy); c.Rune != '█' || c.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected bright green block", c)
	}

	fx, fy := cellOrigin(board, e.Food())
	if s.Get(fx, fy) != '(' || s.Get(fx+1, fy) != ')' {
		t.Errorf("food not drawn at %v", e.Food())
	}

	controls := s.Row(board.Bottom())
	if !strings.Contains(controls, "[P] Pause") || !strings.Contains(controls, "[R] Restart") {
		t.Errorf("controls row = %q", controls)
	}
	if strings.Contains(s.String(), "Game Over") {
		t.Error("running screen should not show an overlay")
	}
}

func TestRenderGameOver(t *testing.T) {
	e, m := newRenderEngine(t)
	e.Start()
	e.snake = []Cell{{X: 19, Y: 4}}
	e.score = 7
	m.Step()
	s := core.NewScreen(80, 24)

	Render(s, e)

	out := s.String()
	if !strings.Contains(out, "Game Over") || !strings.Contains(out, "Final Score: 7") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
	if !strings.Contains(out, "[Enter] Play Again") {
		t.Errorf("controls should offer Play Again:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	e, _ := newRenderEngine(t)
	s := core.NewScreen(30, 10)

	Render(s, e)

	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", s.String())
	}
}
