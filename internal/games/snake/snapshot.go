package snake

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot captures the complete game state for determinism testing and
// headless output.
type Snapshot struct {
	Tick       uint64        `yaml:"tick"`
	Phase      string        `yaml:"phase"`
	Score      int           `yaml:"score"`
	Speed      time.Duration `yaml:"-"`
	SpeedMS    int64         `yaml:"speed_ms"`
	SpeedLevel int           `yaml:"speed_level"`
	SnakeLen   int           `yaml:"snake_len"`
	Head       Cell          `yaml:"head"`
	Food       Cell          `yaml:"food"`
	Applied    string        `yaml:"applied"`
	Pending    string        `yaml:"pending"`
	Reason     string        `yaml:"reason"`
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:       e.tick,
		Phase:      e.phase.String(),
		Score:      e.score,
		Speed:      e.speed,
		SpeedMS:    e.speed.Milliseconds(),
		SpeedLevel: e.SpeedLevel(),
		SnakeLen:   len(e.snake),
		Head:       e.snake[0],
		Food:       e.food,
		Applied:    e.applied.String(),
		Pending:    e.pending.String(),
		Reason:     e.reason.String(),
	}
}

// DebugState returns a string representation of the game state.
func (e *Engine) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Phase: %s, Score: %d, Speed: %v (level %d)\n",
		e.tick, e.phase, e.score, e.speed, e.SpeedLevel())
	fmt.Fprintf(&b, "Snake len: %d, Applied: %s, Pending: %s\n", len(e.snake), e.applied, e.pending)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", e.snake[0].X, e.snake[0].Y, e.food.X, e.food.Y)
	if e.phase == PhaseOver {
		fmt.Fprintf(&b, "Game over: %s\n", e.reason)
	}
	return b.String()
}
