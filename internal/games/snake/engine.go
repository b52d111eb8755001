// Package snake implements a single-player grid snake game: the grid model,
// input translation with the reversal lock, and a tick-driven engine whose
// interval shrinks as food is eaten.
//
// The package has no terminal dependencies. Ticks come from a clock.Scheduler
// and state changes are reported through a Listener, so any presentation
// layer can drive it.
package snake

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/MjakaMwise/VJSnake-Game/internal/clock"
)

// EngineConfig contains everything needed to build an Engine.
type EngineConfig struct {
	Settings  Settings
	Scheduler clock.Scheduler
	Listener  Listener    // Optional; events are dropped when nil
	Logger    *log.Logger // Optional; logging is disabled when nil
	Seed      int64       // RNG seed for food placement
}

// Engine owns one game session: phase, score, speed and the single
// active tick timer. It is not safe for concurrent use; all calls must
// come from the goroutine that runs the scheduler callbacks.
type Engine struct {
	settings Settings
	sched    clock.Scheduler
	listener Listener
	logger   *log.Logger
	rng      *rand.Rand

	phase   Phase
	snake   []Cell // Head at index 0
	food    Cell
	pending Direction // Latest accepted request
	applied Direction // Direction used on the last tick
	score   int
	speed   time.Duration
	tick    uint64
	reason  GameOverReason

	timer clock.Timer // Nil unless Running
}

// NewEngine creates an engine in the Idle phase.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Scheduler == nil {
		return nil, errors.New("snake: engine requires a scheduler")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	listener := cfg.Listener
	if listener == nil {
		listener = NopListener{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Engine{
		settings: cfg.Settings,
		sched:    cfg.Scheduler,
		listener: listener,
		logger:   logger,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		phase:    PhaseIdle,
		snake:    []Cell{cfg.Settings.Origin},
		food:     Cell{X: -1, Y: -1},
		pending:  DirRight,
		applied:  DirRight,
		speed:    cfg.Settings.InitialSpeed,
	}, nil
}

// Start begins a new game from Idle or Over. It is a no-op while a game
// is Running or Paused.
func (e *Engine) Start() {
	if e.phase != PhaseIdle && e.phase != PhaseOver {
		return
	}
	e.reset()
}

// Pause toggles between Running and Paused. Other phases ignore it.
func (e *Engine) Pause() {
	switch e.phase {
	case PhaseRunning:
		e.stopTimer()
		e.setPhase(PhasePaused)
	case PhasePaused:
		e.setPhase(PhaseRunning)
		e.schedule()
	}
}

// Restart abandons the current game and starts a fresh one.
// It is a no-op before the first Start.
func (e *Engine) Restart() {
	if e.phase == PhaseIdle {
		return
	}
	e.reset()
}

// RequestDirection records a direction for the next tick. Requests while
// not Running and reversals of the applied direction are dropped.
func (e *Engine) RequestDirection(d Direction) {
	if e.phase != PhaseRunning {
		return
	}
	if next, ok := Accept(d, e.applied); ok {
		e.pending = next
	}
}

// RequestSwipe interprets a gesture and forwards the resulting direction.
func (e *Engine) RequestSwipe(start, end Point) {
	if e.phase != PhaseRunning {
		return
	}
	if d, ok := SwipeDirection(start, end, e.settings.SwipeThreshold); ok {
		e.RequestDirection(d)
	}
}

// reset replaces the session state and starts ticking.
func (e *Engine) reset() {
	e.stopTimer()

	e.snake = []Cell{e.settings.Origin}
	e.pending = DirRight
	e.applied = DirRight
	e.score = 0
	e.speed = e.settings.InitialSpeed
	e.tick = 0
	e.reason = ReasonNone

	food, err := GenerateFood(e.rng, e.settings.GridSize, e.snake)
	if err != nil {
		// Validate guarantees at least one free cell next to the origin.
		e.logger.Error("cannot place food", "error", err)
	}
	e.food = food

	e.setPhase(PhaseRunning)
	e.schedule()
	e.listener.OnScoreChanged(e.score, e.SpeedLevel())
	e.listener.OnFrame(e.Snake(), e.food)
}

// onTick advances the game by one cell.
func (e *Engine) onTick() {
	if e.phase != PhaseRunning {
		return
	}
	e.tick++

	step := Advance(e.snake, e.pending, e.food, e.settings.GridSize)
	if step.Collided {
		e.end(step.Reason)
		return
	}

	e.applied = e.pending
	e.snake = append([]Cell{step.Head}, e.snake...)

	if !step.AteFood {
		e.snake = e.snake[:len(e.snake)-1]
		e.listener.OnFrame(e.Snake(), e.food)
		return
	}

	e.score++
	prev := e.speed
	e.speed = max(e.settings.MinSpeed, e.speed-e.settings.SpeedDecrease)

	food, err := GenerateFood(e.rng, e.settings.GridSize, e.snake)
	e.food = food
	e.listener.OnScoreChanged(e.score, e.SpeedLevel())
	if err != nil {
		e.end(ReasonBoardFull)
		return
	}

	if e.speed != prev {
		e.logger.Debug("speed changed", "from", prev, "to", e.speed, "score", e.score)
		e.schedule()
	}
	e.listener.OnFrame(e.Snake(), e.food)
}

// end freezes the game in the Over phase.
func (e *Engine) end(reason GameOverReason) {
	e.stopTimer()
	e.reason = reason
	e.phase = PhaseOver
	e.logger.Info("game over", "reason", reason, "score", e.score, "length", len(e.snake), "tick", e.tick)

	e.listener.OnFrame(e.Snake(), e.food)
	e.listener.OnPhaseChanged(PhaseOver)
	e.listener.OnGameOver(e.score)
}

func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	e.logger.Debug("phase changed", "from", e.phase, "to", p)
	e.phase = p
	e.listener.OnPhaseChanged(p)
}

// schedule replaces the active timer with one at the current speed.
func (e *Engine) schedule() {
	e.stopTimer()
	e.timer = e.sched.Every(e.speed, e.onTick)
}

func (e *Engine) stopTimer() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the number of food items eaten this game.
func (e *Engine) Score() int {
	return e.score
}

// Speed returns the current tick interval.
func (e *Engine) Speed() time.Duration {
	return e.speed
}

// SpeedLevel returns the user-facing speed level, starting at 1.
func (e *Engine) SpeedLevel() int {
	dec := e.settings.SpeedDecrease
	if dec <= 0 {
		return 1
	}
	level := float64(e.settings.InitialSpeed-e.speed)/float64(dec) + 1
	return int(math.Round(level))
}

// Snake returns a copy of the body, head first.
func (e *Engine) Snake() []Cell {
	out := make([]Cell, len(e.snake))
	copy(out, e.snake)
	return out
}

// Food returns the food cell. It is (-1,-1) before the first start.
func (e *Engine) Food() Cell {
	return e.food
}

// Pending returns the direction the next tick will use.
func (e *Engine) Pending() Direction {
	return e.pending
}

// Applied returns the direction used on the last tick.
func (e *Engine) Applied() Direction {
	return e.applied
}

// Reason returns why the last game ended, or ReasonNone.
func (e *Engine) Reason() GameOverReason {
	return e.reason
}

// Settings returns the engine's settings.
func (e *Engine) Settings() Settings {
	return e.settings
}
