// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, timers and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MjakaMwise/VJSnake-Game/internal/clock"
)

// TickMsg is sent when a scheduled timer fires.
// ID identifies the timer generation that produced it.
type TickMsg struct {
	ID   int
	Time time.Time
}

// Scheduler is a clock.Scheduler driven by the Bubble Tea event loop.
// Every and Stop only record intent; the tea.Cmds they produce are
// collected with Flush and returned from Update. Callbacks run inside
// Update, so the engine is never touched from another goroutine.
type Scheduler struct {
	nextID  int
	timers  map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	s        *Scheduler
	id       int
	interval time.Duration
	fn       func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[int]*teaTimer)}
}

// Every schedules fn to run every interval.
func (s *Scheduler) Every(interval time.Duration, fn func()) clock.Timer {
	s.nextID++
	t := &teaTimer{s: s, id: s.nextID, interval: interval, fn: fn}
	s.timers[t.id] = t
	s.pending = append(s.pending, t.cmd())
	return t
}

// Stop cancels the timer. A tick already in flight is dropped on arrival.
func (t *teaTimer) Stop() {
	delete(t.s.timers, t.id)
}

func (t *teaTimer) cmd() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now}
	})
}

// Handle runs the callback for a live timer and re-arms it.
// It reports whether the tick belonged to a live timer.
func (s *Scheduler) Handle(msg TickMsg) bool {
	t, ok := s.timers[msg.ID]
	if !ok {
		return false
	}
	t.fn()
	// The callback may have stopped or replaced this timer.
	if _, live := s.timers[t.id]; live {
		s.pending = append(s.pending, t.cmd())
	}
	return true
}

// Flush returns the commands queued since the last call, or nil.
func (s *Scheduler) Flush() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Active returns the number of live timers.
func (s *Scheduler) Active() int {
	return len(s.timers)
}
