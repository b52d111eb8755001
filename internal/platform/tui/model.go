package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/MjakaMwise/VJSnake-Game/internal/core"
	"github.com/MjakaMwise/VJSnake-Game/internal/games/snake"
)

// DefaultCellSize is the number of gesture units per terminal row.
// Mouse drags are scaled by it so swipe thresholds keep pixel-like units.
const DefaultCellSize = 20

// Options configures a game model.
type Options struct {
	core.RuntimeConfig
	Settings snake.Settings
	CellSize int            // Gesture units per cell; 0 means DefaultCellSize
	Logger   *log.Logger    // Optional
	Observer GameObserver   // Optional; receives game outcomes
	Listener snake.Listener // Optional; receives engine events after the HUD
}

// hud tracks values reported by engine events.
type hud struct {
	engine   *snake.Engine
	logger   *log.Logger
	observer GameObserver
	score    int
	level    int
	dirty    bool // Window title needs refreshing
}

func (h *hud) OnFrame([]snake.Cell, snake.Cell) {}

func (h *hud) OnScoreChanged(score, level int) {
	h.score, h.level = score, level
	h.dirty = true
}

func (h *hud) OnPhaseChanged(p snake.Phase) {
	h.dirty = true
}

func (h *hud) OnGameOver(finalScore int) {
	reason := h.engine.Reason()
	h.logger.Info("final score", "score", finalScore, "reason", reason, "length", len(h.engine.Snake()))
	if h.observer != nil {
		h.observer.GameOver(reason, finalScore)
	}
}

// gameStarted reports a fresh game after Start or Restart reset the engine.
func (h *hud) gameStarted() {
	h.logger.Info("game started", "food", h.engine.Food())
	if h.observer != nil {
		h.observer.GameStarted()
	}
}

func (h *hud) title() string {
	switch h.engine.Phase() {
	case snake.PhaseRunning:
		return fmt.Sprintf("Snake · Score %d · Speed %d", h.score, h.level)
	case snake.PhasePaused:
		return fmt.Sprintf("Snake · Paused · Score %d", h.score)
	case snake.PhaseOver:
		return fmt.Sprintf("Snake · Game Over · Score %d", h.score)
	default:
		return "Snake"
	}
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	engine   *snake.Engine
	sched    *Scheduler
	hud      *hud
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	cellSize int
	drag     *snake.Point // Gesture start while the left button is held
	showHelp bool
	quitting bool
}

// NewModel creates a model with an Idle engine.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultCellSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := NewScheduler()
	h := &hud{logger: logger, observer: opts.Observer}
	var listener snake.Listener = h
	if opts.Listener != nil {
		listener = snake.MultiListener(h, opts.Listener)
	}
	engine, err := snake.NewEngine(snake.EngineConfig{
		Settings:  opts.Settings,
		Scheduler: sched,
		Listener:  listener,
		Logger:    logger,
		Seed:      opts.Seed,
	})
	if err != nil {
		return Model{}, err
	}
	h.engine = engine
	h.level = engine.SpeedLevel()

	hm := help.New()
	hm.ShowAll = true

	return Model{
		engine:   engine,
		sched:    sched,
		hud:      h,
		screen:   core.NewScreen(opts.ScreenW, opts.ScreenH),
		keys:     DefaultKeyMap(),
		help:     hm,
		logger:   logger,
		cellSize: opts.CellSize,
	}, nil
}

// Engine returns the engine driven by the model.
func (m Model) Engine() *snake.Engine {
	return m.engine
}

// Init sets the window title. The game waits in Idle for a start key.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.hud.title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width

	case TickMsg:
		m.sched.Handle(msg)
	}

	return m, tea.Batch(cmd, m.sched.Flush(), m.titleCmd())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if m.showHelp {
		return m.handleHelpKey(action)
	}

	if d, ok := directionFor(action); ok {
		m.engine.RequestDirection(d)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		if p := m.engine.Phase(); p == snake.PhaseIdle || p == snake.PhaseOver {
			m.engine.Start()
			m.hud.gameStarted()
		}
	case core.ActionPause:
		m.engine.Pause()
	case core.ActionRestart:
		if m.engine.Phase() != snake.PhaseIdle {
			m.engine.Restart()
			m.hud.gameStarted()
		}
	case core.ActionHelp:
		m.showHelp = true
		if m.engine.Phase() == snake.PhaseRunning {
			m.engine.Pause()
		}
	case core.ActionScreenshot:
		m.saveScreenshot()
	}
	return m, nil
}

// handleHelpKey handles keys while the help overlay covers the board.
// Help and Pause close the overlay and leave the game paused.
func (m Model) handleHelpKey(action core.Action) (Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp, core.ActionPause:
		m.showHelp = false
	}
	return m, nil
}

func directionFor(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.DirUp, true
	case core.ActionDown:
		return snake.DirDown, true
	case core.ActionLeft:
		return snake.DirLeft, true
	case core.ActionRight:
		return snake.DirRight, true
	}
	return snake.DirRight, false
}

// handleMouse turns a left-button drag that starts on the board into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.showHelp {
		return m
	}
	switch msg.Action {
	case tea.MouseActionPress:
		size := m.engine.Settings().GridSize
		if _, onBoard := snake.ScreenToCell(m.screen.Width(), size, msg.X, msg.Y); !onBoard {
			return m
		}
		if msg.Button == tea.MouseButtonLeft {
			p := m.gesturePoint(msg.X, msg.Y)
			m.drag = &p
		}
	case tea.MouseActionRelease:
		if m.drag != nil {
			m.engine.RequestSwipe(*m.drag, m.gesturePoint(msg.X, msg.Y))
			m.drag = nil
		}
	}
	return m
}

// gesturePoint scales a terminal position to gesture units. A grid cell is
// snake.CellWidth columns wide and one row tall.
func (m Model) gesturePoint(x, y int) snake.Point {
	return snake.Point{
		X: x * m.cellSize / snake.CellWidth,
		Y: y * m.cellSize,
	}
}

func (m Model) titleCmd() tea.Cmd {
	if !m.hud.dirty {
		return nil
	}
	m.hud.dirty = false
	return tea.SetWindowTitle(m.hud.title())
}

// saveScreenshot writes the current screen as plain text under
// ~/.vjsnake/screenshots.
func (m Model) saveScreenshot() {
	snake.Render(m.screen, m.engine)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".vjsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center,
			m.help.View(m.keys))
	}

	snake.Render(m.screen, m.engine)
	return RenderScreen(m.screen)
}

// Run starts a local Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drags become swipes
	)

	_, err = p.Run()
	return err
}
