package snake

// Phase is the coarse state of a game session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameOverReason records why a game ended.
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonWall
	ReasonSelf
	ReasonBoardFull // Snake filled the grid, no cell left for food
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	case ReasonBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Listener receives engine events. Callbacks run synchronously on the
// goroutine that drives the engine.
type Listener interface {
	// OnFrame fires after every tick and on start, with a copy of the body.
	OnFrame(snake []Cell, food Cell)
	OnScoreChanged(score, speedLevel int)
	OnPhaseChanged(phase Phase)
	OnGameOver(finalScore int)
}

// ListenerFuncs adapts optional functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Frame        func(snake []Cell, food Cell)
	ScoreChanged func(score, speedLevel int)
	PhaseChanged func(phase Phase)
	GameOver     func(finalScore int)
}

func (f ListenerFuncs) OnFrame(snake []Cell, food Cell) {
	if f.Frame != nil {
		f.Frame(snake, food)
	}
}

func (f ListenerFuncs) OnScoreChanged(score, speedLevel int) {
	if f.ScoreChanged != nil {
		f.ScoreChanged(score, speedLevel)
	}
}

func (f ListenerFuncs) OnPhaseChanged(phase Phase) {
	if f.PhaseChanged != nil {
		f.PhaseChanged(phase)
	}
}

func (f ListenerFuncs) OnGameOver(finalScore int) {
	if f.GameOver != nil {
		f.GameOver(finalScore)
	}
}

// NopListener ignores all events.
type NopListener struct{}

func (NopListener) OnFrame([]Cell, Cell)    {}
func (NopListener) OnScoreChanged(int, int) {}
func (NopListener) OnPhaseChanged(Phase)    {}
func (NopListener) OnGameOver(int)          {}

// multiListener fans events out in order.
type multiListener []Listener

// MultiListener returns a Listener that forwards every event to each of ls.
func MultiListener(ls ...Listener) Listener {
	return multiListener(ls)
}

func (m multiListener) OnFrame(snake []Cell, food Cell) {
	for _, l := range m {
		l.OnFrame(snake, food)
	}
}

func (m multiListener) OnScoreChanged(score, speedLevel int) {
	for _, l := range m {
		l.OnScoreChanged(score, speedLevel)
	}
}

func (m multiListener) OnPhaseChanged(phase Phase) {
	for _, l := range m {
		l.OnPhaseChanged(phase)
	}
}

func (m multiListener) OnGameOver(finalScore int) {
	for _, l := range m {
		l.OnGameOver(finalScore)
	}
}
