package snake

// Button is the presentation state of one control.
type Button struct {
	Label   string
	Enabled bool
}

// Controls describes the Start, Pause and Restart buttons for a phase.
type Controls struct {
	Start   Button
	Pause   Button
	Restart Button
}

// ControlsFor returns which controls are usable in the given phase and how
// they are labelled.
func ControlsFor(p Phase) Controls {
	switch p {
	case PhaseRunning:
		return Controls{
			Start:   Button{Label: "Start Game"},
			Pause:   Button{Label: "Pause", Enabled: true},
			Restart: Button{Label: "Restart", Enabled: true},
		}
	case PhasePaused:
		return Controls{
			Start:   Button{Label: "Start Game"},
			Pause:   Button{Label: "Resume", Enabled: true},
			Restart: Button{Label: "Restart", Enabled: true},
		}
	case PhaseOver:
		return Controls{
			Start:   Button{Label: "Play Again", Enabled: true},
			Pause:   Button{Label: "Pause"},
			Restart: Button{Label: "Restart", Enabled: true},
		}
	default:
		return Controls{
			Start:   Button{Label: "Start Game", Enabled: true},
			Pause:   Button{Label: "Pause"},
			Restart: Button{Label: "Restart"},
		}
	}
}
