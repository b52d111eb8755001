package snake

import (
	"fmt"

	"github.com/MjakaMwise/VJSnake-Game/internal/core"
)

// Layout constants for terminal rendering.
const (
	CellWidth = 2 // Screen columns per grid cell, keeps cells roughly square
	hudHeight = 1 // Status line above the board
)

// BoardRect returns the screen rectangle of the board including its border,
// centered horizontally below the HUD.
func BoardRect(screenW int, gridSize int) core.Rect {
	w := gridSize*CellWidth + 2
	h := gridSize + 2
	return core.NewRect((screenW-w)/2, hudHeight, w, h)
}

// RequiredSize returns the smallest screen that fits the board, HUD and
// controls line.
func RequiredSize(gridSize int) (w, h int) {
	board := BoardRect(0, gridSize)
	return board.W, hudHeight + board.H + 1
}

// ScreenToCell maps a screen position to the grid cell under it.
func ScreenToCell(screenW, gridSize, x, y int) (Cell, bool) {
	board := BoardRect(screenW, gridSize)
	inner := core.NewRect(board.X+1, board.Y+1, gridSize*CellWidth, gridSize)
	if !inner.Contains(x, y) {
		return Cell{}, false
	}
	return Cell{X: (x - inner.X) / CellWidth, Y: y - inner.Y}, true
}

// Render draws the game to the screen.
func Render(dst *core.Screen, e *Engine) {
	dst.Clear()
	size := e.settings.GridSize

	reqW, reqH := RequiredSize(size)
	if dst.Width() < reqW || dst.Height() < reqH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", reqW, reqH), core.ColorGray)
		return
	}

	renderHUD(dst, e)

	board := BoardRect(dst.Width(), size)
	dst.DrawBox(board, core.ColorGray)
	for y := range size {
		for x := range size {
			sx, sy := cellOrigin(board, Cell{X: x, Y: y})
			dst.SetColored(sx+1, sy, '·', core.ColorGray)
		}
	}

	if InBounds(e.food, size) {
		sx, sy := cellOrigin(board, e.food)
		dst.SetColored(sx, sy, '(', core.ColorBrightRed)
		dst.SetColored(sx+1, sy, ')', core.ColorBrightRed)
	}

	// Draw tail first so the head wins if segments ever overlap on screen
	for i := len(e.snake) - 1; i >= 0; i-- {
		seg := e.snake[i]
		if !InBounds(seg, size) {
			continue
		}
		sx, sy := cellOrigin(board, seg)
		if i == 0 {
			dst.SetColored(sx, sy, '█', core.ColorBrightGreen)
			dst.SetColored(sx+1, sy, '█', core.ColorBrightGreen)
		} else {
			dst.SetColored(sx, sy, '▓', core.ColorGreen)
			dst.SetColored(sx+1, sy, '▓', core.ColorGreen)
		}
	}

	renderControls(dst, ControlsFor(e.phase), board.Bottom())

	switch e.phase {
	case PhaseIdle:
		renderOverlay(dst, "S N A K E", "Press Enter to start")
	case PhasePaused:
		renderOverlay(dst, "Paused", "Press P to resume")
	case PhaseOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", e.score))
	}
}

func cellOrigin(board core.Rect, c Cell) (int, int) {
	return board.X + 1 + c.X*CellWidth, board.Y + 1 + c.Y
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, e *Engine) {
	dst.DrawTextColored(1, 0, "Snake", core.ColorBrightGreen)
	dst.DrawText(8, 0, fmt.Sprintf("Score: %d  Speed: %d", e.score, e.SpeedLevel()))
}

// renderControls draws the button row; disabled buttons are grayed out.
func renderControls(dst *core.Screen, c Controls, y int) {
	buttons := []struct {
		key string
		btn Button
	}{
		{"Enter", c.Start},
		{"P", c.Pause},
		{"R", c.Restart},
	}

	total := 0
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		labels[i] = fmt.Sprintf("[%s] %s", b.key, b.btn.Label)
		total += len(labels[i])
	}
	total += 2 * (len(labels) - 1)

	x := core.Clamp((dst.Width()-total)/2, 0, dst.Width())
	for i, b := range buttons {
		color := core.ColorGray
		if b.btn.Enabled {
			color = core.ColorBrightWhite
		}
		dst.DrawTextColored(x, y, labels[i], color)
		x += len(labels[i]) + 2
	}
}

// renderOverlay draws a centered boxed message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
