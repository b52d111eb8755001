package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MjakaMwise/VJSnake-Game/internal/core"
	"github.com/MjakaMwise/VJSnake-Game/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  Mouse drag       - Swipe to steer
  Enter/Space      - Start / Play again
  P/Esc            - Pause / Resume
  R                - Restart
  ?                - Help
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - The classic 150ms start, 8ms faster per food
  hard   - Fast start, steep speed-up
  fixed  - No speed-up, stays at the configured initial speed

Logs go to --log-file because the terminal belongs to the game.

Examples:
  vjsnake play
  vjsnake play --difficulty easy
  vjsnake play --grid 15
  vjsnake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "vjsnake")
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger.Debug("starting game", "grid", cfg.Grid.Size, "difficulty", cfg.Difficulty, "seed", flagSeed)
	return tui.Run(tui.Options{
		RuntimeConfig: rc,
		Settings:      cfg.ToSettings(),
		CellSize:      cfg.Input.CellSize,
		Logger:        logger,
	})
}
