package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MjakaMwise/VJSnake-Game/internal/clock"
	"github.com/MjakaMwise/VJSnake-Game/internal/games/snake"
)

var (
	flagMoves    string
	flagScript   string
	flagMaxTicks int
	flagTrace    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print the final state",
	Long: `Run a game without a terminal UI against a manual clock.

Moves are requested one per tick, in order; "-" or an empty entry skips a
tick. After the script runs out the snake keeps its direction until the
game ends or --max-ticks is reached. The result is deterministic for a given
--seed (0 is a valid seed here).

Script files are YAML:

  seed: 42          # optional, overrides --seed
  moves: [down, down, "-", left]

Examples:
  vjsnake sim --seed 42 --moves "down,down,left"
  vjsnake sim --script bug-report.yaml --trace --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", `Comma-separated directions, one per tick (e.g. "down,-,left")`)
	simCmd.Flags().StringVar(&flagScript, "script", "", "YAML script file with seed and moves")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 1000, "Stop after this many ticks")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log the state after every tick at debug level")
}

// simScript is the YAML form of a simulation.
type simScript struct {
	Seed  *int64   `yaml:"seed"`
	Moves []string `yaml:"moves"`
}

// simMove is one tick of input; skip means no request that tick.
type simMove struct {
	dir  snake.Direction
	skip bool
}

func parseMoves(items []string) ([]simMove, error) {
	moves := make([]simMove, 0, len(items))
	for i, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || item == "-" {
			moves = append(moves, simMove{skip: true})
			continue
		}
		d, err := snake.ParseDirection(item)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, simMove{dir: d})
	}
	return moves, nil
}

func loadScript(path string) (simScript, error) {
	var script simScript
	data, err := os.ReadFile(path)
	if err != nil {
		return script, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &script); err != nil {
		return script, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return script, nil
}

// simulate plays a full game on a manual clock and returns the final snapshot.
func simulate(settings snake.Settings, seed int64, moves []simMove, maxTicks int, logger *log.Logger) (snake.Snapshot, error) {
	m := clock.NewManual()
	e, err := snake.NewEngine(snake.EngineConfig{
		Settings:  settings,
		Scheduler: m,
		Listener: snake.ListenerFuncs{
			ScoreChanged: func(score, level int) {
				logger.Debug("score", "score", score, "level", level)
			},
			GameOver: func(score int) {
				logger.Info("final score", "score", score)
			},
		},
		Logger: logger,
		Seed:   seed,
	})
	if err != nil {
		return snake.Snapshot{}, err
	}

	e.Start()
	for i := 0; i < maxTicks && e.Phase() == snake.PhaseRunning; i++ {
		if i < len(moves) && !moves[i].skip {
			e.RequestDirection(moves[i].dir)
		}
		m.Step()
		if flagTrace {
			logger.Debug("tick", "state", strings.TrimSpace(e.DebugState()))
		}
	}
	return e.Snapshot(), nil
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "vjsnake-sim")
	if err != nil {
		return err
	}

	seed := flagSeed
	items := strings.Split(flagMoves, ",")
	if flagMoves == "" {
		items = nil
	}
	if flagScript != "" {
		script, err := loadScript(flagScript)
		if err != nil {
			return err
		}
		items = script.Moves
		if script.Seed != nil {
			seed = *script.Seed
		}
	}

	moves, err := parseMoves(items)
	if err != nil {
		return err
	}

	snap, err := simulate(cfg.ToSettings(), seed, moves, flagMaxTicks, logger)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
