// vjsnake is a grid snake game for the terminal.
//
// Usage:
//
//	vjsnake play            - Play in the current terminal
//	vjsnake serve           - Start SSH server for remote play
//	vjsnake sim             - Run a headless game from a move script
//	vjsnake config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible food placement
//	--config <path>       - Path to a snake.yaml config file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--grid <size>         - Override the grid size
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MjakaMwise/VJSnake-Game/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagGrid       int
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vjsnake",
	Short: "VJSnake - the classic snake game in your terminal",
	Long: `VJSnake is a single-player snake game for the terminal.

Steer the snake to the food, avoid the walls and your own tail. Every food
makes the snake longer and the game faster.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless game from a move script
  config   - Print the effective configuration

Examples:
  vjsnake play
  vjsnake play --difficulty hard
  vjsnake serve --ssh :2222 --metrics :9100
  vjsnake sim --seed 42 --moves "down,down,left"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, except for sim)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagGrid, "grid", 0, "Grid size override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from file and global flags.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	return applyFlags(cfg, flagDifficulty, flagGrid)
}

// applyFlags layers CLI overrides on a loaded configuration. A grid
// override that leaves the origin outside the board recenters it.
func applyFlags(cfg config.SnakeConfig, difficulty string, grid int) (config.SnakeConfig, error) {
	if difficulty != "" {
		preset, err := config.ParseDifficulty(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	if grid > 0 {
		cfg.Grid.Size = grid
		o := cfg.Grid.Origin
		if o.X >= grid || o.Y >= grid {
			cfg.Grid.Origin = config.OriginConfig{X: grid / 2, Y: grid / 2}
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
