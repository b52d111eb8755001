package main

import (
	"github.com/spf13/cobra"

	"github.com/MjakaMwise/VJSnake-Game/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search order and flags are applied.

Search order:
  --config path -> ~/.vjsnake/configs/snake.yaml -> ./configs/snake.yaml -> built-in defaults

Examples:
  vjsnake config
  vjsnake config --difficulty hard --grid 30
  vjsnake config --defaults > ~/.vjsnake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented default config file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
