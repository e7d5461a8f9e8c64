package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/games/thrust"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Prints the default tuning YAML. Save it to ~/.thrust/configs/thrust.yaml
or pass it with --config to tweak physics and the economy.

With --effective, prints the configuration a run would use after
--config and --difficulty are applied.

Examples:
  thrust config > my-thrust.yaml
  thrust config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.GetDefaultYAML(thrust.GameID))
		return err
	}

	if flagDifficulty != "" && config.ParseDifficultyPreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	thrust.SetLogger(logger)
	thrust.SetConfigPath(flagConfig)
	thrust.SetDifficultyPreset(flagDifficulty)

	out, err := yaml.Marshal(thrust.LoadConfig())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
