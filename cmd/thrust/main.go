// thrust is a gravity cave-flyer for the terminal.
//
// Usage:
//
//	thrust play              - Fly the level set
//	thrust levels            - Show the level set and any layout problems
//	thrust config            - Print the default tuning YAML
//	thrust list              - List registered games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--log-file <path>   - Write logs to a file (the game screen owns stdout)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-thrust/internal/games/thrust"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "thrust",
	Short: "Thrust - fly a ship through gravity caves in your terminal",
	Long: `Thrust is a terminal cave-flyer. Rotate, burn fuel against gravity,
shoot chasers and turrets, press buttons to open gates and reach the exit.

Available commands:
  play     - Play the level set
  levels   - Show levels and layout problems
  config   - Print the default configuration
  list     - Show registered games

Examples:
  thrust play
  thrust play --difficulty easy
  thrust play --levels ./my-levels --select
  thrust levels
  thrust config > ~/.thrust/thrust.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the process logger. Without --log-file, play discards
// logs since stderr shares the terminal with the game screen.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	out := fallback
	var closer io.Closer
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "thrust",
		Level:           level,
	})
	return logger, closer, nil
}
