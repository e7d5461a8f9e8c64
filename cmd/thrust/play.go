package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/core"
	"github.com/vovakirdan/tui-thrust/internal/games/thrust"
	"github.com/vovakirdan/tui-thrust/internal/platform/tui"
	"github.com/vovakirdan/tui-thrust/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelsDir  string
	flagSelect     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level set",
	Long: `Start a run at the first level, or at the chosen one.

Controls:
  A/Left, D/Right  - Rotate
  W/Up             - Thrust
  Space/F          - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More fuel, cheaper collisions, slower turrets
  normal - Config as written
  hard   - Less fuel, faster turrets and chasers
  fixed  - Same as normal

Examples:
  thrust play
  thrust play --level 3
  thrust play --difficulty hard
  thrust play --levels ./my-levels --select
  thrust play --config ./my-thrust.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level number to start at")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in set)")
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the start level interactively")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagDifficulty != "" && config.ParseDifficultyPreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	thrust.SetConfigPath(flagConfig)
	thrust.SetDifficultyPreset(flagDifficulty)
	thrust.SetLevelsDir(flagLevelsDir)
	thrust.SetLogger(logger)

	// Get terminal size early for the level selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		StartLevel: max(flagLevel-1, 0),
	}

	if flagSelect {
		lvls, loadErr := thrust.LoadLevels()
		if loadErr != nil {
			return loadErr
		}
		selection, selErr := tui.RunLevelSelector(lvls, cfg)
		if selErr != nil {
			return selErr
		}
		// User pressed back or quit
		if selection == nil {
			return nil
		}
		cfg.StartLevel = selection.Level
	}

	game, err := registry.Create(thrust.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	tuning := thrust.LoadConfig()
	opts := tui.Options{HoldTicks: tuning.Input.HoldTicks, Logger: logger}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if g, ok := game.(*thrust.Game); ok {
		if gameErr := g.Err(); gameErr != nil {
			return gameErr
		}
		state := g.State()
		fmt.Printf("Score: %d\n", state.Score)
	}
	return nil
}
