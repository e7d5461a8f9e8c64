// Package thrust adapts the simulation to the terminal game platform: it maps
// actions to intents, logs simulation events and draws frames.
package thrust

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/core"
	"github.com/vovakirdan/tui-thrust/internal/games/thrust/levels"
	"github.com/vovakirdan/tui-thrust/internal/games/thrust/sim"
	"github.com/vovakirdan/tui-thrust/internal/registry"
)

// GameID is the registry key.
const GameID = "thrust"

// messageTicks is how long a HUD message stays up.
const messageTicks = 120

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelsDir stores a custom level directory set via CLI
var levelsDir string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetLevelsDir replaces the built-in campaign with the levels found in dir.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLogger sets the logger used for game events. Nil disables logging.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// ErrNoLevels is returned when a level directory holds no usable level.
var ErrNoLevels = errors.New("no levels found")

// LoadLevels returns the levels to play: the directory set with
// SetLevelsDir if any, the built-in campaign otherwise.
func LoadLevels() ([]levels.Level, error) {
	if levelsDir == "" {
		return levels.Builtin()
	}

	loader := levels.NewLoader(levelsDir)
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, skipped := range loader.Skipped {
		logger.Warn("level skipped", "err", skipped)
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("%s: %w", levelsDir, ErrNoLevels)
	}
	return lvls, nil
}

// LoadConfig loads the tuning file and applies the difficulty preset.
func LoadConfig() config.ThrustConfig {
	cfg, err := config.LoadThrust(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	if difficultyPreset != "" {
		config.ApplyThrustPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game implements registry.Game for thrust.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ThrustConfig
	levels  []levels.Level
	engine  *sim.Engine
	err     error

	paused  bool
	message string
	msgLeft int
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Thrust"
}

// Reset loads config and levels and starts a run at runtime.StartLevel.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()
	g.paused = false
	g.message = ""
	g.msgLeft = 0
	g.engine = nil

	lvls, err := LoadLevels()
	if err != nil {
		g.fail(err)
		return
	}
	g.levels = lvls

	engine, err := sim.NewEngine(g.cfg, levels.Defs(lvls), runtime.Seed)
	if err != nil {
		g.fail(err)
		return
	}
	g.engine = engine
	g.err = nil

	if runtime.StartLevel != 0 {
		engine.Restart(runtime.StartLevel)
	}
	logger.Info("run started", "levels", len(lvls), "seed", runtime.Seed, "start", engine.Run().Level)
	g.levelStarted()
}

func (g *Game) fail(err error) {
	g.err = err
	logger.Error("cannot start run", "err", err)
}

// Err returns the error that prevented the run from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	run := g.engine.Run()

	if in.Has(core.ActionRestart) && run.Over() {
		g.engine.Restart(0)
		g.paused = false
		logger.Info("run restarted")
		g.levelStarted()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !run.Over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.msgLeft > 0 {
		g.msgLeft--
	}

	events := g.engine.Step(sim.Intent{
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
		Thrust:      in.Has(core.ActionThrust),
		Fire:        in.Has(core.ActionFire),
	})
	for _, ev := range events {
		g.handleEvent(ev)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleEvent(ev sim.Event) {
	run := g.engine.Run()

	switch ev.Kind {
	case sim.EventLevelStart:
		g.levelStarted()
	case sim.EventLevelComplete:
		logger.Info("level complete", "level", ev.Level, "tick", ev.Tick, "score", run.Score)
	case sim.EventEnemyKilled:
		logger.Debug("enemy killed", "kind", ev.Detail, "score", run.Score)
	case sim.EventPickup:
		logger.Debug("pickup", "kind", ev.Detail, "fuel", run.Fuel, "ammo", run.Ammo)
		g.say(pickupMessages[ev.Detail])
	case sim.EventButtonPressed:
		logger.Debug("button pressed", "id", ev.ID)
	case sim.EventGateOpened:
		logger.Info("gate opened", "id", ev.ID, "tick", ev.Tick)
		g.say(fmt.Sprintf("Gate %d opened", ev.ID))
	case sim.EventPlayerHit, sim.EventPlayerContact:
		logger.Debug("player damaged", "event", ev.Kind, "fuel", run.Fuel)
	case sim.EventGameOver:
		logger.Info("game over", "score", run.Score, "level", run.Level, "tick", ev.Tick)
	case sim.EventWon:
		logger.Info("run won", "score", run.Score, "tick", ev.Tick)
	}
}

var pickupMessages = map[string]string{
	"fuel":   "Fuel refilled",
	"ammo":   "Ammo collected",
	"score":  "+50",
	"shield": "Shield up",
}

func (g *Game) levelStarted() {
	lvl := g.engine.Level()
	issues := g.engine.Layout().Issues
	logger.Info("level start", "level", g.engine.Run().Level, "id", lvl.ID, "name", lvl.Name)
	for _, issue := range issues {
		logger.Warn("level issue", "level", lvl.ID, "row", issue.Row, "col", issue.Col, "token", issue.Token, "reason", issue.Reason)
	}
	g.say(lvl.Name)
}

func (g *Game) say(msg string) {
	if msg == "" {
		return
	}
	g.message = msg
	g.msgLeft = messageTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{GameOver: true}
	}
	run := g.engine.Run()
	return core.GameState{
		Score:    run.Score,
		GameOver: run.Over(),
		Won:      run.Status == sim.StatusWon,
		Paused:   g.paused,
	}
}

// Snapshot returns the simulation state for the current frame.
func (g *Game) Snapshot() (sim.Snapshot, bool) {
	if g.engine == nil {
		return sim.Snapshot{}, false
	}
	return g.engine.Snapshot(), true
}

// Levels returns the loaded level list.
func (g *Game) Levels() []levels.Level {
	return g.levels
}

// Config returns the tuning in effect.
func (g *Game) Config() config.ThrustConfig {
	return g.cfg
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}
