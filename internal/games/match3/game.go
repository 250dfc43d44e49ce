// Package match3 implements the match-three variants on top of the board
// engine: selection and swapping, paced cascade resolution, scoring and the
// win/lose rules of each variant.
package match3

import (
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	for _, v := range config.DefaultMatch3Config().Variants {
		register(v)
	}
}

func register(v config.VariantConfig) {
	id := v.ID
	registry.Register(registry.GameInfo{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
	}, func() registry.Game {
		return New(id)
	})
}

// RegisterConfigured loads the configuration and registers variants that
// are defined there but not built in. Built-in ids keep their registration;
// their settings are re-read on every Reset.
func RegisterConfigured() error {
	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		return err
	}
	for _, v := range cfg.Variants {
		if !registry.Exists(v.ID) {
			register(v)
		}
	}
	return nil
}

// Phase is the turn phase of the game.
type Phase int

const (
	// PhaseIdle accepts input.
	PhaseIdle Phase = iota
	// PhaseResolving shows matched cells before each clear; input is ignored.
	PhaseResolving
)

// Game implements one match-three variant.
type Game struct {
	id       string
	override *config.VariantConfig
	preset   *config.DifficultyPreset
	variant  config.VariantConfig
	cfgErr   error

	rng  *rand.Rand
	tick uint64

	grid       *board.Grid
	gen        *board.Generator
	resolver   *board.Resolver
	difficulty *config.DifficultyManager
	goalTile   board.Tile
	baseKinds  int

	cursor       board.Coord
	selected     board.Coord
	hasSelection bool
	hint         board.Move
	hintTicks    int

	score     int
	movesLeft int
	collected int
	swaps     int
	shuffles  int

	phase      Phase
	phaseTicks int
	delayTicks int
	runs       []board.Run
	chain      int
	bestChain  int

	message      string
	messageTicks int

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a game for the variant id. Settings are loaded on Reset.
func New(id string) *Game {
	return &Game{id: id}
}

// NewWithVariant creates a game with fixed settings, bypassing config files.
func NewWithVariant(v config.VariantConfig) *Game {
	return &Game{id: v.ID, override: &v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant.Title != "" {
		return g.variant.Title
	}
	if info, ok := registry.Lookup(g.id); ok {
		return info.Title
	}
	return g.id
}

// SetPreset overrides the package difficulty preset for this game only.
// It takes effect on the next Reset.
func (g *Game) SetPreset(preset string) {
	p := config.ParsePreset(preset)
	g.preset = &p
}

// ConfigError returns the error from the last config load, if Reset had to
// fall back to built-in settings.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Variant returns the settings in effect, after the difficulty preset.
func (g *Game) Variant() config.VariantConfig {
	return g.variant
}

// loadVariant resolves the settings for this game's id.
func (g *Game) loadVariant() config.VariantConfig {
	if g.override != nil {
		return *g.override
	}

	g.cfgErr = nil
	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		g.cfgErr = err
		cfg = config.DefaultMatch3Config()
	}

	if v, ok := cfg.Variant(g.id); ok {
		return v
	}
	if v, ok := config.DefaultMatch3Config().Variant(g.id); ok {
		return v
	}
	return config.DefaultMatch3Config().Variants[0]
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	v := g.loadVariant()
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	config.ApplyMatch3Preset(&v, preset)
	g.variant = v

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.difficulty = config.NewDifficultyManager(v.Difficulty)
	g.baseKinds = v.Board.Kinds
	g.gen = board.NewGenerator(g.difficulty.Kinds(g.baseKinds, 0, 0), g.rng)

	gravity, err := board.ParseGravity(v.Board.Gravity)
	if err != nil {
		gravity = board.GravityDown
	}
	g.resolver = &board.Resolver{Gravity: gravity, Gen: g.gen, MaxChain: board.DefaultMaxChain}

	g.goalTile = board.Empty
	if v.Rules.Goal.Type == config.GoalCollect {
		g.goalTile, _ = board.ParseTile(v.Rules.Goal.Tile)
	}

	g.grid = g.gen.Fill(v.Board.Width, v.Board.Height)
	g.cursor = board.C(v.Board.Width/2, v.Board.Height/2)
	g.hasSelection = false
	g.hintTicks = 0

	g.score = 0
	g.movesLeft = v.Rules.Moves
	g.collected = 0
	g.swaps = 0
	g.shuffles = 0

	g.phase = PhaseIdle
	g.phaseTicks = 0
	g.delayTicks = g.tickRate * v.Timing.CascadeDelayMS / 1000
	g.runs = nil
	g.chain = 0
	g.bestChain = 0

	g.message = ""
	g.messageTicks = 0

	g.gameOver = false
	g.won = false
	g.paused = false

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	l := g.layout()
	minW := l.boardW + 2
	minH := l.boardY + l.boardH + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts the game to a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ageTimers()

	// Restart is performed by the platform
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseResolving {
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.applyCascade()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return core.StepResult{State: g.State()}
}

func (g *Game) ageTimers() {
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
	if g.hintTicks > 0 {
		g.hintTicks--
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}

// Grid returns a copy of the current board.
func (g *Game) Grid() *board.Grid {
	return g.grid.Clone()
}
