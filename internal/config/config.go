// Package config provides YAML-based variant configuration loading and
// difficulty management for the match-three games.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// Match3Config holds every playable rule set.
type Match3Config struct {
	Variants []VariantConfig `yaml:"variants"`
}

// VariantConfig contains all configuration for one match-three variant.
type VariantConfig struct {
	ID          string           `yaml:"id"`
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Board       BoardConfig      `yaml:"board"`
	Rules       RulesConfig      `yaml:"rules"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Timing      TimingConfig     `yaml:"timing"`
	Render      RenderConfig     `yaml:"render"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines grid geometry.
type BoardConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Kinds   int    `yaml:"kinds"`   // distinct tile kinds, 3..6
	Gravity string `yaml:"gravity"` // "down" or "up"
}

// RulesConfig defines the move budget and the win condition.
type RulesConfig struct {
	Moves                int        `yaml:"moves"` // 0 = unlimited
	InvalidSwapCostsMove bool       `yaml:"invalid_swap_costs_move"`
	Goal                 GoalConfig `yaml:"goal"`
}

// Goal types.
const (
	GoalScore   = "score"
	GoalCollect = "collect"
	GoalNone    = "none"
)

// GoalConfig describes what ends the game with a win.
type GoalConfig struct {
	Type   string `yaml:"type"`   // "score", "collect", or "none"
	Target int    `yaml:"target"` // points or tiles
	Tile   string `yaml:"tile"`   // kind name for "collect"
}

// ScoringConfig defines points awarded per cleared tile.
type ScoringConfig struct {
	PointsPerTile int `yaml:"points_per_tile"`
	ChainBonus    int `yaml:"chain_bonus"` // extra points per tile for every chain step past the first
}

// TimingConfig controls cascade pacing.
type TimingConfig struct {
	CascadeDelayMS int `yaml:"cascade_delay_ms"`
}

// RenderConfig picks the glyphs used to draw tiles.
type RenderConfig struct {
	Glyph     string `yaml:"glyph"`      // default tile glyph
	GoalGlyph string `yaml:"goal_glyph"` // glyph for the collect kind; empty uses Glyph
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraKinds int `yaml:"extra_kinds"` // kinds added at max difficulty
}

// Variant returns the configuration with the given id.
func (c Match3Config) Variant(id string) (VariantConfig, bool) {
	for _, v := range c.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return VariantConfig{}, false
}

// Validate checks every variant and rejects duplicate ids.
func (c Match3Config) Validate() error {
	if len(c.Variants) == 0 {
		return fmt.Errorf("config: no variants defined")
	}
	seen := make(map[string]bool)
	for _, v := range c.Variants {
		if seen[v.ID] {
			return fmt.Errorf("config: duplicate variant %q", v.ID)
		}
		seen[v.ID] = true
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single variant for playable values.
func (v VariantConfig) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("config: variant without id")
	}
	if v.Board.Width < 3 || v.Board.Height < 3 {
		return fmt.Errorf("config: %s: board must be at least 3x3, got %dx%d", v.ID, v.Board.Width, v.Board.Height)
	}
	if v.Board.Kinds < 3 || v.Board.Kinds > board.MaxKinds {
		return fmt.Errorf("config: %s: kinds must be in [3, %d], got %d", v.ID, board.MaxKinds, v.Board.Kinds)
	}
	if _, err := board.ParseGravity(v.Board.Gravity); err != nil {
		return fmt.Errorf("config: %s: %w", v.ID, err)
	}
	if v.Rules.Moves < 0 {
		return fmt.Errorf("config: %s: moves must not be negative", v.ID)
	}
	if v.Scoring.PointsPerTile < 0 || v.Scoring.ChainBonus < 0 {
		return fmt.Errorf("config: %s: scoring values must not be negative", v.ID)
	}
	if v.Timing.CascadeDelayMS < 0 {
		return fmt.Errorf("config: %s: cascade_delay_ms must not be negative", v.ID)
	}

	switch v.Rules.Goal.Type {
	case GoalNone, "":
	case GoalScore:
		if v.Rules.Goal.Target <= 0 {
			return fmt.Errorf("config: %s: score goal needs a positive target", v.ID)
		}
	case GoalCollect:
		if v.Rules.Goal.Target <= 0 {
			return fmt.Errorf("config: %s: collect goal needs a positive target", v.ID)
		}
		tile, ok := board.ParseTile(v.Rules.Goal.Tile)
		if !ok {
			return fmt.Errorf("config: %s: unknown tile %q", v.ID, v.Rules.Goal.Tile)
		}
		if int(tile) > v.Board.Kinds {
			return fmt.Errorf("config: %s: tile %q is not among the %d kinds in play", v.ID, v.Rules.Goal.Tile, v.Board.Kinds)
		}
	default:
		return fmt.Errorf("config: %s: unknown goal type %q", v.ID, v.Rules.Goal.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
