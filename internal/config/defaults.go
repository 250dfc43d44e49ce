package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the hardcoded variant set. It mirrors
// defaults/match3.yaml and is used when the embedded file cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Variants: []VariantConfig{
			{
				ID:          "hearts",
				Title:       "Heart Collector",
				Description: "Collect 15 red hearts within 20 moves",
				Board:       BoardConfig{Width: 8, Height: 8, Kinds: 4, Gravity: "down"},
				Rules: RulesConfig{
					Moves: 20,
					Goal:  GoalConfig{Type: GoalCollect, Target: 15, Tile: "red"},
				},
				Scoring: ScoringConfig{PointsPerTile: 10},
				Timing:  TimingConfig{CascadeDelayMS: 300},
				Render:  RenderConfig{Glyph: "●", GoalGlyph: "♥"},
				Difficulty: DifficultyConfig{
					Progression: ProgressionConfig{Type: "none"},
				},
			},
			{
				ID:          "classic",
				Title:       "Classic 5x5",
				Description: "Reach 1000 points within 20 moves",
				Board:       BoardConfig{Width: 5, Height: 5, Kinds: 4, Gravity: "down"},
				Rules: RulesConfig{
					Moves:                20,
					InvalidSwapCostsMove: true,
					Goal:                 GoalConfig{Type: GoalScore, Target: 1000},
				},
				Scoring: ScoringConfig{PointsPerTile: 10},
				Timing:  TimingConfig{CascadeDelayMS: 300},
				Render:  RenderConfig{Glyph: "■"},
				Difficulty: DifficultyConfig{
					Progression: ProgressionConfig{Type: "none"},
				},
			},
			{
				ID:          "endless",
				Title:       "Endless",
				Description: "No move limit, new colors appear as the score grows",
				Board:       BoardConfig{Width: 8, Height: 8, Kinds: 4, Gravity: "down"},
				Rules: RulesConfig{
					Goal: GoalConfig{Type: GoalNone},
				},
				Scoring: ScoringConfig{PointsPerTile: 10, ChainBonus: 5},
				Timing:  TimingConfig{CascadeDelayMS: 300},
				Render:  RenderConfig{Glyph: "●"},
				Difficulty: DifficultyConfig{
					Enabled:     true,
					Progression: ProgressionConfig{Type: "score", MaxAt: 5000},
					Scaling:     ScalingConfig{ExtraKinds: 2},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
