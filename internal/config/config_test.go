package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultMatch3Config(), cfg)
}

func TestDefaultVariants(t *testing.T) {
	cfg := DefaultMatch3Config()
	require.NoError(t, cfg.Validate())

	hearts, ok := cfg.Variant("hearts")
	require.True(t, ok)
	assert.Equal(t, 8, hearts.Board.Width)
	assert.Equal(t, GoalCollect, hearts.Rules.Goal.Type)
	assert.Equal(t, 15, hearts.Rules.Goal.Target)

	classic, ok := cfg.Variant("classic")
	require.True(t, ok)
	assert.Equal(t, 5, classic.Board.Width)
	assert.True(t, classic.Rules.InvalidSwapCostsMove)
	assert.Equal(t, 1000, classic.Rules.Goal.Target)

	endless, ok := cfg.Variant("endless")
	require.True(t, ok)
	assert.Zero(t, endless.Rules.Moves)

	_, ok = cfg.Variant("missing")
	assert.False(t, ok)
}

func TestVariantValidate(t *testing.T) {
	base := func() VariantConfig {
		v, _ := DefaultMatch3Config().Variant("hearts")
		return v
	}

	tests := []struct {
		name   string
		modify func(*VariantConfig)
		ok     bool
	}{
		{"defaults", func(*VariantConfig) {}, true},
		{"no id", func(v *VariantConfig) { v.ID = "" }, false},
		{"too narrow", func(v *VariantConfig) { v.Board.Width = 2 }, false},
		{"too few kinds", func(v *VariantConfig) { v.Board.Kinds = 2 }, false},
		{"too many kinds", func(v *VariantConfig) { v.Board.Kinds = 7 }, false},
		{"gravity up", func(v *VariantConfig) { v.Board.Gravity = "up" }, true},
		{"bad gravity", func(v *VariantConfig) { v.Board.Gravity = "left" }, false},
		{"negative moves", func(v *VariantConfig) { v.Rules.Moves = -1 }, false},
		{"unknown goal", func(v *VariantConfig) { v.Rules.Goal.Type = "survive" }, false},
		{"collect without target", func(v *VariantConfig) { v.Rules.Goal.Target = 0 }, false},
		{"collect unknown tile", func(v *VariantConfig) { v.Rules.Goal.Tile = "teal" }, false},
		{"collect tile not in play", func(v *VariantConfig) { v.Rules.Goal.Tile = "orange" }, false},
		{"score goal", func(v *VariantConfig) { v.Rules.Goal = GoalConfig{Type: GoalScore, Target: 500} }, true},
		{"no goal", func(v *VariantConfig) { v.Rules.Goal = GoalConfig{Type: GoalNone} }, true},
		{"negative delay", func(v *VariantConfig) { v.Timing.CascadeDelayMS = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := base()
			tc.modify(&v)
			err := v.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Variants = append(cfg.Variants, cfg.Variants[0])
	assert.Error(t, cfg.Validate())

	assert.Error(t, Match3Config{}.Validate())
}

const customYAML = `
variants:
  - id: tiny
    title: Tiny
    board: {width: 4, height: 4, kinds: 3, gravity: up}
    rules:
      moves: 5
      goal: {type: score, target: 100}
    scoring: {points_per_tile: 20}
    timing: {cascade_delay_ms: 0}
`

func TestLoadMatch3CustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customYAML), 0o644))

	cfg, err := LoadMatch3(path)
	require.NoError(t, err)
	require.Len(t, cfg.Variants, 1)

	v := cfg.Variants[0]
	assert.Equal(t, "tiny", v.ID)
	assert.Equal(t, "up", v.Board.Gravity)
	assert.Equal(t, 20, v.Scoring.PointsPerTile)
}

func TestLoadMatch3CustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMatch3(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("variants: [:"), 0o644))
	_, err = LoadMatch3(broken)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("variants:\n  - id: x\n    board: {width: 1, height: 1, kinds: 4}\n"), 0o644))
	_, err = LoadMatch3(invalid)
	assert.Error(t, err)
}

func TestLoadMatch3UserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".match3", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(customYAML), 0o644))

	cfg, err := LoadMatch3("")
	require.NoError(t, err)
	_, ok := cfg.Variant("tiny")
	assert.True(t, ok)
}

func TestLoadMatch3FallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// A broken user file is skipped rather than reported
	dir := filepath.Join(home, ".match3", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not: [valid"), 0o644))

	cfg, err := LoadMatch3("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMatch3Config(), cfg)
}

func TestApplyMatch3Preset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		variant   string
		wantMoves int
		wantKinds int
		wantLevel float64
	}{
		{"", "hearts", 20, 4, 0.0},
		{DifficultyEasy, "hearts", 25, 4, 0.0},
		{DifficultyNormal, "hearts", 20, 4, 0.3},
		{DifficultyHard, "hearts", 15, 5, 0.7},
		{DifficultyFixed, "classic", 20, 4, 0.0},
		{DifficultyEasy, "endless", 0, 4, 0.0},
		{DifficultyHard, "endless", 0, 5, 0.7},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset)+"/"+tc.variant, func(t *testing.T) {
			v, ok := DefaultMatch3Config().Variant(tc.variant)
			require.True(t, ok)

			ApplyMatch3Preset(&v, tc.preset)
			assert.Equal(t, tc.wantMoves, v.Rules.Moves)
			assert.Equal(t, tc.wantKinds, v.Board.Kinds)
			assert.InDelta(t, tc.wantLevel, v.Difficulty.InitialLevel, 1e-9)
			if tc.preset == DifficultyFixed {
				assert.False(t, v.Difficulty.Enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("nightmare"))
	assert.True(t, IsFixedPreset(ParsePreset("fixed")))
}
