package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{ExtraKinds: 2},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.0},
		{500, 0.5},
		{1000, 1.0},
		{5000, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got != tc.want {
			t.Errorf("Level(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestDifficultyKinds(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{ExtraKinds: 2},
	})

	tests := []struct {
		base, score, want int
	}{
		{4, 0, 4},
		{4, 499, 4},
		{4, 500, 5},
		{4, 1000, 6},
		{5, 1000, 6}, // capped at the number of named kinds
	}

	for _, tc := range tests {
		if got := dm.Kinds(tc.base, tc.score, 0); got != tc.want {
			t.Errorf("Kinds(%d, %d) = %d, want %d", tc.base, tc.score, got, tc.want)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{ExtraKinds: 2},
	})

	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(10000, 0); got != 0.5 {
		t.Errorf("disabled Level = %v, want initial 0.5", got)
	}
	if got := dm.Kinds(4, 10000, 0); got != 4 {
		t.Errorf("disabled Kinds = %d, want 4", got)
	}

	dm.SetEnabled(true)
	if got := dm.Kinds(4, 100, 0); got != 6 {
		t.Errorf("enabled Kinds = %d, want 6", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	dm.SetInitialLevel(0.5)

	if got := dm.Level(0, 100); got != 1.0 {
		t.Errorf("Level at max ticks = %v, want 1.0", got)
	}
	if got := dm.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, want 0.5", got)
	}
}
