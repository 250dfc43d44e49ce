package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// fakeGame ends as soon as it sees a Select action.
type fakeGame struct {
	resets  int
	resized [2]int
	preset  string
	clicks  []core.Click
	state   core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.clicks = append(g.clicks, in.Clicks...)
	if in.Has(core.ActionSelect) {
		g.state = core.GameState{Score: 120, GameOver: true, Won: true}
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen)       { dst.DrawText(0, 0, "fake board") }
func (g *fakeGame) State() core.GameState         { return g.state }
func (g *fakeGame) Resize(w, h int)               { g.resized = [2]int{w, h} }
func (g *fakeGame) SetPreset(p string)            { g.preset = p }
func (g *fakeGame) Stats() (swaps, bestChain int) { return 4, 2 }

func newTestModel(t *testing.T) (GameModel, *fakeGame, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := &fakeGame{}
	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, "alice")
	m.Init()
	return m, game, store
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelSavesResultOnce(t *testing.T) {
	m, _, store := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if !m.State().GameOver {
		t.Fatal("game should be over after select")
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d results, want 1", len(scores))
	}
	got := scores[0]
	if got.Player != "alice" || got.Score != 120 || !got.Won || got.Swaps != 4 || got.BestChain != 2 {
		t.Errorf("saved %+v", got)
	}
}

func TestGameModelRestart(t *testing.T) {
	m, game, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = update(t, m, TickMsg{})

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.State().GameOver {
		t.Error("restart should clear game over")
	}
}

func TestGameModelMouseAndResize(t *testing.T) {
	m, game, _ := newTestModel(t)

	m = update(t, m, tea.MouseMsg{X: 3, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	if len(game.clicks) != 1 || game.clicks[0] != (core.Click{X: 3, Y: 5}) {
		t.Errorf("clicks = %v", game.clicks)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	if game.resized != [2]int{90, 30} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 1 {
		t.Error("a resizable game must not be reset on resize")
	}
	if !strings.Contains(m.View(), "fake board") {
		t.Error("view should render the game")
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	back := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("b should go back to the menu")
	}

	quit := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestDifficultyModel(t *testing.T) {
	m := NewDifficultyModel("Heart Collector", config.DifficultyHard, 80, 24)
	if DifficultyOptions[m.cursor].Preset != config.DifficultyHard {
		t.Fatalf("cursor should start on the initial preset")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	dm := next.(DifficultyModel)

	preset, ok := dm.Selected()
	if !ok || preset != config.DifficultyFixed {
		t.Errorf("Selected() = %q, %v, want fixed", preset, ok)
	}
}
