package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// StateType represents the current game state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateResolving   StateType = "resolving"
	StatePaused      StateType = "paused"
	StateWin         StateType = "win"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Rows      []string
	Kinds     int
	Score     int
	MovesLeft int // -1 when unlimited
	Collected int
	Target    int
	Swaps     int
	Shuffles  int
	BestChain int
	Cursor    board.Coord
	Selected  *board.Coord
	State     StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.phase == PhaseResolving:
		state = StateResolving
	}

	moves := g.movesLeft
	if !g.limitedMoves() {
		moves = -1
	}

	var selected *board.Coord
	if g.hasSelection {
		c := g.selected
		selected = &c
	}

	return Snapshot{
		Tick:      g.tick,
		Variant:   g.id,
		Rows:      g.grid.Rows(),
		Kinds:     g.gen.Kinds,
		Score:     g.score,
		MovesLeft: moves,
		Collected: g.collected,
		Target:    g.variant.Rules.Goal.Target,
		Swaps:     g.swaps,
		Shuffles:  g.shuffles,
		BestChain: g.bestChain,
		Cursor:    g.cursor,
		Selected:  selected,
		State:     state,
	}
}

// Stats returns the swap count and the longest chain of the current game.
func (g *Game) Stats() (swaps, bestChain int) {
	return g.swaps, g.bestChain
}
