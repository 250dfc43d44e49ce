package match3

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// handleInput processes one idle-phase frame. Clicks are handled after
// keyboard actions so a click always acts on the cell under the pointer.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(board.Up)
	case in.Has(core.ActionDown):
		g.moveCursor(board.Down)
	case in.Has(core.ActionLeft):
		g.moveCursor(board.Left)
	case in.Has(core.ActionRight):
		g.moveCursor(board.Right)
	}

	if in.Has(core.ActionCancel) {
		g.hasSelection = false
		g.hintTicks = 0
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}
	if in.Has(core.ActionSelect) {
		g.pick(g.cursor)
	}

	for _, c := range in.Clicks {
		if g.phase != PhaseIdle || g.gameOver {
			break
		}
		if cell, ok := g.layout().cellAt(c.X, c.Y, g.grid); ok {
			g.cursor = cell
			g.pick(cell)
		}
	}
}

func (g *Game) moveCursor(d board.Coord) {
	next := g.cursor.Add(d)
	if g.grid.InBounds(next) {
		g.cursor = next
	}
}

// pick selects a cell or, with a cell already selected, attempts a swap.
// The selection is cleared after every swap attempt.
func (g *Game) pick(c board.Coord) {
	if !g.hasSelection {
		g.selected = c
		g.hasSelection = true
		return
	}
	if g.selected == c {
		g.hasSelection = false
		return
	}

	first := g.selected
	g.hasSelection = false
	g.trySwap(first, c)
}

func (g *Game) trySwap(a, b board.Coord) {
	err := board.Swap(g.grid, a, b)
	switch {
	case err == nil:
		g.hintTicks = 0
		g.swaps++
		g.spendMove()
		g.startResolve()
	case errors.Is(err, board.ErrNoMatch):
		g.flash("No match")
		if g.variant.Rules.InvalidSwapCostsMove {
			g.spendMove()
			g.checkEnd()
		}
	default:
		// Not adjacent: the second pick only drops the selection
	}
}

func (g *Game) spendMove() {
	if g.movesLeft > 0 {
		g.movesLeft--
	}
}

func (g *Game) limitedMoves() bool {
	return g.variant.Rules.Moves > 0
}

// startResolve enters the resolving phase for the matches on the board.
// With no cascade delay the whole chain resolves immediately.
func (g *Game) startResolve() {
	g.runs = board.FindRuns(g.grid)
	if len(g.runs) == 0 {
		g.finishTurn()
		return
	}
	g.chain = 1
	g.phase = PhaseResolving
	g.phaseTicks = g.delayTicks

	for g.phase == PhaseResolving && g.phaseTicks <= 0 {
		g.applyCascade()
	}
}

// applyCascade clears the runs being shown, scores them and looks for the
// next link of the chain.
func (g *Game) applyCascade() {
	c := g.resolver.Apply(g.grid, g.runs, g.chain)
	g.award(c)

	runs := board.FindRuns(g.grid)
	if len(runs) == 0 {
		g.finishTurn()
		return
	}

	if g.chain >= g.resolver.MaxChain {
		g.grid = g.gen.Fill(g.grid.W, g.grid.H)
		g.finishTurn()
		return
	}

	g.chain++
	g.runs = runs
	g.phaseTicks = g.delayTicks
}

func (g *Game) award(c board.Cascade) {
	perTile := g.variant.Scoring.PointsPerTile + g.variant.Scoring.ChainBonus*(c.Chain-1)
	g.score += len(c.Cleared) * perTile
	if g.goalTile != board.Empty {
		g.collected += c.Counts[g.goalTile]
	}
	if c.Chain > g.bestChain {
		g.bestChain = c.Chain
	}
	if c.Chain > 1 {
		g.flash(fmt.Sprintf("Chain x%d!", c.Chain))
	}
}

// finishTurn returns to the idle phase once the board has settled.
func (g *Game) finishTurn() {
	g.phase = PhaseIdle
	g.runs = nil
	g.chain = 0

	if g.difficulty.IsEnabled() {
		g.gen.Kinds = g.difficulty.Kinds(g.baseKinds, g.score, int(g.tick))
	}

	if g.checkEnd() {
		return
	}

	if !board.HasMove(g.grid) {
		g.reshuffle()
	}
}

// checkEnd applies the win and lose rules. The goal is checked first so a
// goal reached on the last move is a win.
func (g *Game) checkEnd() bool {
	if g.goalReached() {
		g.gameOver = true
		g.won = true
		return true
	}
	if g.limitedMoves() && g.movesLeft <= 0 {
		g.gameOver = true
		return true
	}
	return false
}

func (g *Game) goalReached() bool {
	goal := g.variant.Rules.Goal
	switch goal.Type {
	case config.GoalScore:
		return g.score >= goal.Target
	case config.GoalCollect:
		return g.collected >= goal.Target
	default:
		return false
	}
}

// reshuffle rearranges a stuck board, or draws a new one if the tiles
// cannot be arranged into a playable position.
func (g *Game) reshuffle() {
	g.shuffles++
	if !board.Shuffle(g.grid, g.rng) {
		g.grid = g.gen.Fill(g.grid.W, g.grid.H)
	}
	g.hasSelection = false
	g.flash("No moves left, shuffled")
}

func (g *Game) showHint() {
	moves := board.FindMoves(g.grid)
	if len(moves) == 0 {
		return
	}
	g.hint = moves[0]
	g.hintTicks = g.tickRate * 2
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = g.tickRate * 3 / 2
}
