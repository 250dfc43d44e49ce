package match3

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

const (
	cellWidth    = 3 // glyph with a bracket on each side
	hudHeight    = 3
	footerHeight = 2
)

// layout maps grid cells to screen positions. The board is centered
// horizontally below the HUD and framed by a one-cell border.
type layout struct {
	boardX, boardY int // top-left corner of the frame
	boardW, boardH int // frame size including borders
}

func (g *Game) layout() layout {
	w, h := g.variant.Board.Width, g.variant.Board.Height
	if g.grid != nil {
		w, h = g.grid.W, g.grid.H
	}
	l := layout{
		boardW: w*cellWidth + 2,
		boardH: h + 2,
		boardY: hudHeight,
	}
	l.boardX = (g.screenW - l.boardW) / 2
	if l.boardX < 0 {
		l.boardX = 0
	}
	return l
}

// cellOrigin returns the screen position of the glyph for cell c.
func (l layout) cellOrigin(c board.Coord) (int, int) {
	return l.boardX + 1 + c.X*cellWidth + 1, l.boardY + 1 + c.Y
}

// cellAt maps a screen position to a grid cell. Any column of a cell,
// brackets included, belongs to that cell.
func (l layout) cellAt(x, y int, grid *board.Grid) (board.Coord, bool) {
	inner := core.NewRect(l.boardX+1, l.boardY+1, grid.W*cellWidth, grid.H)
	if !inner.Contains(x, y) {
		return board.Coord{}, false
	}
	return board.C((x-inner.X)/cellWidth, y-inner.Y), true
}

var tileColors = map[board.Tile]core.Color{
	1: core.ColorRed,
	2: core.ColorGreen,
	3: core.ColorBlue,
	4: core.ColorYellow,
	5: core.ColorMagenta,
	6: core.ColorOrange,
}

// TileColor returns the display color for a tile kind.
func TileColor(t board.Tile) core.Color {
	if c, ok := tileColors[t]; ok {
		return c
	}
	return core.ColorDefault
}

func firstRune(s string, fallback rune) rune {
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func (g *Game) glyph(t board.Tile) rune {
	base := firstRune(g.variant.Render.Glyph, '●')
	if t == g.goalTile && t != board.Empty {
		return firstRune(g.variant.Render.GoalGlyph, base)
	}
	return base
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderFooter(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and goal progress.
func (g *Game) renderHUD(dst *core.Screen, l layout) {
	dst.DrawTextCentered(0, g.Title())

	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColor(l.boardX, 1, score, core.ColorBrightWhite)

	moves := "Moves: ∞"
	if g.limitedMoves() {
		moves = fmt.Sprintf("Moves: %d", g.movesLeft)
	}
	movesX := l.boardX + l.boardW - core.TextWidth(moves)
	if movesX < l.boardX+core.TextWidth(score)+1 {
		movesX = l.boardX + core.TextWidth(score) + 1
	}
	dst.DrawText(movesX, 1, moves)

	goal := g.variant.Rules.Goal
	switch goal.Type {
	case config.GoalScore:
		dst.DrawText(l.boardX, 2, fmt.Sprintf("Goal: %d points", goal.Target))
	case config.GoalCollect:
		label := fmt.Sprintf("%c %d/%d", g.glyph(g.goalTile), g.collected, goal.Target)
		dst.DrawTextColor(l.boardX, 2, label, TileColor(g.goalTile))
	default:
		if g.bestChain > 1 {
			dst.DrawText(l.boardX, 2, fmt.Sprintf("Best chain: x%d", g.bestChain))
		}
	}
}

// renderBoard draws the frame, the tiles, and the cursor, selection and
// hint markers.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	dst.DrawBoxColor(core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH), core.ColorGray)

	matched := make(map[board.Coord]bool)
	if g.phase == PhaseResolving {
		for _, r := range g.runs {
			for _, c := range r.Cells() {
				matched[c] = true
			}
		}
	}
	// Matched cells blink every few ticks while a cascade is shown
	blinkOn := (g.tick/4)%2 == 0

	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			c := board.C(x, y)
			px, py := l.cellOrigin(c)
			t := g.grid.Get(c)

			switch {
			case t == board.Empty:
				dst.Set(px, py, ' ')
			case matched[c] && blinkOn:
				dst.SetColored(px, py, '✦', core.ColorBrightWhite)
			default:
				dst.SetColored(px, py, g.glyph(t), TileColor(t))
			}
		}
	}

	if g.phase != PhaseIdle || g.gameOver {
		return
	}

	if g.hintTicks > 0 {
		g.drawBrackets(dst, l, g.hint.A, '{', '}', core.ColorBrightCyan)
		g.drawBrackets(dst, l, g.hint.B, '{', '}', core.ColorBrightCyan)
	}
	if g.hasSelection {
		g.drawBrackets(dst, l, g.selected, '<', '>', core.ColorBrightYellow)
	}
	if !g.hasSelection || g.selected != g.cursor {
		g.drawBrackets(dst, l, g.cursor, '[', ']', core.ColorBrightWhite)
	}
}

func (g *Game) drawBrackets(dst *core.Screen, l layout, c board.Coord, left, right rune, color core.Color) {
	px, py := l.cellOrigin(c)
	dst.SetColored(px-1, py, left, color)
	dst.SetColored(px+1, py, right, color)
}

// renderFooter draws the status message and control hints.
func (g *Game) renderFooter(dst *core.Screen, l layout) {
	y := l.boardY + l.boardH
	if g.message != "" {
		dst.DrawTextCentered(y, g.message)
	}
	dst.DrawTextColor(0, y+1, centerPad(g.Controls(), g.screenW), core.ColorGray)
}

func centerPad(text string, width int) string {
	pad := (width - core.TextWidth(text)) / 2
	if pad <= 0 {
		return text
	}
	return fmt.Sprintf("%*s%s", pad, "", text)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	centerX := l.boardX + l.boardW/2
	centerY := l.boardY + l.boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Score: %d", g.score), "R: restart  B: menu")
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "R: restart  B: menu")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if w := core.TextWidth(line); w > maxLen {
			maxLen = w
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		x := centerX - core.TextWidth(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move  Space: Pick  Esc: Drop  X: Hint  P: Pause  B: Menu  Q: Quit"
}
