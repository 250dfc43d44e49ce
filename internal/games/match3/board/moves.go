package board

// Move is a swap of two adjacent cells that produces a match.
type Move struct {
	A, B Coord
}

// FindMoves lists every productive swap. Each pair appears once with A
// above or to the left of B, ordered row-major by A.
func FindMoves(g *Grid) []Move {
	var moves []Move
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			a := C(x, y)
			for _, d := range [2]Coord{Right, Down} {
				b := a.Add(d)
				if g.InBounds(b) && productive(g, a, b) {
					moves = append(moves, Move{A: a, B: b})
				}
			}
		}
	}
	return moves
}

// HasMove reports whether at least one productive swap exists.
func HasMove(g *Grid) bool {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			a := C(x, y)
			for _, d := range [2]Coord{Right, Down} {
				b := a.Add(d)
				if g.InBounds(b) && productive(g, a, b) {
					return true
				}
			}
		}
	}
	return false
}

// productive swaps a and b, checks the two lines through each and swaps back.
// Equal tiles never produce anything new.
func productive(g *Grid, a, b Coord) bool {
	if g.Get(a) == g.Get(b) {
		return false
	}
	g.swap(a, b)
	ok := matchesAt(g, a) || matchesAt(g, b)
	g.swap(a, b)
	return ok
}

// Shuffle rearranges the existing tiles so the grid has no match and at
// least one move. Tiles are placed row-major, each drawn from the remaining
// pool while skipping kinds that would complete a run. It reports false,
// leaving the grid unchanged, when maxAttempts arrangements all fail; the
// caller should then generate a fresh grid.
func Shuffle(g *Grid, r Intner) bool {
	for range maxAttempts {
		next, ok := arrange(g, r)
		if ok && HasMove(next) {
			copy(g.Cells, next.Cells)
			return true
		}
	}
	return false
}

func arrange(g *Grid, r Intner) (*Grid, bool) {
	pool := make([]Tile, len(g.Cells))
	copy(pool, g.Cells)

	out := NewGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			left, up := blockers(out, c)

			n := len(pool)
			start := r.Intn(n)
			picked := -1
			for i := range n {
				j := (start + i) % n
				if pool[j] != left && pool[j] != up {
					picked = j
					break
				}
			}
			if picked < 0 {
				return nil, false
			}

			out.Set(c, pool[picked])
			pool[picked] = pool[n-1]
			pool = pool[:n-1]
		}
	}
	return out, true
}
