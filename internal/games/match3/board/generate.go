package board

// Intner is the subset of *rand.Rand the generator needs. Tests substitute
// a scripted sequence.
type Intner interface {
	Intn(n int) int
}

// maxAttempts bounds whole-grid retries in Fill and Shuffle.
const maxAttempts = 100

// Generator draws random tiles from kinds 1..Kinds.
type Generator struct {
	Kinds int
	Rand  Intner
}

// NewGenerator returns a generator over the given number of kinds, clamped
// to [1, MaxKinds].
func NewGenerator(kinds int, r Intner) *Generator {
	if kinds < 1 {
		kinds = 1
	}
	if kinds > MaxKinds {
		kinds = MaxKinds
	}
	return &Generator{Kinds: kinds, Rand: r}
}

// Next returns a uniformly random tile.
func (gen *Generator) Next() Tile {
	return Tile(1 + gen.Rand.Intn(gen.Kinds))
}

// nextExcept returns a random tile other than the excluded ones. It reports
// false when every kind is excluded.
func (gen *Generator) nextExcept(a, b Tile) (Tile, bool) {
	var allowed [MaxKinds]Tile
	n := 0
	for k := 1; k <= gen.Kinds; k++ {
		t := Tile(k)
		if t != a && t != b {
			allowed[n] = t
			n++
		}
	}
	if n == 0 {
		return Empty, false
	}
	return allowed[gen.Rand.Intn(n)], true
}

// Fill creates a w x h grid with no matches and at least one valid move.
// Each cell avoids the kind that would complete a run with the two cells
// to its left or the two above it. If that is impossible, or the result has
// no move, the whole grid is drawn again. After maxAttempts the last grid
// without a match is returned even if it has no move.
func (gen *Generator) Fill(w, h int) *Grid {
	var last *Grid
	for range maxAttempts {
		g, ok := gen.draw(w, h)
		if !ok {
			continue
		}
		last = g
		if HasMove(g) {
			return g
		}
	}
	if last == nil {
		// Too few kinds for exclusion to work; settle for plain random tiles.
		last = NewGrid(w, h)
		for i := range last.Cells {
			last.Cells[i] = gen.Next()
		}
	}
	return last
}

func (gen *Generator) draw(w, h int) (*Grid, bool) {
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			left, up := blockers(g, C(x, y))
			t, ok := gen.nextExcept(left, up)
			if !ok {
				return nil, false
			}
			g.Set(C(x, y), t)
		}
	}
	return g, true
}

// blockers returns the kinds that would complete a run at c given the two
// cells to its left and the two above. Cells right of and below c are
// ignored since grids are filled row-major.
func blockers(g *Grid, c Coord) (left, up Tile) {
	if c.X >= 2 && g.Get(C(c.X-1, c.Y)) == g.Get(C(c.X-2, c.Y)) {
		left = g.Get(C(c.X-1, c.Y))
	}
	if c.Y >= 2 && g.Get(C(c.X, c.Y-1)) == g.Get(C(c.X, c.Y-2)) {
		up = g.Get(C(c.X, c.Y-1))
	}
	return left, up
}
