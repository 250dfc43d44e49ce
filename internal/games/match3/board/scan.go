package board

import "sort"

// MinRun is the shortest line of equal tiles that counts as a match.
const MinRun = 3

// Direction is the axis of a run.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is a maximal straight line of at least MinRun equal non-empty tiles.
type Run struct {
	Start  Coord
	Length int
	Dir    Direction
	Tile   Tile
}

// Cells lists the coordinates covered by the run, starting at Start.
func (r Run) Cells() []Coord {
	step := Right
	if r.Dir == Vertical {
		step = Down
	}
	cells := make([]Coord, r.Length)
	c := r.Start
	for i := range r.Length {
		cells[i] = c
		c = c.Add(step)
	}
	return cells
}

// FindRuns returns every maximal horizontal run (row by row) followed by
// every maximal vertical run (column by column). Empty cells never match.
func FindRuns(g *Grid) []Run {
	var runs []Run
	for y := 0; y < g.H; y++ {
		runs = scanLine(g, C(0, y), Right, g.W, Horizontal, runs)
	}
	for x := 0; x < g.W; x++ {
		runs = scanLine(g, C(x, 0), Down, g.H, Vertical, runs)
	}
	return runs
}

func scanLine(g *Grid, start, step Coord, n int, dir Direction, runs []Run) []Run {
	runStart := start
	runLen := 0
	var runTile Tile

	flush := func() {
		if runTile != Empty && runLen >= MinRun {
			runs = append(runs, Run{Start: runStart, Length: runLen, Dir: dir, Tile: runTile})
		}
	}

	c := start
	for range n {
		t := g.Get(c)
		if t == runTile && t != Empty {
			runLen++
		} else {
			flush()
			runStart, runLen, runTile = c, 1, t
		}
		c = c.Add(step)
	}
	flush()
	return runs
}

// FindMatches returns the union of all run cells without duplicates,
// ordered row-major. Cells shared by a horizontal and a vertical run
// appear once.
func FindMatches(g *Grid) []Coord {
	return cellsOf(FindRuns(g))
}

// cellsOf merges run cells into a deduplicated row-major list.
func cellsOf(runs []Run) []Coord {
	seen := make(map[Coord]struct{})
	var cells []Coord
	for _, r := range runs {
		for _, c := range r.Cells() {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			cells = append(cells, c)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// HasMatch reports whether the grid contains at least one run.
func HasMatch(g *Grid) bool {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if matchesAt(g, C(x, y)) {
				return true
			}
		}
	}
	return false
}

// matchesAt reports whether the cell at c is part of any run.
func matchesAt(g *Grid, c Coord) bool {
	t := g.Get(c)
	if t == Empty {
		return false
	}
	return lineLength(g, c, Left, Right, t) >= MinRun || lineLength(g, c, Up, Down, t) >= MinRun
}

// lineLength counts equal tiles through c along the axis given by back and fwd.
func lineLength(g *Grid, c, back, fwd Coord, t Tile) int {
	n := 1
	for p := c.Add(back); g.InBounds(p) && g.Get(p) == t; p = p.Add(back) {
		n++
	}
	for p := c.Add(fwd); g.InBounds(p) && g.Get(p) == t; p = p.Add(fwd) {
		n++
	}
	return n
}
