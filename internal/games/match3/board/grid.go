package board

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size board of tiles stored row-major: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Tile
}

// NewGrid creates an empty w x h grid.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Tile, w*h),
	}
}

// FromRows builds a grid from text rows. Digits 1-6 are tile kinds and '.'
// is empty. All rows must have the same length.
func FromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("board: no rows")
	}
	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("board: row %d has length %d, want %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			ch := row[x]
			switch {
			case ch == '.':
				g.Set(C(x, y), Empty)
			case ch >= '1' && ch <= '0'+MaxKinds:
				g.Set(C(x, y), Tile(ch-'0'))
			default:
				return nil, fmt.Errorf("board: invalid cell %q at (%d, %d)", ch, x, y)
			}
		}
	}
	return g, nil
}

// MustFromRows is FromRows that panics on malformed input. Intended for tests.
func MustFromRows(rows ...string) *Grid {
	g, err := FromRows(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the tile at c, or Empty when out of bounds.
func (g *Grid) Get(c Coord) Tile {
	if !g.InBounds(c) {
		return Empty
	}
	return g.Cells[g.index(c)]
}

// Set stores a tile at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, t Tile) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = t
	}
}

// swap exchanges two in-bounds cells.
func (g *Grid) swap(a, b Coord) {
	ia, ib := g.index(a), g.index(b)
	g.Cells[ia], g.Cells[ib] = g.Cells[ib], g.Cells[ia]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold tile t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.Cells {
		if c == t {
			n++
		}
	}
	return n
}

// Column returns the tiles of column x from top to bottom.
func (g *Grid) Column(x int) []Tile {
	col := make([]Tile, g.H)
	for y := 0; y < g.H; y++ {
		col[y] = g.Get(C(x, y))
	}
	return col
}

// Rows renders the grid in the format accepted by FromRows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		sb.Reset()
		for x := 0; x < g.W; x++ {
			t := g.Get(C(x, y))
			if t == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(t))
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
