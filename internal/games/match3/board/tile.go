// Package board implements the match-three grid engine: run scanning,
// swap validation, gravity compaction, refill and cascade resolution.
// It has no dependency on rendering or input handling.
package board

import "strings"

// Tile is the content of one grid cell. Empty is the zero value; kinds
// are numbered from 1.
type Tile uint8

// Empty marks a cell with no tile.
const Empty Tile = 0

// MaxKinds is the number of distinct tile kinds that have names and colors.
const MaxKinds = 6

var tileNames = [MaxKinds + 1]string{"empty", "red", "green", "blue", "yellow", "purple", "orange"}

// IsEmpty reports whether t is the empty sentinel.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// String returns the tile's kind name.
func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "unknown"
}

// ParseTile converts a kind name ("red", "blue", ...) to a Tile.
func ParseTile(name string) (Tile, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := 1; i < len(tileNames); i++ {
		if tileNames[i] == name {
			return Tile(i), true
		}
	}
	return Empty, false
}

// Coord is a cell position. X is the column, Y the row (0 at the top).
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Adjacent reports whether a and b are at Manhattan distance 1.
func Adjacent(a, b Coord) bool {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Unit offsets for the four orthogonal neighbors.
var (
	Up    = Coord{X: 0, Y: -1}
	Down  = Coord{X: 0, Y: 1}
	Left  = Coord{X: -1, Y: 0}
	Right = Coord{X: 1, Y: 0}
)

// Neighbors returns the four orthogonal neighbors of c in up, down, left,
// right order. Callers filter with Grid.InBounds.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{c.Add(Up), c.Add(Down), c.Add(Left), c.Add(Right)}
}
