package board

import "errors"

var (
	// ErrOutOfBounds is returned when a swap names a cell off the grid.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")
	// ErrNotAdjacent is returned when the two cells are not orthogonal neighbors.
	ErrNotAdjacent = errors.New("board: cells are not adjacent")
	// ErrNoMatch is returned when the exchange would not create a match.
	ErrNoMatch = errors.New("board: swap creates no match")
)

// Swap exchanges the tiles at a and b if the result contains a match.
// On any error the grid is left unchanged.
func Swap(g *Grid, a, b Coord) error {
	if err := checkPair(g, a, b); err != nil {
		return err
	}
	g.swap(a, b)
	if !HasMatch(g) {
		g.swap(a, b)
		return ErrNoMatch
	}
	return nil
}

// CanSwap reports whether Swap(g, a, b) would succeed. The grid is not modified.
func CanSwap(g *Grid, a, b Coord) bool {
	if checkPair(g, a, b) != nil {
		return false
	}
	g.swap(a, b)
	ok := HasMatch(g)
	g.swap(a, b)
	return ok
}

func checkPair(g *Grid, a, b Coord) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return ErrOutOfBounds
	}
	if !Adjacent(a, b) {
		return ErrNotAdjacent
	}
	return nil
}
