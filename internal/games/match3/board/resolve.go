package board

import (
	"errors"
	"fmt"
)

// ErrChainLimit is returned by Resolve when cascades keep producing matches
// past the resolver's MaxChain.
var ErrChainLimit = errors.New("board: cascade chain limit exceeded")

// DefaultMaxChain bounds Resolve when a Resolver has no explicit limit.
const DefaultMaxChain = 100

// Gravity is the direction surviving tiles fall during compaction.
type Gravity int

const (
	GravityDown Gravity = iota
	GravityUp
)

func (g Gravity) String() string {
	if g == GravityUp {
		return "up"
	}
	return "down"
}

// ParseGravity reads "down" or "up". The empty string means down.
func ParseGravity(s string) (Gravity, error) {
	switch s {
	case "", "down":
		return GravityDown, nil
	case "up":
		return GravityUp, nil
	default:
		return GravityDown, fmt.Errorf("board: unknown gravity %q", s)
	}
}

// TileSource produces replacement tiles for refilled cells.
type TileSource interface {
	Next() Tile
}

// Clear empties the given cells and returns how many tiles of each kind were
// removed. Cells that are already empty or off the grid are not counted.
func Clear(g *Grid, coords []Coord) map[Tile]int {
	counts := make(map[Tile]int)
	for _, c := range coords {
		t := g.Get(c)
		if t == Empty {
			continue
		}
		counts[t]++
		g.Set(c, Empty)
	}
	return counts
}

// Compact moves the surviving tiles of every column toward the gravity edge,
// keeping their relative order. It returns the cells left empty afterwards,
// column by column; those are exactly the cells Fill needs to populate.
func Compact(g *Grid, gravity Gravity) []Coord {
	var vacated []Coord
	for x := 0; x < g.W; x++ {
		if gravity == GravityUp {
			write := 0
			for y := 0; y < g.H; y++ {
				if t := g.Get(C(x, y)); t != Empty {
					g.Set(C(x, write), t)
					write++
				}
			}
			for y := write; y < g.H; y++ {
				g.Set(C(x, y), Empty)
				vacated = append(vacated, C(x, y))
			}
			continue
		}

		write := g.H - 1
		for y := g.H - 1; y >= 0; y-- {
			if t := g.Get(C(x, y)); t != Empty {
				g.Set(C(x, write), t)
				write--
			}
		}
		for y := 0; y <= write; y++ {
			g.Set(C(x, y), Empty)
			vacated = append(vacated, C(x, y))
		}
	}
	return vacated
}

// Fill puts a fresh tile from src into each coordinate.
func Fill(g *Grid, coords []Coord, src TileSource) {
	for _, c := range coords {
		g.Set(c, src.Next())
	}
}

// Cascade describes one clear/compact/refill pass.
type Cascade struct {
	// Chain is 1 for the pass triggered by the swap, 2 for the first
	// cascade it causes, and so on.
	Chain   int
	Runs    []Run
	Cleared []Coord
	Counts  map[Tile]int
	Filled  []Coord
}

// Result collects the passes of a full resolution.
type Result struct {
	Cascades []Cascade
}

// Cleared returns the total number of tiles removed.
func (r Result) Cleared() int {
	n := 0
	for _, c := range r.Cascades {
		n += len(c.Cleared)
	}
	return n
}

// Count returns how many tiles of kind t were removed across all passes.
func (r Result) Count(t Tile) int {
	n := 0
	for _, c := range r.Cascades {
		n += c.Counts[t]
	}
	return n
}

// Chains returns the number of passes.
func (r Result) Chains() int {
	return len(r.Cascades)
}

// Resolver runs the clear/compact/refill loop.
type Resolver struct {
	Gravity  Gravity
	Gen      TileSource
	MaxChain int
}

// Apply clears the cells of runs, compacts and refills. It is the second half
// of Step, split out so callers can show the matched cells before clearing.
func (r *Resolver) Apply(g *Grid, runs []Run, chain int) Cascade {
	cells := cellsOf(runs)
	counts := Clear(g, cells)
	vacated := Compact(g, r.Gravity)
	Fill(g, vacated, r.Gen)
	return Cascade{
		Chain:   chain,
		Runs:    runs,
		Cleared: cells,
		Counts:  counts,
		Filled:  vacated,
	}
}

// Step performs one pass. It returns false, and leaves the grid untouched,
// when there is nothing to clear.
func (r *Resolver) Step(g *Grid) (Cascade, bool) {
	return r.step(g, 1)
}

func (r *Resolver) step(g *Grid, chain int) (Cascade, bool) {
	runs := FindRuns(g)
	if len(runs) == 0 {
		return Cascade{}, false
	}
	return r.Apply(g, runs, chain), true
}

// Resolve repeats Step until the grid has no match. The returned Result
// holds every pass, including those completed before ErrChainLimit.
func (r *Resolver) Resolve(g *Grid) (Result, error) {
	limit := r.MaxChain
	if limit <= 0 {
		limit = DefaultMaxChain
	}

	var res Result
	for chain := 1; ; chain++ {
		if chain > limit {
			if HasMatch(g) {
				return res, fmt.Errorf("%w: %d passes", ErrChainLimit, limit)
			}
			return res, nil
		}
		c, ok := r.step(g, chain)
		if !ok {
			return res, nil
		}
		res.Cascades = append(res.Cascades, c)
	}
}
