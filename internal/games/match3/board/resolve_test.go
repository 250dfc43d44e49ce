package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource returns tiles from a fixed cycle.
type seqSource struct {
	tiles []Tile
	i     int
}

func (s *seqSource) Next() Tile {
	t := s.tiles[s.i%len(s.tiles)]
	s.i++
	return t
}

func TestClear(t *testing.T) {
	g := MustFromRows("112", "2.3")
	counts := Clear(g, []Coord{C(0, 0), C(1, 0), C(2, 0), C(1, 1), C(9, 9)})

	assert.Equal(t, map[Tile]int{1: 2, 2: 1}, counts)
	assert.Equal(t, []string{"...", "2.3"}, g.Rows())
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name        string
		gravity     Gravity
		rows        []string
		wantRows    []string
		wantVacated []Coord
	}{
		{
			name:        "down",
			gravity:     GravityDown,
			rows:        []string{"1", ".", "2", "."},
			wantRows:    []string{".", ".", "1", "2"},
			wantVacated: []Coord{C(0, 0), C(0, 1)},
		},
		{
			name:        "up",
			gravity:     GravityUp,
			rows:        []string{".", "1", ".", "2"},
			wantRows:    []string{"1", "2", ".", "."},
			wantVacated: []Coord{C(0, 2), C(0, 3)},
		},
		{
			name:        "full column untouched",
			gravity:     GravityDown,
			rows:        []string{"1", "2", "3"},
			wantRows:    []string{"1", "2", "3"},
			wantVacated: nil,
		},
		{
			name:        "two columns",
			gravity:     GravityDown,
			rows:        []string{"12", ".3", "4."},
			wantRows:    []string{"..", "12", "43"},
			wantVacated: []Coord{C(0, 0), C(1, 0)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := MustFromRows(tc.rows...)
			vacated := Compact(g, tc.gravity)
			assert.Equal(t, tc.wantRows, g.Rows())
			assert.Equal(t, tc.wantVacated, vacated)
		})
	}
}

// Survivors keep their order and only the vacated slots are empty.
func TestCompactPreservesOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, gravity := range []Gravity{GravityDown, GravityUp} {
		for range 200 {
			g := NewGrid(6, 7)
			for i := range g.Cells {
				g.Cells[i] = Tile(rng.Intn(5))
			}

			before := make([][]Tile, g.W)
			for x := range g.W {
				for _, tile := range g.Column(x) {
					if tile != Empty {
						before[x] = append(before[x], tile)
					}
				}
			}
			empties := g.Count(Empty)

			vacated := Compact(g, gravity)
			require.Len(t, vacated, empties)
			for _, c := range vacated {
				require.Equal(t, Empty, g.Get(c))
			}

			for x := range g.W {
				col := g.Column(x)
				n := len(before[x])
				var survivors []Tile
				if gravity == GravityDown {
					survivors = col[g.H-n:]
				} else {
					survivors = col[:n]
				}
				if n == 0 {
					survivors = nil
				}
				require.Equal(t, before[x], survivors, "column %d gravity %s", x, gravity)
			}
		}
	}
}

func TestResolveSinglePass(t *testing.T) {
	g := MustFromRows(
		"231",
		"111",
		"323",
	)
	r := &Resolver{Gravity: GravityDown, Gen: &seqSource{tiles: []Tile{4, 5, 6}}}

	res, err := r.Resolve(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"456", "231", "323"}, g.Rows())
	assert.Equal(t, 1, res.Chains())
	assert.Equal(t, 3, res.Cleared())
	assert.Equal(t, 3, res.Count(1))
	assert.Equal(t, 1, res.Cascades[0].Chain)
	assert.Equal(t, []Coord{C(0, 0), C(1, 0), C(2, 0)}, res.Cascades[0].Filled)
}

func TestResolveCascade(t *testing.T) {
	g := MustFromRows(
		"231",
		"111",
		"323",
	)
	// First refill completes a row of 4s, the second breaks it up.
	r := &Resolver{Gravity: GravityDown, Gen: &seqSource{tiles: []Tile{4, 4, 4, 5, 6, 4}}}

	res, err := r.Resolve(g)
	require.NoError(t, err)

	require.Equal(t, 2, res.Chains())
	assert.Equal(t, 2, res.Cascades[1].Chain)
	assert.Equal(t, 3, res.Count(1))
	assert.Equal(t, 3, res.Count(4))
	assert.Equal(t, []string{"564", "231", "323"}, g.Rows())
}

func TestResolveChainLimit(t *testing.T) {
	g := MustFromRows(
		"231",
		"111",
		"323",
	)
	r := &Resolver{Gravity: GravityDown, Gen: &seqSource{tiles: []Tile{4}}, MaxChain: 5}

	res, err := r.Resolve(g)
	require.ErrorIs(t, err, ErrChainLimit)
	assert.Equal(t, 5, res.Chains())
}

func TestStepNothingToClear(t *testing.T) {
	g := stableGrid()
	before := g.Clone()
	r := &Resolver{Gen: &seqSource{tiles: []Tile{1}}}

	_, ok := r.Step(g)
	assert.False(t, ok)
	assert.True(t, g.Equal(before))
}

func TestResolveLeavesStableFullGrid(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		gen := NewGenerator(4, rng)

		g := NewGrid(8, 8)
		for i := range g.Cells {
			g.Cells[i] = gen.Next()
		}

		gravity := GravityDown
		if seed%2 == 0 {
			gravity = GravityUp
		}
		r := &Resolver{Gravity: gravity, Gen: gen}
		_, err := r.Resolve(g)
		require.NoError(t, err)
		require.False(t, HasMatch(g), "seed %d left a match:\n%s", seed, g)
		require.Zero(t, g.Count(Empty), "seed %d left holes:\n%s", seed, g)
	}
}

func TestParseGravity(t *testing.T) {
	g, err := ParseGravity("up")
	require.NoError(t, err)
	assert.Equal(t, GravityUp, g)

	g, err = ParseGravity("")
	require.NoError(t, err)
	assert.Equal(t, GravityDown, g)

	_, err = ParseGravity("sideways")
	assert.Error(t, err)
}
