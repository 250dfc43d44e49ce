package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRuns(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []Run
	}{
		{
			name: "no match",
			rows: []string{"123", "231", "312"},
			want: nil,
		},
		{
			name: "single horizontal",
			rows: []string{"111", "223", "312"},
			want: []Run{{Start: C(0, 0), Length: 3, Dir: Horizontal, Tile: 1}},
		},
		{
			name: "single vertical",
			rows: []string{"213", "231", "242"},
			want: []Run{{Start: C(0, 0), Length: 3, Dir: Vertical, Tile: 2}},
		},
		{
			name: "run is maximal",
			rows: []string{"11111"},
			want: []Run{{Start: C(0, 0), Length: 5, Dir: Horizontal, Tile: 1}},
		},
		{
			name: "pair after run is not a run",
			rows: []string{"111211"},
			want: []Run{{Start: C(0, 0), Length: 3, Dir: Horizontal, Tile: 1}},
		},
		{
			name: "empty cells never match",
			rows: []string{"...", "12.", "21."},
			want: nil,
		},
		{
			name: "horizontal before vertical",
			rows: []string{"1112", "1233", "1323"},
			want: []Run{
				{Start: C(0, 0), Length: 3, Dir: Horizontal, Tile: 1},
				{Start: C(0, 0), Length: 3, Dir: Vertical, Tile: 1},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := MustFromRows(tc.rows...)
			assert.Equal(t, tc.want, FindRuns(g))
			assert.Equal(t, len(tc.want) > 0, HasMatch(g))
		})
	}
}

func TestFindMatchesDeduplicatesOverlap(t *testing.T) {
	g := MustFromRows(
		"1112",
		"1233",
		"1323",
	)

	got := FindMatches(g)
	want := []Coord{C(0, 0), C(1, 0), C(2, 0), C(0, 1), C(0, 2)}
	assert.Equal(t, want, got)
}

func TestRunCells(t *testing.T) {
	r := Run{Start: C(2, 1), Length: 3, Dir: Vertical, Tile: 4}
	assert.Equal(t, []Coord{C(2, 1), C(2, 2), C(2, 3)}, r.Cells())
}

// Scanner agrees with a direct "three in a row" check on random grids.
func TestHasMatchMatchesNaiveCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 500 {
		g := NewGrid(5, 5)
		for i := range g.Cells {
			g.Cells[i] = Tile(rng.Intn(4)) // includes Empty
		}

		naive := false
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				t0 := g.Get(C(x, y))
				if t0 == Empty {
					continue
				}
				if x+2 < g.W && g.Get(C(x+1, y)) == t0 && g.Get(C(x+2, y)) == t0 {
					naive = true
				}
				if y+2 < g.H && g.Get(C(x, y+1)) == t0 && g.Get(C(x, y+2)) == t0 {
					naive = true
				}
			}
		}

		require.Equal(t, naive, HasMatch(g), "grid:\n%s", g)
		require.Equal(t, naive, len(FindMatches(g)) > 0, "grid:\n%s", g)
		for _, c := range FindMatches(g) {
			require.NotEqual(t, Empty, g.Get(c))
		}
	}
}

func TestFromRowsErrors(t *testing.T) {
	_, err := FromRows()
	assert.Error(t, err)

	_, err = FromRows("123", "12")
	assert.Error(t, err)

	_, err = FromRows("12x")
	assert.Error(t, err)
}

func TestGridRowsRoundTrip(t *testing.T) {
	rows := []string{"12.", "345", "6.1"}
	g := MustFromRows(rows...)
	assert.Equal(t, rows, g.Rows())
	assert.Equal(t, 2, g.Count(Empty))
	assert.True(t, g.Equal(g.Clone()))
}

func TestParseTile(t *testing.T) {
	tile, ok := ParseTile("Red")
	assert.True(t, ok)
	assert.Equal(t, Tile(1), tile)
	assert.Equal(t, "red", tile.String())

	_, ok = ParseTile("teal")
	assert.False(t, ok)
}
