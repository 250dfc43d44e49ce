package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stableGrid() *Grid {
	return MustFromRows(
		"112",
		"231",
		"323",
	)
}

func TestSwap(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Coord
		wantErr error
	}{
		{"creates match", C(2, 0), C(2, 1), nil},
		{"no match", C(0, 0), C(0, 1), ErrNoMatch},
		{"not adjacent", C(0, 0), C(2, 2), ErrNotAdjacent},
		{"diagonal", C(0, 0), C(1, 1), ErrNotAdjacent},
		{"same cell", C(1, 1), C(1, 1), ErrNotAdjacent},
		{"out of bounds", C(2, 0), C(3, 0), ErrOutOfBounds},
		{"negative", C(0, -1), C(0, 0), ErrOutOfBounds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := stableGrid()
			before := g.Clone()

			err := Swap(g, tc.a, tc.b)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, g.Equal(before), "grid changed on error:\n%s", g)
				assert.False(t, CanSwap(before, tc.a, tc.b))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, before.Get(tc.a), g.Get(tc.b))
			assert.Equal(t, before.Get(tc.b), g.Get(tc.a))
			assert.True(t, HasMatch(g))
		})
	}
}

func TestCanSwapDoesNotMutate(t *testing.T) {
	g := stableGrid()
	before := g.Clone()

	assert.True(t, CanSwap(g, C(2, 0), C(2, 1)))
	assert.True(t, g.Equal(before))

	assert.False(t, CanSwap(g, C(0, 0), C(0, 1)))
	assert.True(t, g.Equal(before))
}

func TestAdjacent(t *testing.T) {
	assert.True(t, Adjacent(C(1, 1), C(1, 2)))
	assert.True(t, Adjacent(C(1, 1), C(0, 1)))
	assert.False(t, Adjacent(C(1, 1), C(2, 2)))
	assert.False(t, Adjacent(C(1, 1), C(1, 1)))
	assert.False(t, Adjacent(C(0, 0), C(0, 2)))
}
