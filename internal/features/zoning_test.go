package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoning_RowMajorOrder(t *testing.T) {
	// Side 8 gives zones of 2x2 cells. Ink in zone (0,1) and zone (3,0).
	m := mustMatrix(t,
		"..#.....",
		"...#....",
		"........",
		"........",
		"........",
		"........",
		"##......",
		"#.......",
	)

	zones, err := Zoning(m)
	require.NoError(t, err)
	require.Len(t, zones, ZoneGrid*ZoneGrid)

	want := make([]float64, 16)
	want[1] = 2
	want[12] = 3
	assert.Equal(t, want, zones)
}

func TestZoning_SumEqualsSurface(t *testing.T) {
	tests := []struct {
		name string
		m    *BinaryMatrix
	}{
		{"full 4x4", filledMatrix(t, 4, Ink)},
		{"blank 8x8", filledMatrix(t, 8, Background)},
		{"diagonals 12", diagonalMatrix(t, 12)},
		{"diagonals 44", diagonalMatrix(t, 44)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones, err := Zoning(tt.m)
			require.NoError(t, err)
			assert.Equal(t, float64(tt.m.Surface()), sum(zones))
		})
	}
}

func TestZoning_FullInk(t *testing.T) {
	zones, err := Zoning(filledMatrix(t, 8, Ink))
	require.NoError(t, err)

	for i, z := range zones {
		assert.Equal(t, 4.0, z, "zone %d", i)
	}
}

func TestZoning_SideNotDivisible(t *testing.T) {
	for _, side := range []int{1, 3, 5, 15, 45} {
		_, err := Zoning(filledMatrix(t, side, Ink))
		assert.ErrorIs(t, err, ErrZoneSize, "side %d", side)
	}
}
