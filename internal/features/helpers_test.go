package features

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from rows where '#' is ink and anything else is
// background.
func mustMatrix(t *testing.T, rows ...string) *BinaryMatrix {
	t.Helper()

	grid := make([][]uint8, len(rows))
	for r, line := range rows {
		grid[r] = make([]uint8, len(line))
		for c, ch := range line {
			if ch == '#' {
				grid[r][c] = Ink
			} else {
				grid[r][c] = Background
			}
		}
	}

	m, err := NewBinaryMatrix(grid)
	require.NoError(t, err)
	return m
}

// filledMatrix returns a side x side matrix where every cell is v.
func filledMatrix(t *testing.T, side int, v uint8) *BinaryMatrix {
	t.Helper()

	grid := make([][]uint8, side)
	for r := range grid {
		grid[r] = make([]uint8, side)
		for c := range grid[r] {
			grid[r][c] = v
		}
	}

	m, err := NewBinaryMatrix(grid)
	require.NoError(t, err)
	return m
}

// diagonalMatrix returns a side x side matrix with ink on both diagonals.
func diagonalMatrix(t *testing.T, side int) *BinaryMatrix {
	t.Helper()

	rows := make([]string, side)
	for r := 0; r < side; r++ {
		line := make([]byte, side)
		for c := 0; c < side; c++ {
			if c == r || c == side-1-r {
				line[c] = '#'
			} else {
				line[c] = '.'
			}
		}
		rows[r] = string(line)
	}
	return mustMatrix(t, rows...)
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
