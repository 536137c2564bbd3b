package features

import "math"

// neighborOffsets lists the 4-connected neighbors as (dRow, dCol): up, left,
// down, right.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// inkNeighbors counts the 4-connected ink neighbors of (row, col). Positions
// past the matrix edge count as background.
func inkNeighbors(m *BinaryMatrix, row, col int) int {
	count := 0
	for _, d := range neighborOffsets {
		if m.IsInk(row+d[0], col+d[1]) {
			count++
		}
	}
	return count
}

// Perimeter returns the number of ink cell sides that do not touch another
// ink cell: every ink cell contributes 4 minus its ink neighbors.
func Perimeter(m *BinaryMatrix) int {
	perimeter := 0
	for r := 0; r < m.side; r++ {
		for c := 0; c < m.side; c++ {
			if m.IsInk(r, c) {
				perimeter += 4 - inkNeighbors(m, r, c)
			}
		}
	}
	return perimeter
}

// Isoperimeter returns the compactness ratio perimeter / (4π · surface).
//
// A compact blob gives a small ratio; thin or ragged strokes push it up.
// A matrix without ink returns ErrDegenerateInput.
func Isoperimeter(m *BinaryMatrix) (float64, error) {
	surface := m.Surface()
	if surface == 0 {
		return 0, ErrDegenerateInput
	}
	return float64(Perimeter(m)) / (4 * math.Pi * float64(surface)), nil
}
