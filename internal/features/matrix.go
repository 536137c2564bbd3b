package features

import "fmt"

// Cell values of a BinaryMatrix.
const (
	Ink        uint8 = 0
	Background uint8 = 1
)

// BinaryMatrix is a square grid of Ink and Background cells.
//
// The zero value is not usable; build one with NewBinaryMatrix.
type BinaryMatrix struct {
	side  int
	cells []uint8
}

// NewBinaryMatrix copies rows into a BinaryMatrix after checking that the
// grid is square and only holds Ink or Background values.
func NewBinaryMatrix(rows [][]uint8) (*BinaryMatrix, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}

	side := len(rows)
	cells := make([]uint8, 0, side*side)
	for r, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), side)
		}
		for c, v := range row {
			if v != Ink && v != Background {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrInvalidCell, r, c, v)
			}
		}
		cells = append(cells, row...)
	}

	return &BinaryMatrix{side: side, cells: cells}, nil
}

// Side returns the number of rows (and columns) of the matrix.
func (m *BinaryMatrix) Side() int {
	return m.side
}

// At returns the cell at (row, col). It panics when the position is outside
// the matrix, like a slice index would.
func (m *BinaryMatrix) At(row, col int) uint8 {
	return m.cells[row*m.side+col]
}

// IsInk reports whether (row, col) lies inside the matrix and holds ink.
func (m *BinaryMatrix) IsInk(row, col int) bool {
	if row < 0 || row >= m.side || col < 0 || col >= m.side {
		return false
	}
	return m.cells[row*m.side+col] == Ink
}

// Surface returns the number of ink cells.
func (m *BinaryMatrix) Surface() int {
	surface := 0
	for _, v := range m.cells {
		if v == Ink {
			surface++
		}
	}
	return surface
}

// String renders the matrix with '#' for ink and '.' for background, one
// row per line.
func (m *BinaryMatrix) String() string {
	buf := make([]byte, 0, m.side*(m.side+1))
	for r := 0; r < m.side; r++ {
		for c := 0; c < m.side; c++ {
			if m.IsInk(r, c) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
