package features

import "fmt"

// ZoneGrid is the number of zones along each axis; Zoning returns
// ZoneGrid*ZoneGrid values.
const ZoneGrid = 4

// Zoning splits the matrix into a ZoneGrid x ZoneGrid grid of equal square
// zones and returns the ink count of each, row-major: zone (r, c) comes
// before (r, c+1) and row r before row r+1.
//
// The side length must be a multiple of ZoneGrid, otherwise ErrZoneSize is
// returned rather than dropping the remainder rows and columns.
func Zoning(m *BinaryMatrix) ([]float64, error) {
	if m.side%ZoneGrid != 0 {
		return nil, fmt.Errorf("%w: side %d, grid %d", ErrZoneSize, m.side, ZoneGrid)
	}

	zoneSize := m.side / ZoneGrid
	zones := make([]float64, 0, ZoneGrid*ZoneGrid)
	for zr := 0; zr < ZoneGrid; zr++ {
		for zc := 0; zc < ZoneGrid; zc++ {
			zones = append(zones, float64(zoneInk(m, zr*zoneSize, zc*zoneSize, zoneSize)))
		}
	}
	return zones, nil
}

// zoneInk counts ink cells in the size x size block whose top-left cell is
// (row0, col0).
func zoneInk(m *BinaryMatrix, row0, col0, size int) int {
	ink := 0
	for r := row0; r < row0+size; r++ {
		for c := col0; c < col0+size; c++ {
			if m.IsInk(r, c) {
				ink++
			}
		}
	}
	return ink
}
