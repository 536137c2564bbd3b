package features

// VerticalProfile returns one value per matrix row: the number of ink cells
// in that row. The scan always covers the whole matrix.
func VerticalProfile(m *BinaryMatrix) []float64 {
	profile := make([]float64, m.side)
	for r := 0; r < m.side; r++ {
		for c := 0; c < m.side; c++ {
			if m.IsInk(r, c) {
				profile[r]++
			}
		}
	}
	return profile
}
