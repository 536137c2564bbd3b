package features

import "fmt"

// FeatureVector holds the three descriptors of one image.
//
// Vectors built from matrices of the same side have the same shape and can
// be compared with each other.
type FeatureVector struct {
	// Isoperimeter is the compactness ratio from Isoperimeter.
	Isoperimeter float64

	// Zoning holds ZoneGrid*ZoneGrid zone ink counts.
	Zoning []float64

	// VerticalProfile holds one ink count per matrix row.
	VerticalProfile []float64
}

// Extract computes every descriptor of m.
func Extract(m *BinaryMatrix) (FeatureVector, error) {
	iso, err := Isoperimeter(m)
	if err != nil {
		return FeatureVector{}, err
	}

	zones, err := Zoning(m)
	if err != nil {
		return FeatureVector{}, err
	}

	return FeatureVector{
		Isoperimeter:    iso,
		Zoning:          zones,
		VerticalProfile: VerticalProfile(m),
	}, nil
}

// String gives a compact one-line summary, handy in debug logs.
func (v FeatureVector) String() string {
	return fmt.Sprintf("iso=%.4f zoning=%v profile=%v", v.Isoperimeter, v.Zoning, v.VerticalProfile)
}
