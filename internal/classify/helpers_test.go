package classify

import (
	"github.com/ironsheep/digit-ocr/internal/features"
)

// vec builds a feature vector with a 4-element zoning part and a 3-element
// profile part, enough to exercise every distance term.
func vec(iso float64, zoning, profile []float64) features.FeatureVector {
	return features.FeatureVector{
		Isoperimeter:    iso,
		Zoning:          zoning,
		VerticalProfile: profile,
	}
}

// flat returns a vector whose parts are all filled with v.
func flat(v float64) features.FeatureVector {
	return vec(v, []float64{v, v, v, v}, []float64{v, v, v})
}
