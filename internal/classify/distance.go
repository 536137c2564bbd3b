package classify

import (
	"fmt"
	"math"

	"github.com/ironsheep/digit-ocr/internal/features"
)

// Distance returns the dissimilarity between two feature vectors.
//
// The isoperimeter term contributes its squared difference as is. The zoning
// and vertical profile terms each contribute the mean of their squared
// element differences, so a part does not outweigh the others just because
// it has more elements. The result is the square root of the total.
//
// Vectors whose Zoning or VerticalProfile lengths differ return
// ErrShapeMismatch.
func Distance(a, b features.FeatureVector) (float64, error) {
	d := a.Isoperimeter - b.Isoperimeter
	total := d * d

	for _, part := range [][2][]float64{
		{a.Zoning, b.Zoning},
		{a.VerticalProfile, b.VerticalProfile},
	} {
		mean, err := meanSquaredDiff(part[0], part[1])
		if err != nil {
			return 0, err
		}
		total += mean
	}

	return math.Sqrt(total), nil
}

// meanSquaredDiff returns the mean of (x[i]-y[i])². Empty parts contribute
// nothing.
func meanSquaredDiff(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d vs %d elements", ErrShapeMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return 0, nil
	}

	var sum float64
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return sum / float64(len(x)), nil
}
