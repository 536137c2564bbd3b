package classify

import "math"

// Prediction is the outcome for one sample.
type Prediction struct {
	// ID and Actual identify the classified sample and its true digit.
	ID     string
	Actual int

	// Neighbor is the ID of the closest other sample and Predicted its label.
	Neighbor  string
	Predicted int

	// Distance to the neighbor.
	Distance float64
}

// Correct reports whether the predicted digit matches the true one.
func (p Prediction) Correct() bool {
	return p.Predicted == p.Actual
}

// Result holds every prediction of a run, in batch order, and the confusion
// matrix they add up to.
type Result struct {
	Predictions []Prediction
	Matrix      *ConfusionMatrix
}

// Nearest returns the index of the sample closest to samples[i], ignoring i
// itself, and the distance to it. Only a strictly smaller distance replaces
// the current best, so the earliest of several equidistant samples wins.
func Nearest(samples []Sample, i int) (int, float64, error) {
	if len(samples) < 2 {
		return -1, 0, ErrInsufficientSamples
	}

	best := -1
	bestDist := math.Inf(1)
	for j := range samples {
		if j == i {
			continue
		}
		d, err := Distance(samples[i].Features, samples[j].Features)
		if err != nil {
			return -1, 0, err
		}
		if best < 0 || d < bestDist {
			best, bestDist = j, d
		}
	}
	return best, bestDist, nil
}

// Classify predicts every sample from its nearest neighbor and tallies the
// predictions in a fresh confusion matrix.
func Classify(samples []Sample) (*Result, error) {
	if len(samples) < 2 {
		return nil, ErrInsufficientSamples
	}
	if err := checkIDs(samples); err != nil {
		return nil, err
	}

	matrix := NewConfusionMatrix()
	predictions := make([]Prediction, 0, len(samples))
	for i, s := range samples {
		j, dist, err := Nearest(samples, i)
		if err != nil {
			return nil, err
		}

		p := Prediction{
			ID:        s.ID,
			Actual:    s.Label,
			Neighbor:  samples[j].ID,
			Predicted: samples[j].Label,
			Distance:  dist,
		}
		if err := matrix.Add(p.Predicted, p.Actual); err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}

	return &Result{Predictions: predictions, Matrix: matrix}, nil
}
