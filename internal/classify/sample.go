package classify

import (
	"fmt"
	"sort"

	"github.com/ironsheep/digit-ocr/internal/features"
)

// Sample is one labeled image of a batch.
type Sample struct {
	// ID identifies the image, usually its file name. The first character
	// is the ground-truth digit.
	ID string

	// Label is the ground-truth digit, 0-9.
	Label int

	// Features are the descriptors extracted from the image.
	Features features.FeatureVector
}

// LabelFromID returns the digit encoded by the first character of id.
func LabelFromID(id string) (int, error) {
	if id == "" || id[0] < '0' || id[0] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrBadLabel, id)
	}
	return int(id[0] - '0'), nil
}

// NewSample labels a feature vector from its ID.
func NewSample(id string, v features.FeatureVector) (Sample, error) {
	label, err := LabelFromID(id)
	if err != nil {
		return Sample{}, err
	}
	return Sample{ID: id, Label: label, Features: v}, nil
}

// NewBatch turns an ID to feature vector mapping into samples sorted by ID.
func NewBatch(vectors map[string]features.FeatureVector) ([]Sample, error) {
	ids := make([]string, 0, len(vectors))
	for id := range vectors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	samples := make([]Sample, 0, len(ids))
	for _, id := range ids {
		s, err := NewSample(id, vectors[id])
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// checkIDs reports the first ID that appears twice in samples.
func checkIDs(samples []Sample) error {
	seen := make(map[string]struct{}, len(samples))
	for _, s := range samples {
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}
