package classify

import "errors"

var (
	// ErrInsufficientSamples is returned when a batch has no pair to compare.
	ErrInsufficientSamples = errors.New("classify: need at least two samples")

	// ErrShapeMismatch is returned when feature vectors of different shape
	// are compared.
	ErrShapeMismatch = errors.New("classify: feature vector shapes differ")

	// ErrBadLabel is returned when a sample ID does not start with a digit.
	ErrBadLabel = errors.New("classify: sample id does not start with a digit")

	// ErrDuplicateID is returned when two samples share an ID.
	ErrDuplicateID = errors.New("classify: duplicate sample id")

	// ErrLabelRange is returned for a label outside 0-9.
	ErrLabelRange = errors.New("classify: label out of range")
)
