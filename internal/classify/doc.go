// Package classify labels digit samples by their nearest neighbor within a
// batch and tallies the outcome in a confusion matrix.
//
// There is no training step: every sample is compared against all other
// samples of the same batch with Distance, and takes the label of the closest
// one. A batch of n samples costs n·(n-1) distance evaluations, which is fine
// for offline evaluation of a few hundred images.
//
// # Determinism
//
// NewBatch orders samples by ID. Classify walks that order and replaces its
// current best candidate only on a strictly smaller distance, so on an exact
// tie the candidate met first wins and repeated runs give the same matrix.
//
// # Error Handling
//
// Any error aborts the run and no partial result is returned:
//   - ErrInsufficientSamples for batches with fewer than two samples
//   - ErrShapeMismatch when two feature vectors have different part lengths
//   - ErrBadLabel, ErrDuplicateID and ErrLabelRange for malformed input
package classify
