package features

import "errors"

var (
	// ErrDegenerateInput is returned when a matrix holds no ink pixel, which
	// leaves the isoperimetric ratio undefined.
	ErrDegenerateInput = errors.New("features: matrix contains no ink")

	// ErrZoneSize is returned when the matrix side cannot be split into
	// ZoneGrid equal zones.
	ErrZoneSize = errors.New("features: side length not divisible by zone grid")

	// ErrEmptyMatrix is returned for a matrix with no rows.
	ErrEmptyMatrix = errors.New("features: empty matrix")

	// ErrNotSquare is returned when a row length differs from the row count.
	ErrNotSquare = errors.New("features: matrix is not square")

	// ErrInvalidCell is returned for a cell value other than Ink or Background.
	ErrInvalidCell = errors.New("features: cell value must be 0 or 1")
)
