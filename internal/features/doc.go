// Package features computes the handcrafted shape descriptors used to tell
// handwritten digits apart.
//
// Every descriptor works on a BinaryMatrix: a square grid where 0 marks an
// ink pixel and 1 marks background. The matrix is produced by the image
// pipeline in the imaging package and is never modified here.
//
// # Descriptors
//
//   - Isoperimeter: perimeter / (4π · surface), a single compactness ratio
//   - Zoning: ink counts over a 4x4 partition of the matrix (16 values)
//   - VerticalProfile: ink count of every row (one value per row)
//
// Extract bundles the three into a FeatureVector.
//
// # Coordinate System
//
// Cells are addressed as (row, col) with (0, 0) at the top-left corner. Rows
// grow downward and columns grow rightward. Neighbor checks use
// 4-connectivity and never wrap around the matrix edges.
//
// # Error Handling
//
// Functions return sentinel errors that callers match with errors.Is:
//   - ErrDegenerateInput when a matrix contains no ink at all
//   - ErrZoneSize when the side length is not divisible by the zone grid
//   - ErrEmptyMatrix, ErrNotSquare and ErrInvalidCell from NewBinaryMatrix
package features
