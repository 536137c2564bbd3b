// Package imaging turns image files into the binary matrices the feature
// extractors work on.
//
// It is a thin layer over github.com/disintegration/imaging (decoding,
// grayscale conversion, resizing, cropping) and github.com/anthonynsimon/bild
// (thresholding). Nothing here knows about digits; the package only
// guarantees that every matrix it returns is square, has the configured
// resolution and holds 0 for ink and 1 for background.
//
// # Pipeline
//
// Binarize applies the same steps to every image:
//
//  1. Flatten: composite the image over the configured background colour so
//     transparent scans behave like paper
//  2. Grayscale: convert to luminance
//  3. Crop (optional): keep only the bounding box of dark pixels
//  4. Resize: scale to Resolution x Resolution with the configured filter
//  5. Threshold: pixels darker than Threshold become ink, the rest background
//
// Resizing before thresholding lets thin strokes survive downsampling: a
// stroke that covers part of a target pixel still darkens it.
//
// # Coordinate System
//
// Matrix rows follow image X (left to right) and columns follow image Y
// (top to bottom), regardless of the source image's Bounds().Min. A row of
// the matrix is therefore one image column, and features.VerticalProfile
// counts the ink of each vertical slice of the digit.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Binarize is stateless.
//
// # Error Handling
//
// Functions return errors for:
//   - Files that cannot be opened or decoded
//   - Empty images
//   - Invalid options (non-positive resolution, unknown filter or colour)
package imaging
