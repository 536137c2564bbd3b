// Package ocr reads single digits with the Tesseract OCR engine.
//
// It serves as a reference point for the nearest-neighbor recognizer: the
// same labeled images are handed to Tesseract, restricted to the characters
// 0-9 and to single-character page segmentation, and the answers are tallied
// in their own confusion matrix.
//
// # Prerequisites
//
// Tesseract and its English language data must be installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng libtesseract-dev
//   - macOS: brew install tesseract
//
// The binding needs cgo. Builds with CGO_ENABLED=0 get a Reader whose
// constructor returns ErrUnavailable.
//
// # Error Handling
//
//   - ErrUnavailable when the package was built without Tesseract support
//   - ErrNoDigit when Tesseract returns text without any digit
//   - Wrapped gosseract errors for engine or language data problems
package ocr
