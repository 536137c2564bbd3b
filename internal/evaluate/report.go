package evaluate

import (
	"fmt"
	"io"

	"github.com/ironsheep/digit-ocr/internal/classify"
)

// Report is everything a run prints.
type Report struct {
	// Scanned is the number of files that matched the naming convention and
	// Skipped the number of those that could not be decoded.
	Scanned int
	Skipped int

	Result   *classify.Result
	Baseline *Baseline
}

// WriteTo prints the nearest-neighbor confusion matrix and, when present,
// the Tesseract baseline below it.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := r.Result.Matrix.WriteTo(w)
	if err != nil || r.Baseline == nil {
		return n, err
	}

	k, err := fmt.Fprintf(w, "\nTesseract %s baseline:\n", r.Baseline.Version)
	n += int64(k)
	if err != nil {
		return n, err
	}

	m, err := r.Baseline.Matrix.WriteTo(w)
	n += m
	if err != nil {
		return n, err
	}

	k, err = fmt.Fprintf(w, "Tesseract found no digit in %d images.\n", r.Baseline.Unrecognized)
	n += int64(k)
	return n, err
}
