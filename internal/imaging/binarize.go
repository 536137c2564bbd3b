package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/digit-ocr/internal/features"
)

var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("imaging: empty image")

	// ErrBadResolution is returned for a non-positive target resolution.
	ErrBadResolution = errors.New("imaging: resolution must be positive")

	// ErrDarkBackground is returned when the flatten colour would itself be
	// read as ink.
	ErrDarkBackground = errors.New("imaging: background darker than threshold")
)

// Options controls Binarize.
type Options struct {
	// Resolution is the side length of the resulting matrix.
	Resolution int

	// Threshold is the luminance (0-255) below which a pixel counts as ink.
	Threshold uint8

	// Filter is the resampling filter used when resizing.
	Filter imaging.ResampleFilter

	// Background is composited under the image before anything else, so
	// transparent pixels read as paper.
	Background color.Color

	// CropToInk crops to the ink bounding box before resizing.
	CropToInk bool
}

// DefaultOptions returns the settings used for the handwritten digit set: a
// 44x44 matrix, threshold 120, bilinear resizing and a white background.
func DefaultOptions() Options {
	return Options{
		Resolution: 44,
		Threshold:  120,
		Filter:     imaging.Linear,
		Background: color.White,
	}
}

// Validate checks that the options can produce a matrix.
func (o Options) Validate() error {
	if o.Resolution <= 0 {
		return fmt.Errorf("%w: %d", ErrBadResolution, o.Resolution)
	}
	if o.Background != nil && luminance(o.Background) < o.Threshold {
		return ErrDarkBackground
	}
	return nil
}

// Binarize converts img to a Resolution x Resolution binary matrix.
func Binarize(img image.Image, opts Options) (*features.BinaryMatrix, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	flat := imaging.Overlay(imaging.New(bounds.Dx(), bounds.Dy(), bg), img, image.Pt(0, 0), 1.0)

	gray := imaging.Grayscale(flat)
	if opts.CropToInk {
		gray = CropToInk(gray, opts.Threshold)
	}

	resized := imaging.Resize(gray, opts.Resolution, opts.Resolution, opts.Filter)
	bin := segment.Threshold(resized, opts.Threshold)

	return toMatrix(bin)
}

// toMatrix maps black pixels of a thresholded image to ink and everything
// else to background. Matrix row i holds image column x=i, so a row of the
// matrix is a vertical slice of the image.
func toMatrix(bin *image.Gray) (*features.BinaryMatrix, error) {
	b := bin.Bounds()
	rows := make([][]uint8, b.Dx())
	for x := 0; x < b.Dx(); x++ {
		rows[x] = make([]uint8, b.Dy())
		for y := 0; y < b.Dy(); y++ {
			if bin.GrayAt(b.Min.X+x, b.Min.Y+y).Y == 0 {
				rows[x][y] = features.Ink
			} else {
				rows[x][y] = features.Background
			}
		}
	}
	return features.NewBinaryMatrix(rows)
}

// ParseFilter maps a filter name to a resampling filter. Names are case
// insensitive: nearest, box, linear, catmullrom, lanczos.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return imaging.NearestNeighbor, nil
	case "box":
		return imaging.Box, nil
	case "", "linear":
		return imaging.Linear, nil
	case "catmullrom":
		return imaging.CatmullRom, nil
	case "lanczos":
		return imaging.Lanczos, nil
	default:
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resample filter: %s", name)
	}
}
