package ocr

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	// ErrUnavailable is returned when Tesseract support was not compiled in.
	ErrUnavailable = errors.New("ocr: tesseract support not available in this build")

	// ErrNoDigit is returned when the recognized text holds no digit.
	ErrNoDigit = errors.New("ocr: no digit recognized")
)

// Whitelist restricts Tesseract to the characters a digit image can hold.
const Whitelist = "0123456789"

// padFraction is the white margin added around an image before it is handed
// to Tesseract, as a fraction of its larger side. Tesseract misses glyphs
// that touch the image border.
const padFraction = 0.25

// pad centers img on a white canvas with a padFraction margin.
func pad(img image.Image) *image.NRGBA {
	b := img.Bounds()
	side := b.Dx()
	if b.Dy() > side {
		side = b.Dy()
	}
	margin := int(float64(side) * padFraction)
	if margin < 1 {
		margin = 1
	}

	canvas := imaging.New(b.Dx()+2*margin, b.Dy()+2*margin, color.White)
	return imaging.Overlay(canvas, img, image.Pt(margin, margin), 1.0)
}

// firstDigit returns the value of the first ASCII digit in text.
func firstDigit(text string) (int, error) {
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return int(r - '0'), nil
		}
	}
	return 0, ErrNoDigit
}
