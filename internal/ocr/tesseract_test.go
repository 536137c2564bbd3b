//go:build cgo

package ocr

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// digitImage draws digit with basicfont and scales it up so Tesseract has
// enough pixels to work with.
func digitImage(digit, scale int) image.Image {
	const w, h = 9, 15
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(1, 12),
	}
	d.DrawString(string(rune('0' + digit)))

	big := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		for x := 0; x < w*scale; x++ {
			big.Set(x, y, small.At(x/scale, y/scale))
		}
	}
	return big
}

func newReaderOrSkip(t *testing.T) *Reader {
	t.Helper()
	r, err := NewReader()
	if err != nil {
		t.Skipf("tesseract not usable: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestReader_Version(t *testing.T) {
	r := newReaderOrSkip(t)
	assert.NotEmpty(t, r.Version())
}

func TestReader_ReadDigit(t *testing.T) {
	r := newReaderOrSkip(t)

	correct := 0
	for d := 0; d <= 9; d++ {
		got, err := r.ReadDigit(digitImage(d, 6))
		if errors.Is(err, ErrNoDigit) {
			continue
		}
		if err != nil {
			t.Skipf("tesseract failed: %v", err)
		}
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 9)
		if got == d {
			correct++
		}
	}
	t.Logf("tesseract read %d of 10 bitmap digits", correct)
}
