package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// InkBounds returns the smallest rectangle holding every pixel of gray whose
// red channel is below threshold. gray is expected to come from
// imaging.Grayscale, so all three channels carry the same value. ok is false
// when no pixel qualifies.
func InkBounds(gray *image.NRGBA, threshold uint8) (bounds image.Rectangle, ok bool) {
	b := gray.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := gray.Pix[(y-b.Min.Y)*gray.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4] >= threshold {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// CropToInk crops gray to a square around its ink bounding box, centred on
// the ink, so the digit fills the frame without being stretched. Images
// without ink are returned unchanged.
func CropToInk(gray *image.NRGBA, threshold uint8) *image.NRGBA {
	ink, ok := InkBounds(gray, threshold)
	if !ok {
		return gray
	}

	side := ink.Dx()
	if ink.Dy() > side {
		side = ink.Dy()
	}
	cx := ink.Min.X + ink.Dx()/2
	cy := ink.Min.Y + ink.Dy()/2
	square := image.Rect(cx-side/2, cy-side/2, cx-side/2+side, cy-side/2+side)

	// Parts of the square outside the image are padded with white so the
	// digit keeps its aspect ratio.
	canvas := imaging.New(side, side, color.White)
	visible := square.Intersect(gray.Bounds())
	return imaging.Paste(canvas, imaging.Crop(gray, visible), visible.Min.Sub(square.Min))
}
