package imaging

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#RRGGBB" or "#RGB" hex colour. The leading '#' is
// optional.
func ParseColor(hex string) (color.Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return nil, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c.Clamped(), nil
}

// luminance returns the Rec.601 luma of c in 0-255, the same gray value the
// grayscale and threshold steps of Binarize compare against. Transparency is
// premultiplied, so a see-through colour reads as dark: flattening onto it
// would leave black pixels behind.
func luminance(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}
