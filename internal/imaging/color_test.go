package imaging

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex     string
		want    color.RGBA
		wantErr bool
	}{
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}, false},
		{"ffffff", color.RGBA{255, 255, 255, 255}, false},
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{" #FF0000 ", color.RGBA{255, 0, 0, 255}, false},
		{"", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ParseColor(tt.hex)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, color.RGBAModel.Convert(got))
		})
	}
}

func TestLuminance(t *testing.T) {
	assert.Equal(t, uint8(255), luminance(color.White))
	assert.Equal(t, uint8(0), luminance(color.Black))
	assert.Equal(t, uint8(115), luminance(color.Gray{Y: 115}))
	assert.Equal(t, uint8(0), luminance(color.NRGBA{255, 255, 255, 0}))

	// Pure green is bright to the eye (L* about 88) but its luma is 150.
	assert.Equal(t, uint8(150), luminance(color.RGBA{0, 255, 0, 255}))
}
