package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createInMemoryImage creates a uniform RGBA image.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// fillRect paints r on img with c.
func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// createTestImage writes a uniform PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, name string, width, height int, c color.Color) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, createInMemoryImage(width, height, c)))
	return path
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	require.NotNil(t, cache)
	assert.NotNil(t, cache.images)
	assert.Zero(t, cache.Len())
}

func TestImageCache_Load(t *testing.T) {
	path := createTestImage(t, "3_001.png", 20, 10, color.White)
	cache := NewImageCache()

	img, err := cache.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
	assert.Equal(t, 1, cache.Len())

	// A second load is served from the cache even if the file is gone.
	require.NoError(t, os.Remove(path))
	again, err := cache.Load(path)
	require.NoError(t, err)
	assert.Same(t, img, again)
}

func TestImageCache_LoadMissing(t *testing.T) {
	cache := NewImageCache()
	_, err := cache.Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
	assert.Zero(t, cache.Len())
}

func TestImageCache_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1_bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	_, err := NewImageCache().Load(path)
	assert.ErrorContains(t, err, "failed to open image")
}

func TestImageCache_EvictAndClear(t *testing.T) {
	a := createTestImage(t, "1.png", 4, 4, color.White)
	b := createTestImage(t, "2.png", 4, 4, color.Black)

	cache := NewImageCache()
	_, err := cache.Load(a)
	require.NoError(t, err)
	_, err = cache.Load(b)
	require.NoError(t, err)
	require.Equal(t, 2, cache.Len())

	cache.Evict(a)
	assert.Equal(t, 1, cache.Len())
	cache.Evict("never-loaded.png")
	assert.Equal(t, 1, cache.Len())

	cache.Clear()
	assert.Zero(t, cache.Len())
}

func TestImageCache_Concurrent(t *testing.T) {
	path := createTestImage(t, "5.png", 8, 8, color.Black)
	cache := NewImageCache()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Load(path)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, cache.Len())
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"1.png", "png", false},
		{"dir/2.PNG", "png", false},
		{"3.jpg", "jpeg", false},
		{"4.jpeg", "jpeg", false},
		{"5.tif", "tiff", false},
		{"6.bmp", "bmp", false},
		{"7.gif", "gif", false},
		{"8.txt", "", true},
		{"9", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
