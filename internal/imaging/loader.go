package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// ImageCache provides thread-safe caching of decoded images keyed by path.
//
// An evaluation run decodes every image once for feature extraction and may
// need it again for the Tesseract baseline; the cache keeps the second read
// off the disk.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("images-base/3_001.png")
//	if err != nil {
//	    return err
//	}
//	defer cache.Evict("images-base/3_001.png")
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Decoding goes through imaging.Open with EXIF auto-orientation so phone
// photos of digits come out upright. PNG, JPEG, GIF, BMP and TIFF are
// supported.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Load decodes the image at path without caching it.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// FormatOf returns the image format implied by the file extension, as a
// lower-case name such as "png" or "jpeg".
func FormatOf(path string) (string, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "", fmt.Errorf("unknown image format for %s: %w", filepath.Base(path), err)
	}
	return strings.ToLower(f.String()), nil
}
