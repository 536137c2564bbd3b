//go:build cgo

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// Reader wraps one Tesseract client configured for single digits. It is
// not safe for concurrent use.
type Reader struct {
	client *gosseract.Client
}

// NewReader creates a Tesseract client restricted to digits.
func NewReader() (*Reader, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetWhitelist(Whitelist); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_CHAR); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	return &Reader{client: client}, nil
}

// ReadDigit returns the digit Tesseract sees in img.
func (r *Reader) ReadDigit(img image.Image) (int, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, pad(img)); err != nil {
		return 0, fmt.Errorf("failed to encode image: %w", err)
	}

	if err := r.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := r.client.Text()
	if err != nil {
		return 0, fmt.Errorf("OCR failed: %w", err)
	}
	return firstDigit(text)
}

// Version returns the version of the linked Tesseract library.
func (r *Reader) Version() string {
	return r.client.Version()
}

// Close releases the Tesseract client.
func (r *Reader) Close() error {
	return r.client.Close()
}
