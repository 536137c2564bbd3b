//go:build !cgo

package ocr

import "image"

// Reader is a placeholder for builds without cgo.
type Reader struct{}

// NewReader always returns ErrUnavailable without cgo.
func NewReader() (*Reader, error) {
	return nil, ErrUnavailable
}

// ReadDigit always returns ErrUnavailable without cgo.
func (r *Reader) ReadDigit(img image.Image) (int, error) {
	return 0, ErrUnavailable
}

// Version returns an empty string without cgo.
func (r *Reader) Version() string {
	return ""
}

// Close does nothing without cgo.
func (r *Reader) Close() error {
	return nil
}
