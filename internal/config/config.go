// Package config holds the runtime settings of a recognition run.
//
// Settings come from DefaultConfig, may be loaded from a JSON file and are
// then overridden by command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ironsheep/digit-ocr/internal/features"
	"github.com/ironsheep/digit-ocr/internal/imaging"
)

// Config holds runtime configuration for a recognition run.
type Config struct {
	// Dir is the directory holding the labeled digit images.
	Dir string `json:"dir"`

	// Image pipeline
	Resolution int      `json:"resolution"`
	Threshold  int      `json:"threshold"`
	Filter     string   `json:"filter"`
	Background string   `json:"background"`
	Formats    []string `json:"formats"`
	CropToInk  bool     `json:"crop_to_ink"`

	// Baseline also reads every image with Tesseract and reports its
	// confusion matrix next to the nearest-neighbor one.
	Baseline bool `json:"baseline"`

	LogLevel string `json:"log_level"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Dir:        "images-base/",
		Resolution: 44,
		Threshold:  120,
		Filter:     "linear",
		Background: "#FFFFFF",
		Formats:    []string{"png"},
		CropToInk:  false,
		Baseline:   false,
		LogLevel:   "info",
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return errors.New("dir must not be empty")
	}
	if c.Resolution <= 0 || c.Resolution%features.ZoneGrid != 0 {
		return fmt.Errorf("resolution must be a positive multiple of %d, got %d", features.ZoneGrid, c.Resolution)
	}
	if c.Threshold < 1 || c.Threshold > 255 {
		return fmt.Errorf("threshold must be in 1-255, got %d", c.Threshold)
	}
	if len(c.Formats) == 0 {
		return errors.New("formats must list at least one image format")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	_, err := c.ImageOptions()
	return err
}

// ImageOptions translates the pipeline settings for imaging.Binarize.
func (c *Config) ImageOptions() (imaging.Options, error) {
	filter, err := imaging.ParseFilter(c.Filter)
	if err != nil {
		return imaging.Options{}, err
	}
	bg, err := imaging.ParseColor(c.Background)
	if err != nil {
		return imaging.Options{}, err
	}

	opts := imaging.Options{
		Resolution: c.Resolution,
		Threshold:  uint8(c.Threshold),
		Filter:     filter,
		Background: bg,
		CropToInk:  c.CropToInk,
	}
	if err := opts.Validate(); err != nil {
		return imaging.Options{}, err
	}
	return opts, nil
}

// Load reads configuration from the JSON file at path on top of the
// defaults. A missing file is not an error and yields DefaultConfig().
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c as indented JSON to path.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
