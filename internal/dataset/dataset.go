// Package dataset enumerates a directory of labeled digit images and turns
// the usable ones into binary matrices.
//
// A file takes part in a run when:
//   - it is a regular file
//   - its name does not start with '.', '+' or '-' (hidden or set aside)
//   - its extension maps to one of the configured formats
//   - the first character of its name is a digit, the ground-truth label
//
// Files that fail to decode are logged and left out; the classifier never
// sees them.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ironsheep/digit-ocr/internal/classify"
	"github.com/ironsheep/digit-ocr/internal/features"
	"github.com/ironsheep/digit-ocr/internal/imaging"
)

// Entry is one image file selected for a run.
type Entry struct {
	// ID is the file name, unique within the directory.
	ID string

	// Path is the full path to the file.
	Path string

	// Label is the digit named by the first character of ID.
	Label int

	// Format is the image format implied by the extension, e.g. "png".
	Format string
}

// skipPrefixes mark files that are hidden or deliberately set aside.
var skipPrefixes = map[byte]bool{'.': true, '+': true, '-': true}

// Scan lists the files of dir that follow the naming convention, in name
// order. Symbolic links are followed.
func Scan(dir string, formats []string, logger zerolog.Logger) ([]Entry, error) {
	log := logger.With().Str("component", "dataset").Logger()

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	allowed := make(map[string]bool, len(formats))
	for _, f := range formats {
		allowed[normalizeFormat(f)] = true
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if skipPrefixes[name[0]] {
			log.Debug().Str("file", name).Msg("skipping")
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			log.Debug().Str("file", name).Msg("skipping, not a regular file")
			continue
		}

		format, err := imaging.FormatOf(path)
		if err != nil || !allowed[format] {
			log.Debug().Str("file", name).Str("format", format).Msg("skipping unsupported format")
			continue
		}

		label, err := classify.LabelFromID(name)
		if err != nil {
			log.Warn().Str("file", name).Msg("file name does not start with a digit label, skipping")
			continue
		}

		entries = append(entries, Entry{ID: name, Path: path, Label: label, Format: format})
	}

	return entries, nil
}

// Load decodes and binarizes every entry. Entries whose image cannot be
// read are logged and omitted from the result; invalid options abort.
func Load(entries []Entry, cache *imaging.ImageCache, opts imaging.Options, logger zerolog.Logger) (map[string]*features.BinaryMatrix, error) {
	log := logger.With().Str("component", "dataset").Logger()

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	matrices := make(map[string]*features.BinaryMatrix, len(entries))
	for _, e := range entries {
		img, err := cache.Load(e.Path)
		if err != nil {
			log.Warn().Err(err).Str("file", e.ID).Msg("unreadable image, skipping")
			continue
		}

		m, err := imaging.Binarize(img, opts)
		if err != nil {
			log.Warn().Err(err).Str("file", e.ID).Msg("cannot binarize image, skipping")
			cache.Evict(e.Path)
			continue
		}
		matrices[e.ID] = m
	}

	return matrices, nil
}

// normalizeFormat folds the aliases accepted in configuration onto the names
// returned by imaging.FormatOf.
func normalizeFormat(f string) string {
	f = strings.ToLower(f)
	switch f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return f
}
