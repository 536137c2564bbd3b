// Package evaluate runs a complete recognition pass over a directory of
// labeled digit images and produces the report.
//
// A run scans the directory, binarizes every usable image, extracts its
// feature vector, classifies the whole batch by nearest neighbor and, when
// asked, reads the same images with Tesseract for comparison. Any error from
// feature extraction or classification aborts the run: a partially filled
// confusion matrix is never reported.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ironsheep/digit-ocr/internal/classify"
	"github.com/ironsheep/digit-ocr/internal/config"
	"github.com/ironsheep/digit-ocr/internal/dataset"
	"github.com/ironsheep/digit-ocr/internal/features"
	"github.com/ironsheep/digit-ocr/internal/imaging"
	"github.com/ironsheep/digit-ocr/internal/ocr"
)

// Run evaluates the images in cfg.Dir.
func Run(cfg *config.Config, logger zerolog.Logger) (*Report, error) {
	log := logger.With().Str("component", "evaluate").Logger()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	opts, err := cfg.ImageOptions()
	if err != nil {
		return nil, err
	}

	entries, err := dataset.Scan(cfg.Dir, cfg.Formats, logger)
	if err != nil {
		return nil, err
	}
	log.Info().Str("dir", cfg.Dir).Int("files", len(entries)).Msg("scanned image directory")

	cache := imaging.NewImageCache()
	matrices, err := dataset.Load(entries, cache, opts, logger)
	if err != nil {
		return nil, err
	}

	vectors := make(map[string]features.FeatureVector, len(matrices))
	for id, m := range matrices {
		v, err := features.Extract(m)
		if err != nil {
			return nil, fmt.Errorf("failed to extract features of %s: %w", id, err)
		}
		vectors[id] = v
	}

	batch, err := classify.NewBatch(vectors)
	if err != nil {
		return nil, err
	}
	result, err := classify.Classify(batch)
	if err != nil {
		return nil, fmt.Errorf("failed to classify %d samples: %w", len(batch), err)
	}

	for _, p := range result.Predictions {
		log.Debug().
			Str("id", p.ID).
			Int("actual", p.Actual).
			Int("predicted", p.Predicted).
			Str("neighbor", p.Neighbor).
			Float64("distance", p.Distance).
			Msg("classified")
	}
	log.Info().
		Int("samples", result.Matrix.Total()).
		Int("correct", result.Matrix.Correct()).
		Int("rate", result.Matrix.Rate()).
		Msg("nearest-neighbor run complete")

	report := &Report{
		Scanned: len(entries),
		Skipped: len(entries) - len(matrices),
		Result:  result,
	}

	if cfg.Baseline {
		loaded := make([]dataset.Entry, 0, len(matrices))
		for _, e := range entries {
			if _, ok := matrices[e.ID]; ok {
				loaded = append(loaded, e)
			}
		}

		baseline, err := RunBaseline(loaded, cache, logger)
		if err != nil {
			log.Warn().Err(err).Msg("tesseract baseline skipped")
		} else {
			report.Baseline = baseline
		}
	}

	log.Debug().Int("images", cache.Len()).Msg("releasing image cache")
	cache.Clear()

	return report, nil
}

// Baseline is the outcome of reading every image with Tesseract.
type Baseline struct {
	Version string
	Matrix  *classify.ConfusionMatrix

	// Unrecognized counts images for which Tesseract returned no digit;
	// they are not part of Matrix.
	Unrecognized int
}

// RunBaseline reads each entry's image with Tesseract and tallies the
// answers against the labels.
func RunBaseline(entries []dataset.Entry, cache *imaging.ImageCache, logger zerolog.Logger) (*Baseline, error) {
	log := logger.With().Str("component", "ocr").Logger()

	reader, err := ocr.NewReader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	b := &Baseline{Version: reader.Version(), Matrix: classify.NewConfusionMatrix()}
	for _, e := range entries {
		img, err := cache.Load(e.Path)
		if err != nil {
			return nil, err
		}

		digit, err := reader.ReadDigit(img)
		if errors.Is(err, ocr.ErrNoDigit) {
			log.Debug().Str("id", e.ID).Msg("tesseract found no digit")
			b.Unrecognized++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.ID, err)
		}

		log.Debug().Str("id", e.ID).Int("actual", e.Label).Int("predicted", digit).Msg("tesseract read")
		if err := b.Matrix.Add(digit, e.Label); err != nil {
			return nil, err
		}
	}
	return b, nil
}
