package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ironsheep/digit-ocr/internal/config"
	"github.com/ironsheep/digit-ocr/internal/evaluate"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("digit-ocr %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("digit-ocr", flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "digit-ocr - nearest-neighbor recognition of handwritten digits")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: digit-ocr [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Classifies every image of the directory against all the others and prints")
		fmt.Fprintln(out, "a confusion matrix. The first character of each file name is its label.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Environment variables:")
		fmt.Fprintln(out, "  DIGIT_OCR_LOG_LEVEL=debug    Log every prediction")
	}

	cfgPath := fs.String("config", "digit-ocr.json", "JSON configuration file (optional)")
	dir := fs.String("dir", "", "directory of labeled images")
	resolution := fs.Int("resolution", 0, "side of the binary matrix, a multiple of 4")
	threshold := fs.Int("threshold", 0, "luminance below which a pixel is ink (1-255)")
	filter := fs.String("filter", "", "resize filter: nearest, box, linear, catmullrom, lanczos")
	formats := fs.String("formats", "", "comma separated image formats to include")
	crop := fs.Bool("crop", false, "crop each image to its ink before resizing")
	baseline := fs.Bool("baseline", false, "also report a Tesseract confusion matrix")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	writeConfig := fs.String("write-config", "", "write the effective configuration to this file and exit")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "digit-ocr: %v\n", err)
		return 1
	}

	if lvl := os.Getenv("DIGIT_OCR_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
	// Flags win over the environment and the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = *dir
		case "resolution":
			cfg.Resolution = *resolution
		case "threshold":
			cfg.Threshold = *threshold
		case "filter":
			cfg.Filter = *filter
		case "formats":
			cfg.Formats = splitList(*formats)
		case "crop":
			cfg.CropToInk = *crop
		case "baseline":
			cfg.Baseline = *baseline
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "digit-ocr: %v\n", err)
		return 2
	}
	log := logger.With().Str("component", "cli").Logger()

	if *writeConfig != "" {
		if err := cfg.Validate(); err != nil {
			log.Error().Err(err).Msg("refusing to write invalid configuration")
			return 2
		}
		if err := cfg.Save(*writeConfig); err != nil {
			log.Error().Err(err).Msg("failed to write configuration")
			return 1
		}
		log.Info().Str("path", *writeConfig).Msg("configuration written")
		return 0
	}

	log.Debug().Str("version", Version).Str("commit", GitCommit).Msg("digit-ocr starting")

	report, err := evaluate.Run(cfg, logger)
	if err != nil {
		log.Error().Err(err).Msg("recognition run failed")
		return 1
	}

	if _, err := report.WriteTo(os.Stdout); err != nil {
		log.Error().Err(err).Msg("failed to write report")
		return 1
	}
	return 0
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
