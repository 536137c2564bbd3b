package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ironsheep/digit-ocr/internal/synth"
)

func main() {
	defaults := synth.DefaultOptions()

	out := flag.String("out", "images-base", "output directory")
	size := flag.Int("size", defaults.Size, "image side in pixels")
	perDigit := flag.Int("n", defaults.PerDigit, "images per digit")
	jitter := flag.Float64("jitter", defaults.Jitter, "amount of size/offset/weight variation, 0 for none")
	seed := flag.Int64("seed", defaults.Seed, "random seed")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "digit-synth - render a labeled digit dataset for digit-ocr")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Str("component", "digit-synth").
		Logger()

	paths, err := synth.WriteDataset(*out, synth.Options{
		Size:     *size,
		PerDigit: *perDigit,
		Jitter:   *jitter,
		Seed:     *seed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write dataset")
	}

	log.Info().Str("dir", *out).Int("images", len(paths)).Msg("dataset written")
}
