// Command simple-eq renders a WAV file through the three-band equalizer.
//
// Usage:
//
//	simple-eq [flags] input.wav output.wav
//
// Examples:
//
//	simple-eq -peak-freq 1000 -peak-gain 6 in.wav out.wav
//	simple-eq -low-cut 80 -low-slope 24 -high-cut 12000 in.wav out.wav
//	simple-eq -preset vocal.json -trim-db -3 in.wav out.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cwbudde/simple-eq/internal/eqflags"
)

const (
	defaultBlockSize = 512
	minRequiredArgs  = 2
)

var errUsage = errors.New("usage: simple-eq [flags] input.wav output.wav")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("simple-eq", flag.ContinueOnError)
	controls := eqflags.Register(fs)
	block := fs.Int("block", defaultBlockSize, "processing block size in frames")
	trimDB := fs.Float64("trim-db", 0, "output trim in dB applied after the EQ")
	verbose := fs.Bool("v", false, "verbose output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: simple-eq [flags] input.wav output.wav\n\n")
		fmt.Fprintf(fs.Output(), "Renders a 16/24/32-bit PCM WAV file through the EQ.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < minRequiredArgs {
		fs.Usage()
		return errUsage
	}

	if *block <= 0 {
		return fmt.Errorf("block size must be positive, got %d", *block)
	}

	store, err := controls.Store()
	if err != nil {
		return err
	}

	inputPath, outputPath := fs.Arg(0), fs.Arg(1)

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)

		for _, p := range store.Params() {
			log.Printf("%s: %s", p.Name(), p.Format())
		}
	}

	start := time.Now()

	stats, err := render(inputPath, outputPath, store, renderOptions{
		blockSize: *block,
		trimDB:    *trimDB,
		verbose:   *verbose,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	fmt.Fprintf(stdout, "Rendered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Fprintf(stdout, "  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.sampleRate, stats.channels, stats.bitDepth, stats.frames)
	fmt.Fprintf(stdout, "  input:  %s\n", formatLevel(stats.input.Level()))
	fmt.Fprintf(stdout, "  output: %s\n", formatLevel(stats.output.Level()))

	if stats.clampEvents > 0 || stats.rejected > 0 {
		log.Printf("settings clamped %d times, %d designs rejected", stats.clampEvents, stats.rejected)
	}

	if *verbose && elapsed > 0 && stats.sampleRate > 0 {
		log.Printf("Duration: %.2fs, Speed: %.1fx realtime",
			elapsed.Seconds(), float64(stats.frames)/float64(stats.sampleRate)/elapsed.Seconds())
	}

	return nil
}
