// Command eq-response prints the magnitude response of the equalizer for a
// set of control values, both analytic (from the designed coefficients) and
// measured (FFT of the rendered impulse response).
//
// Usage:
//
//	eq-response [flags]
//
// Examples:
//
//	eq-response -peak-freq 1000 -peak-gain 6
//	eq-response -rate 44100 -low-cut 100 -low-slope 48 -points 61
//	eq-response -preset vocal.json
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/simple-eq/dsp/eq"
	"github.com/cwbudde/simple-eq/internal/eqflags"
	"github.com/cwbudde/simple-eq/measure/response"
	"github.com/cwbudde/simple-eq/param"
)

const (
	defaultPoints  = 31
	defaultFFTSize = 16384
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("eq-response", flag.ContinueOnError)
	controls := eqflags.Register(fs)
	rate := fs.Float64("rate", 48000, "sample rate in Hz")
	points := fs.Int("points", defaultPoints, "number of log-spaced frequencies between 20 Hz and the upper limit")
	fftSize := fs.Int("fft", defaultFFTSize, "FFT size for the measured response (power of two)")
	measured := fs.Bool("measured", true, "include the FFT-measured response")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: eq-response [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Prints the EQ magnitude response in dB.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !(*rate > 0) || math.IsInf(*rate, 0) {
		return fmt.Errorf("sample rate must be positive, got %v", *rate)
	}

	if *points < 2 {
		return fmt.Errorf("need at least 2 points, got %d", *points)
	}

	store, err := controls.Store()
	if err != nil {
		return err
	}

	settings := store.Settings()

	d := eq.DesignFilters(settings, *rate)
	if !d.Valid() {
		return fmt.Errorf("no valid filter design at %v Hz", *rate)
	}

	chain := eq.NewMonoChain()
	chain.Apply(&d)

	var spec *response.Spectrum

	if *measured {
		ir := response.ImpulseResponse(chain, *fftSize)

		s, err := response.NewSpectrum(ir, *rate, *fftSize)
		if err != nil {
			return fmt.Errorf("measure response: %w", err)
		}

		spec = &s
	}

	printSettings(stdout, store, d.Clamped)

	return printTable(stdout, chain, spec, *rate, logSpaced(eq.MinFrequency, eq.FrequencyLimit(*rate), *points))
}

func printSettings(w io.Writer, store *param.Store, clamped bool) {
	for _, p := range store.Params() {
		fmt.Fprintf(w, "%-14s %s\n", p.Name()+":", p.Format())
	}

	if clamped {
		fmt.Fprintln(w, "(some values were clamped for this sample rate)")
	}

	fmt.Fprintln(w)
}

func printTable(w io.Writer, chain *eq.MonoChain, spec *response.Spectrum, sampleRate float64, freqs []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := "Freq (Hz)\tAnalytic (dB)\t"
	if spec != nil {
		header += "Measured (dB)\tDiff (dB)\t"
	}

	if _, err := fmt.Fprintln(tw, header); err != nil {
		return err
	}

	for _, f := range freqs {
		analytic := chain.MagnitudeDB(f, sampleRate)
		row := fmt.Sprintf("%.1f\t%.2f\t", f, analytic)

		if spec != nil {
			m := spec.MagnitudeDBAt(f)
			row += fmt.Sprintf("%.2f\t%.3f\t", m, m-analytic)
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

// logSpaced returns n frequencies from lo to hi inclusive, evenly spaced on
// a log axis.
func logSpaced(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	ratio := math.Log(hi / lo)

	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}

	return out
}
