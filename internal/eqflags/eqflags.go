// Package eqflags registers the EQ control flags shared by the commands and
// turns them, together with an optional preset file, into a parameter store.
package eqflags

import (
	"flag"
	"fmt"

	"github.com/cwbudde/simple-eq/dsp/eq"
	"github.com/cwbudde/simple-eq/param"
	"github.com/cwbudde/simple-eq/preset"
)

// Values holds the parsed control flags.
type Values struct {
	fs *flag.FlagSet

	Preset       string
	LowCutFreq   float64
	LowCutSlope  int
	PeakFreq     float64
	PeakGainDB   float64
	PeakQuality  float64
	HighCutFreq  float64
	HighCutSlope int
}

// Register defines the control flags on fs with the EQ defaults.
func Register(fs *flag.FlagSet) *Values {
	def := eq.DefaultSettings()
	v := &Values{fs: fs}

	fs.StringVar(&v.Preset, "preset", "", "preset JSON file; flags given explicitly override it")
	fs.Float64Var(&v.LowCutFreq, "low-cut", def.LowCutFreq, "low-cut frequency in Hz")
	fs.IntVar(&v.LowCutSlope, "low-slope", def.LowCutSlope.DBPerOctave(), "low-cut slope in dB/oct (12, 24, 36, 48)")
	fs.Float64Var(&v.PeakFreq, "peak-freq", def.PeakFreq, "peak frequency in Hz")
	fs.Float64Var(&v.PeakGainDB, "peak-gain", def.PeakGainDB, "peak gain in dB")
	fs.Float64Var(&v.PeakQuality, "peak-q", def.PeakQuality, "peak quality")
	fs.Float64Var(&v.HighCutFreq, "high-cut", def.HighCutFreq, "high-cut frequency in Hz")
	fs.IntVar(&v.HighCutSlope, "high-slope", def.HighCutSlope.DBPerOctave(), "high-cut slope in dB/oct (12, 24, 36, 48)")

	return v
}

// Settings loads the preset (if any) and applies the explicitly set flags
// on top. Must be called after fs.Parse.
func (v *Values) Settings() (eq.Settings, error) {
	s := eq.DefaultSettings()

	if v.Preset != "" {
		var err error
		if s, err = preset.LoadJSON(v.Preset); err != nil {
			return s, fmt.Errorf("load preset: %w", err)
		}
	}

	var f preset.File

	v.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "low-cut":
			f.LowCutFreq = &v.LowCutFreq
		case "low-slope":
			f.LowCutSlope = &v.LowCutSlope
		case "peak-freq":
			f.PeakFreq = &v.PeakFreq
		case "peak-gain":
			f.PeakGainDB = &v.PeakGainDB
		case "peak-q":
			f.PeakQuality = &v.PeakQuality
		case "high-cut":
			f.HighCutFreq = &v.HighCutFreq
		case "high-slope":
			f.HighCutSlope = &v.HighCutSlope
		}
	})

	if err := preset.ApplyFile(&s, &f); err != nil {
		return s, fmt.Errorf("flags: %w", err)
	}

	return s, nil
}

// Store returns a parameter store holding Settings.
func (v *Values) Store() (*param.Store, error) {
	s, err := v.Settings()
	if err != nil {
		return nil, err
	}

	store := param.NewStore()
	store.Apply(s)

	return store, nil
}
