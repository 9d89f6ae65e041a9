package eq

import (
	"github.com/cwbudde/simple-eq/dsp/filter/biquad"
	"github.com/cwbudde/simple-eq/dsp/filter/design"
)

// Design is a complete coefficient set for one MonoChain. It holds fixed
// arrays only, so assigning a Design copies it entirely.
type Design struct {
	// Settings is the sanitized snapshot the design was computed from.
	Settings Settings
	// Clamped reports that Settings differs from the requested snapshot.
	Clamped bool

	LowCut          [MaxStages]biquad.Coefficients
	LowCutSections  int
	Peak            biquad.Coefficients
	HighCut         [MaxStages]biquad.Coefficients
	HighCutSections int
}

// DesignFilters computes the coefficients for s at sampleRate. It is pure:
// identical inputs give bit-identical output.
//
// The low cut is a Butterworth highpass and the high cut a Butterworth
// lowpass, each of order 2*(slope+1), i.e. slope+1 biquad sections.
func DesignFilters(s Settings, sampleRate float64) Design {
	clean, clamped := s.Sanitize(sampleRate)

	d := Design{
		Settings: clean,
		Clamped:  clamped,
		Peak:     design.Peak(clean.PeakFreq, clean.PeakGainDB, clean.PeakQuality, sampleRate),
	}

	d.LowCutSections = len(design.AppendButterworthHP(d.LowCut[:0], clean.LowCutFreq, clean.LowCutSlope.Order(), sampleRate))
	d.HighCutSections = len(design.AppendButterworthLP(d.HighCut[:0], clean.HighCutFreq, clean.HighCutSlope.Order(), sampleRate))

	return d
}

// LowCutCoefficients returns the active low-cut sections.
func (d *Design) LowCutCoefficients() []biquad.Coefficients {
	return d.LowCut[:d.LowCutSections]
}

// HighCutCoefficients returns the active high-cut sections.
func (d *Design) HighCutCoefficients() []biquad.Coefficients {
	return d.HighCut[:d.HighCutSections]
}

// Valid reports whether every active section is finite, stable and not the
// zero section designers return for out-of-range input.
func (d *Design) Valid() bool {
	if d.LowCutSections < 1 || d.LowCutSections > MaxStages ||
		d.HighCutSections < 1 || d.HighCutSections > MaxStages {
		return false
	}

	if !usable(d.Peak) {
		return false
	}

	for _, c := range d.LowCutCoefficients() {
		if !usable(c) {
			return false
		}
	}

	for _, c := range d.HighCutCoefficients() {
		if !usable(c) {
			return false
		}
	}

	return true
}

func usable(c biquad.Coefficients) bool {
	return c != (biquad.Coefficients{}) && c.IsStable()
}
