package eq

import (
	"math"

	"github.com/cwbudde/simple-eq/dsp/core"
)

// Control ranges.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
	MinGainDB    = -24.0
	MaxGainDB    = 24.0
	MinQuality   = 0.1
	MaxQuality   = 10.0

	// MaxFrequencyRatio caps every band frequency at this fraction of the
	// sample rate, keeping designs clear of Nyquist.
	MaxFrequencyRatio = 0.49
)

// Settings is one snapshot of the seven user controls. It is a plain value,
// read once per block and discarded.
type Settings struct {
	LowCutFreq   float64
	LowCutSlope  Slope
	PeakFreq     float64
	PeakGainDB   float64
	PeakQuality  float64
	HighCutFreq  float64
	HighCutSlope Slope
}

// DefaultSettings returns the control defaults: both cuts fully open at
// 12 dB/oct and a flat peak at 750 Hz.
func DefaultSettings() Settings {
	return Settings{
		LowCutFreq:   MinFrequency,
		LowCutSlope:  Slope12,
		PeakFreq:     750,
		PeakGainDB:   0,
		PeakQuality:  1,
		HighCutFreq:  MaxFrequency,
		HighCutSlope: Slope12,
	}
}

// FrequencyLimit is the highest band frequency allowed at sampleRate:
// min(MaxFrequency, MaxFrequencyRatio*sampleRate), never below MinFrequency.
// An invalid sample rate yields MaxFrequency.
func FrequencyLimit(sampleRate float64) float64 {
	limit := MaxFrequency
	if sampleRate > 0 && core.IsFinite(sampleRate) {
		limit = math.Min(limit, MaxFrequencyRatio*sampleRate)
	}

	return math.Max(limit, MinFrequency)
}

// Sanitize clamps every field into its valid range for sampleRate. NaN
// fields take their default. The second result reports whether anything
// had to change.
func (s Settings) Sanitize(sampleRate float64) (Settings, bool) {
	def := DefaultSettings()
	hi := FrequencyLimit(sampleRate)

	out := Settings{
		LowCutFreq:   core.ClampFinite(s.LowCutFreq, MinFrequency, hi, def.LowCutFreq),
		LowCutSlope:  s.LowCutSlope.Clamp(),
		PeakFreq:     core.ClampFinite(s.PeakFreq, MinFrequency, hi, def.PeakFreq),
		PeakGainDB:   core.ClampFinite(s.PeakGainDB, MinGainDB, MaxGainDB, def.PeakGainDB),
		PeakQuality:  core.ClampFinite(s.PeakQuality, MinQuality, MaxQuality, def.PeakQuality),
		HighCutFreq:  core.ClampFinite(s.HighCutFreq, MinFrequency, hi, def.HighCutFreq),
		HighCutSlope: s.HighCutSlope.Clamp(),
	}

	return out, out != s
}
