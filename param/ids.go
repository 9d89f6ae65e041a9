package param

import (
	"fmt"

	"github.com/cwbudde/simple-eq/dsp/eq"
)

// ID identifies one of the equalizer controls.
type ID int

const (
	LowCutFreq ID = iota
	HighCutFreq
	PeakFreq
	PeakGain
	PeakQuality
	LowCutSlope
	HighCutSlope

	NumIDs
)

// Spec describes a control: its display name, unit, range and default.
type Spec struct {
	ID      ID
	Name    string
	Unit    string
	Range   Range
	Default float64
	Choices []string

	Format func(float64) string
	Parse  func(string) (float64, error)
}

var (
	frequencyRange = Skewed(eq.MinFrequency, eq.MaxFrequency, 1, 0.25)
	gainRange      = Linear(eq.MinGainDB, eq.MaxGainDB, 0.5)
	qualityRange   = Linear(eq.MinQuality, eq.MaxQuality, 0.05)
	slopeRange     = Linear(float64(eq.Slope12), float64(eq.Slope48), 1)
)

func slopeChoices() []string {
	labels := make([]string, len(eq.Slopes))
	for i, s := range eq.Slopes {
		labels[i] = s.String()
	}

	return labels
}

// Layout returns the specs of all controls indexed by ID.
func Layout() [NumIDs]Spec {
	def := eq.DefaultSettings()

	freq := func(id ID, name string, value float64) Spec {
		return Spec{
			ID: id, Name: name, Unit: "Hz", Range: frequencyRange, Default: value,
			Format: FrequencyFormatter, Parse: FrequencyParser,
		}
	}

	slope := func(id ID, name string, value eq.Slope) Spec {
		return Spec{
			ID: id, Name: name, Range: slopeRange, Default: float64(value), Choices: slopeChoices(),
			Format: SlopeFormatter, Parse: SlopeParser,
		}
	}

	return [NumIDs]Spec{
		LowCutFreq:  freq(LowCutFreq, "LowCut Freq", def.LowCutFreq),
		HighCutFreq: freq(HighCutFreq, "HighCut Freq", def.HighCutFreq),
		PeakFreq:    freq(PeakFreq, "Peak Freq", def.PeakFreq),
		PeakGain: {
			ID: PeakGain, Name: "Peak Gain", Unit: "dB", Range: gainRange, Default: def.PeakGainDB,
			Format: DecibelFormatter, Parse: DecibelParser,
		},
		PeakQuality: {
			ID: PeakQuality, Name: "Peak Quality", Range: qualityRange, Default: def.PeakQuality,
			Format: QualityFormatter, Parse: PlainParser,
		},
		LowCutSlope:  slope(LowCutSlope, "LowCut Slope", def.LowCutSlope),
		HighCutSlope: slope(HighCutSlope, "HighCut Slope", def.HighCutSlope),
	}
}

var names = func() [NumIDs]string {
	var out [NumIDs]string
	for i, s := range Layout() {
		out[i] = s.Name
	}

	return out
}()

// Valid reports whether id names a control.
func (id ID) Valid() bool {
	return id >= 0 && id < NumIDs
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}

	return names[id]
}
