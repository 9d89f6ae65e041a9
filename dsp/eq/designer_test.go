package eq

import (
	"math"
	"testing"

	"github.com/cwbudde/simple-eq/dsp/filter/design"
)

func scenarioSettings() Settings {
	return Settings{
		LowCutFreq:   100,
		LowCutSlope:  Slope24,
		PeakFreq:     1000,
		PeakGainDB:   6,
		PeakQuality:  1,
		HighCutFreq:  10000,
		HighCutSlope: Slope12,
	}
}

func TestDesignFilters_Deterministic(t *testing.T) {
	for _, sr := range []float64{44100, 48000, 96000} {
		for _, slope := range Slopes {
			s := scenarioSettings()
			s.LowCutSlope = slope
			s.HighCutSlope = slope
			s.PeakQuality = 3.3
			s.PeakGainDB = -7.5

			a := DesignFilters(s, sr)
			b := DesignFilters(s, sr)

			if a != b {
				t.Fatalf("sr=%v slope=%v: repeated designs differ", sr, slope)
			}
		}
	}
}

func TestDesignFilters_SectionCounts(t *testing.T) {
	for _, slope := range Slopes {
		s := DefaultSettings()
		s.LowCutSlope = slope
		s.HighCutSlope = Slope48 - slope

		d := DesignFilters(s, 48000)

		if d.LowCutSections != slope.Sections() {
			t.Fatalf("slope %v: low cut sections=%d", slope, d.LowCutSections)
		}

		if d.HighCutSections != (Slope48 - slope).Sections() {
			t.Fatalf("slope %v: high cut sections=%d", Slope48-slope, d.HighCutSections)
		}

		if !d.Valid() {
			t.Fatalf("slope %v: design invalid", slope)
		}
	}
}

func TestDesignFilters_SteepestSlopeUsesEverySection(t *testing.T) {
	s := DefaultSettings()
	s.LowCutFreq = 250
	s.LowCutSlope = Slope48
	s.HighCutFreq = 6000
	s.HighCutSlope = Slope48

	d := DesignFilters(s, 48000)
	wantLow := design.ButterworthHP(250, 8, 48000)
	wantHigh := design.ButterworthLP(6000, 8, 48000)

	for i := range MaxStages {
		if d.LowCut[i] != wantLow[i] {
			t.Fatalf("low cut stage %d: %#v, want %#v", i, d.LowCut[i], wantLow[i])
		}

		if d.HighCut[i] != wantHigh[i] {
			t.Fatalf("high cut stage %d: %#v, want %#v", i, d.HighCut[i], wantHigh[i])
		}
	}

	if d.LowCut[2] == d.LowCut[3] {
		t.Fatal("stages 2 and 3 share coefficients")
	}
}

func TestDesignFilters_BandsAtCutoff(t *testing.T) {
	sr := 48000.0
	s := DefaultSettings()
	s.LowCutFreq = 200
	s.HighCutFreq = 5000
	s.HighCutSlope = Slope36

	d := DesignFilters(s, sr)

	var low, high float64
	for _, c := range d.LowCutCoefficients() {
		low += c.MagnitudeDB(200, sr)
	}

	for _, c := range d.HighCutCoefficients() {
		high += c.MagnitudeDB(5000, sr)
	}

	if math.Abs(low+3.0103) > 0.01 || math.Abs(high+3.0103) > 0.01 {
		t.Fatalf("cutoff magnitudes low=%.3f high=%.3f, want -3.01", low, high)
	}
}

func TestDesignFilters_PeakDominatesCenter(t *testing.T) {
	d := DesignFilters(scenarioSettings(), 44100)

	if db := d.MagnitudeDB(1000, 44100); math.Abs(db-6) > 0.01 {
		t.Fatalf("magnitude at 1 kHz = %.4f dB, want +6", db)
	}
}

func TestDesignFilters_ReportsClamp(t *testing.T) {
	s := DefaultSettings()
	s.PeakGainDB = 20000

	d := DesignFilters(s, 48000)
	if !d.Clamped {
		t.Fatal("expected Clamped")
	}

	if d.Settings.PeakGainDB != MaxGainDB {
		t.Fatalf("sanitized gain %v", d.Settings.PeakGainDB)
	}

	if !d.Valid() {
		t.Fatal("clamped design should still be valid")
	}
}

func TestDesign_InvalidSampleRate(t *testing.T) {
	for _, sr := range []float64{0, -44100, math.NaN(), 30} {
		if d := DesignFilters(DefaultSettings(), sr); d.Valid() {
			t.Fatalf("sr=%v: design unexpectedly valid", sr)
		}
	}

	var zero Design
	if zero.Valid() {
		t.Fatal("zero Design reported valid")
	}
}
