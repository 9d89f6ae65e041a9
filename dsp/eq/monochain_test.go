package eq

import (
	"math"
	"testing"

	"github.com/cwbudde/simple-eq/dsp/filter/biquad"
	"github.com/cwbudde/simple-eq/dsp/filter/design"
	"github.com/cwbudde/simple-eq/internal/testutil"
)

func TestNewMonoChain_Transparent(t *testing.T) {
	m := NewMonoChain()
	in := testutil.DeterministicNoise(3, 1, 256)

	for i, x := range in {
		if y := m.ProcessSample(x); y != x {
			t.Fatalf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestMonoChain_ApplyConfiguresBands(t *testing.T) {
	s := scenarioSettings()
	d := DesignFilters(s, 44100)

	m := NewMonoChain()
	m.Apply(&d)

	if m.LowCut.Order() != Slope24.Sections() || m.HighCut.Order() != Slope12.Sections() {
		t.Fatalf("orders low=%d high=%d", m.LowCut.Order(), m.HighCut.Order())
	}

	if m.Peak.Coefficients != d.Peak || m.Peak.Bypassed() {
		t.Fatal("peak not loaded")
	}

	for _, f := range []float64{50, 100, 1000, 10000, 15000} {
		if got, want := m.MagnitudeDB(f, 44100), d.MagnitudeDB(f, 44100); math.Abs(got-want) > 1e-9 {
			t.Fatalf("%v Hz: chain %.6f dB, design %.6f dB", f, got, want)
		}
	}
}

func TestMonoChain_ApplyKeepsHistory(t *testing.T) {
	d := DesignFilters(scenarioSettings(), 44100)
	m := NewMonoChain()
	m.Apply(&d)

	for range 32 {
		m.ProcessSample(0.5)
	}

	before := m.Peak.State()

	s := scenarioSettings()
	s.PeakGainDB = -3
	d2 := DesignFilters(s, 44100)
	m.Apply(&d2)

	if m.Peak.State() != before {
		t.Fatal("Apply reset peak history")
	}
}

func TestPeakZeroGainIsIdentity(t *testing.T) {
	in := testutil.DeterministicNoise(11, 1, 1024)

	for _, f := range []float64{20, 750, 5000, 19000} {
		for _, q := range []float64{0.1, 1, 10} {
			s := biquad.NewSection(design.Peak(f, 0, q, 44100))

			for i, x := range in {
				if y := s.ProcessSample(x); math.Abs(y-x) > 1e-12 {
					t.Fatalf("f=%v q=%v sample %d: got %v, want %v", f, q, i, y, x)
				}
			}
		}
	}
}

func TestMonoChain_ProcessBlockMatchesSample(t *testing.T) {
	s := scenarioSettings()
	s.LowCutSlope = Slope36
	s.HighCutSlope = Slope48
	d := DesignFilters(s, 48000)

	ref := NewMonoChain()
	blk := NewMonoChain()
	ref.Apply(&d)
	blk.Apply(&d)

	in := testutil.DeterministicNoise(5, 1, 1000)
	want := make([]float64, len(in))

	for i, x := range in {
		want[i] = ref.ProcessSample(x)
	}

	got := append([]float64(nil), in...)
	blk.ProcessBlock(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}
