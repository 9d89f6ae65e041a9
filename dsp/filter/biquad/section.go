package biquad

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/simple-eq/dsp/core"
	archregistry "github.com/cwbudde/simple-eq/dsp/filter/biquad/internal/arch/registry"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Identity returns coefficients of the unity pass-through section.
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
//
// The zero value is a silent section (all coefficients zero) that is not
// bypassed.
type Section struct {
	Coefficients

	d0, d1   float64
	bypassed bool
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processCascadeImpl   archregistry.ProcessCascadeFn
	processBlockInitOnce sync.Once
)

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// SetCoefficients replaces the coefficient set as a whole. The delay-line
// state is kept so parameter changes do not restart the filter.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// SetBypassed enables or disables pass-through. While bypassed the section
// returns its input unchanged and its history stays frozen.
func (s *Section) SetBypassed(bypassed bool) {
	s.bypassed = bypassed
}

// Bypassed reports whether the section is in pass-through.
func (s *Section) Bypassed() bool {
	return s.bypassed
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	if s.bypassed {
		return x
	}

	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
// State values below 1e-30 are flushed to zero at the end of the block.
func (s *Section) ProcessBlock(buf []float64) {
	if s.bypassed || len(buf) == 0 {
		return
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	coeffs := archregistry.Coefficients{
		B0: s.B0,
		B1: s.B1,
		B2: s.B2,
		A1: s.A1,
		A2: s.A2,
	}

	d0, d1 := processBlockImpl(coeffs, s.d0, s.d1, buf)
	s.d0, s.d1 = core.FlushDenormals(d0), core.FlushDenormals(d1)
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil || entry.ProcessCascade == nil {
		panic("biquad: selected kernel missing ProcessBlock or ProcessCascade")
	}

	processBlockImpl = entry.ProcessBlock
	processCascadeImpl = entry.ProcessCascade
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	if s.bypassed {
		copy(dst, src)
		return
	}

	for i, x := range src {
		y := s.B0*x + s.d0
		s.d0 = s.B1*x - s.A1*y + s.d1
		s.d1 = s.B2*x - s.A2*y
		dst[i] = y
	}
}

// Reset clears the delay line to zero. Coefficients and the bypass flag
// are unchanged.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
