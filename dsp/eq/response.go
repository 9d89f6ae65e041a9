package eq

import (
	"math"
	"math/cmplx"
)

// Response is the complex frequency response of the active stages.
func (c *CutChain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.stages {
		h *= c.stages[i].Response(freqHz, sampleRate)
	}

	return h
}

// Response is the product of the three band responses.
func (m *MonoChain) Response(freqHz, sampleRate float64) complex128 {
	return m.LowCut.Response(freqHz, sampleRate) *
		m.Peak.Response(freqHz, sampleRate) *
		m.HighCut.Response(freqHz, sampleRate)
}

// MagnitudeDB returns 20*log10|H(f)| of the chain.
func (m *MonoChain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return magnitudeDB(m.Response(freqHz, sampleRate))
}

// Response evaluates the design analytically, without any filter state.
func (d *Design) Response(freqHz, sampleRate float64) complex128 {
	h := d.Peak.Response(freqHz, sampleRate)

	for _, c := range d.LowCutCoefficients() {
		h *= c.Response(freqHz, sampleRate)
	}

	for _, c := range d.HighCutCoefficients() {
		h *= c.Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns 20*log10|H(f)| of the design.
func (d *Design) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return magnitudeDB(d.Response(freqHz, sampleRate))
}

func magnitudeDB(h complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(h))
}
