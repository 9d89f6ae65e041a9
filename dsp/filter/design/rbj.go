package design

import (
	"math"

	"github.com/cwbudde/simple-eq/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// Lowpass designs a second-order lowpass biquad at freq (Hz) with quality
// factor q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	cw, alpha := cosAlpha(w0, normalizedQ(q))

	b1 := 1 - cw
	b0 := b1 / 2

	return normalizeBiquad(b0, b1, b0, 1+alpha, -2*cw, 1-alpha)
}

// Highpass designs a second-order highpass biquad at freq (Hz) with quality
// factor q.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	cw, alpha := cosAlpha(w0, normalizedQ(q))

	b0 := (1 + cw) / 2

	return normalizeBiquad(b0, -(1 + cw), b0, 1+alpha, -2*cw, 1-alpha)
}

// Peak designs a peaking-EQ biquad with gain in dB. Unity gain at DC and
// Nyquist, gainDB at freq, bandwidth set by q.
//
// At 0 dB the numerator equals the denominator (B0=1, B1=A1, B2=A2), so
// the section passes its input through unchanged.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return biquad.Coefficients{}
	}

	cw, alpha := cosAlpha(w0, normalizedQ(q))
	a := math.Pow(10, gainDB/40)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, b1, a2)
}

func cosAlpha(w0, q float64) (cw, alpha float64) {
	return math.Cos(w0), math.Sin(w0) / (2 * q)
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
