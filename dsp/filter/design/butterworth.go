package design

import (
	"math"

	"github.com/cwbudde/simple-eq/dsp/filter/biquad"
)

// SectionCount returns the number of biquad sections a Butterworth cascade
// of the given order uses: order/2 second-order sections plus one
// first-order section for odd orders.
func SectionCount(order int) int {
	if order <= 0 {
		return 0
	}

	return (order + 1) / 2
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	return AppendButterworthHP(make([]biquad.Coefficients, 0, SectionCount(order)), freq, order, sampleRate)
}

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	return AppendButterworthLP(make([]biquad.Coefficients, 0, SectionCount(order)), freq, order, sampleRate)
}

// AppendButterworthHP appends the sections of a highpass Butterworth cascade
// to dst and returns the extended slice. It does not allocate when dst has
// room for [SectionCount](order) more entries.
//
// Sections are ordered lowest Q first.
func AppendButterworthHP(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return dst
	}

	for i := order/2 - 1; i >= 0; i-- {
		dst = append(dst, Highpass(freq, butterworthQ(order, i), sampleRate))
	}

	if order%2 != 0 {
		dst = append(dst, firstOrderHP(freq, sampleRate))
	}

	return dst
}

// AppendButterworthLP is the lowpass counterpart of [AppendButterworthHP].
func AppendButterworthLP(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return dst
	}

	for i := order/2 - 1; i >= 0; i-- {
		dst = append(dst, Lowpass(freq, butterworthQ(order, i), sampleRate))
	}

	if order%2 != 0 {
		dst = append(dst, firstOrderLP(freq, sampleRate))
	}

	return dst
}

// butterworthQ returns the quality factor of section index of an order-N
// Butterworth filter: 1 / (2 sin((2i+1)π / 2N)).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}

// bilinearK is the prewarped tan(π·freq/fs) of the bilinear transform.
func bilinearK(freq, sampleRate float64) (float64, bool) {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return 0, false
	}

	return math.Tan(math.Pi * freq / sampleRate), true
}

func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

func firstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}
