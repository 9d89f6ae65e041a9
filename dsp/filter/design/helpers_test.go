package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/simple-eq/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mag(c biquad.Coefficients, freq, sr float64) float64 {
	return cmplx.Abs(c.Response(freq, sr))
}

func cascadeDB(cs []biquad.Coefficients, freq, sr float64) float64 {
	h := complex(1, 0)
	for i := range cs {
		h *= cs[i].Response(freq, sr)
	}

	return 20 * math.Log10(cmplx.Abs(h))
}

func assertUsable(t *testing.T, c biquad.Coefficients) {
	t.Helper()

	if !c.IsFinite() {
		t.Fatalf("non-finite coefficients: %#v", c)
	}

	if !c.IsStable() {
		t.Fatalf("unstable section: poles=%v coeff=%#v", c.Poles(), c)
	}
}
