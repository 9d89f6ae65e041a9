package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Interleave packs planar channels into one interleaved float32 buffer.
// All channels must have the same length.
func Interleave(channels ...[]float64) []float32 {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	out := make([]float32, frames*len(channels))

	for ch, data := range channels {
		for i, v := range data {
			out[i*len(channels)+ch] = float32(v)
		}
	}

	return out
}

// RMS returns the root mean square of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sum float64
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(x)))
}

// GainDB returns the RMS level of out relative to in, in dB, ignoring the
// first skip samples of both so filter transients settle.
func GainDB(in, out []float64, skip int) float64 {
	skip = min(max(skip, 0), len(in), len(out))

	return 20 * math.Log10(RMS(out[skip:])/RMS(in[skip:]))
}
