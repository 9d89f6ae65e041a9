package response

import (
	"errors"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/simple-eq/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by measurement functions.
var (
	ErrEmptySignal       = errors.New("response: signal is empty")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive and finite")
	ErrInvalidFFTSize    = errors.New("response: FFT size must be a power of two >= 2")
	ErrInvalidFrequency  = errors.New("response: frequency must lie between 0 and Nyquist")
)

// SampleProcessor is a mono sample-by-sample filter.
type SampleProcessor interface {
	ProcessSample(x float64) float64
	Reset()
}

// ImpulseResponse resets p and returns its first n output samples for a
// unit impulse. p is reset again afterwards.
func ImpulseResponse(p SampleProcessor, n int) []float64 {
	if n <= 0 {
		return nil
	}

	p.Reset()

	out := make([]float64, n)
	out[0] = p.ProcessSample(1)

	for i := 1; i < n; i++ {
		out[i] = p.ProcessSample(0)
	}

	p.Reset()

	return out
}

// Spectrum is the one-sided magnitude spectrum of an impulse response.
type Spectrum struct {
	SampleRate float64
	FFTSize    int
	// Magnitude holds linear |H| for bins 0..FFTSize/2.
	Magnitude []float64
}

// NewSpectrum computes the spectrum of ir with an fftSize-point FFT. ir is
// zero-padded or truncated to fftSize.
func NewSpectrum(ir []float64, sampleRate float64, fftSize int) (Spectrum, error) {
	if len(ir) == 0 {
		return Spectrum{}, ErrEmptySignal
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Spectrum{}, ErrInvalidSampleRate
	}

	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return Spectrum{}, ErrInvalidFFTSize
	}

	in := make([]complex128, fftSize)
	for i := 0; i < len(ir) && i < fftSize; i++ {
		in[i] = complex(ir[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Spectrum{SampleRate: sampleRate, FFTSize: fftSize, Magnitude: mag}, nil
}

// BinHz returns the bin spacing in Hz.
func (s Spectrum) BinHz() float64 {
	if s.FFTSize == 0 {
		return 0
	}

	return s.SampleRate / float64(s.FFTSize)
}

// MagnitudeAt returns |H| at freq, linearly interpolated between bins.
// Frequencies outside [0, Nyquist] are clamped to the band edges.
func (s Spectrum) MagnitudeAt(freq float64) float64 {
	if len(s.Magnitude) == 0 || s.FFTSize == 0 {
		return 0
	}

	pos := core.Clamp(freq/s.BinHz(), 0, float64(len(s.Magnitude)-1))
	k := int(pos)

	if k >= len(s.Magnitude)-1 {
		return s.Magnitude[len(s.Magnitude)-1]
	}

	frac := pos - float64(k)

	return s.Magnitude[k]*(1-frac) + s.Magnitude[k+1]*frac
}

// MagnitudeDBAt returns MagnitudeAt in dB.
func (s Spectrum) MagnitudeDBAt(freq float64) float64 {
	return core.LinearToDB(s.MagnitudeAt(freq))
}

// SineGainDB feeds length samples of a unit sine at freq through p (after a
// reset) and returns the output/input RMS ratio in dB, ignoring the first
// settle samples.
func SineGainDB(p SampleProcessor, freq, sampleRate float64, length, settle int) (float64, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, ErrInvalidSampleRate
	}

	if !(freq > 0) || freq >= sampleRate/2 {
		return 0, ErrInvalidFrequency
	}

	settle = max(settle, 0)
	if length <= settle {
		return 0, ErrEmptySignal
	}

	p.Reset()
	defer p.Reset()

	in := make([]float64, length)
	out := make([]float64, length)
	w := 2 * math.Pi * freq / sampleRate

	for i := range in {
		in[i] = math.Sin(w * float64(i))
		out[i] = p.ProcessSample(in[i])
	}

	inRMS := rms(in[settle:])
	if inRMS == 0 {
		return 0, ErrEmptySignal
	}

	return core.LinearToDB(rms(out[settle:]) / inRMS), nil
}

// Level holds signal level statistics in dBFS.
type Level struct {
	RMSDB  float64
	PeakDB float64
}

// Levels returns the RMS and peak level of x. Empty or silent input
// reports -Inf for both.
func Levels(x []float64) Level {
	var m Meter
	m.Add(x)

	return m.Level()
}

// Meter accumulates RMS and peak over a stream of blocks.
type Meter struct {
	sumSq float64
	peak  float64
	n     int
}

// Add folds x into the running statistics.
func (m *Meter) Add(x []float64) {
	if len(x) == 0 {
		return
	}

	m.sumSq += floats.Dot(x, x)
	m.peak = max(m.peak, floats.Max(x), -floats.Min(x))
	m.n += len(x)
}

// Samples returns the number of samples seen since the last Reset.
func (m *Meter) Samples() int { return m.n }

// Level returns the levels of everything added so far.
func (m *Meter) Level() Level {
	if m.n == 0 {
		return Level{RMSDB: math.Inf(-1), PeakDB: math.Inf(-1)}
	}

	return Level{
		RMSDB:  core.LinearToDB(math.Sqrt(m.sumSq / float64(m.n))),
		PeakDB: core.LinearToDB(m.peak),
	}
}

// Reset clears the statistics.
func (m *Meter) Reset() { *m = Meter{} }

func rms(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return floats.Norm(x, 2) / math.Sqrt(float64(len(x)))
}
