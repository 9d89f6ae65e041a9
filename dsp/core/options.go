package core

// ProcessSpec describes the stream a processor is prepared for.
type ProcessSpec struct {
	SampleRate   float64
	MaxBlockSize int
}

// ProcessOption mutates a ProcessSpec.
type ProcessOption func(*ProcessSpec)

// DefaultProcessSpec returns sensible defaults for offline and streaming use.
func DefaultProcessSpec() ProcessSpec {
	return ProcessSpec{
		SampleRate:   48000,
		MaxBlockSize: 1024,
	}
}

// WithSampleRate sets the processing sample rate. The value is stored as
// given; use Valid to reject non-positive or non-finite rates.
func WithSampleRate(sampleRate float64) ProcessOption {
	return func(spec *ProcessSpec) {
		spec.SampleRate = sampleRate
	}
}

// WithMaxBlockSize sets the largest block the host will deliver.
func WithMaxBlockSize(blockSize int) ProcessOption {
	return func(spec *ProcessSpec) {
		if blockSize > 0 {
			spec.MaxBlockSize = blockSize
		}
	}
}

// ApplyProcessOptions applies zero or more options to the default spec.
func ApplyProcessOptions(opts ...ProcessOption) ProcessSpec {
	spec := DefaultProcessSpec()
	for _, opt := range opts {
		if opt != nil {
			opt(&spec)
		}
	}
	return spec
}

// Valid reports whether the spec can drive a filter: a positive finite
// sample rate and a positive block size.
func (s ProcessSpec) Valid() bool {
	return s.SampleRate > 0 && IsFinite(s.SampleRate) && s.MaxBlockSize > 0
}

// Nyquist returns half the sample rate.
func (s ProcessSpec) Nyquist() float64 {
	return s.SampleRate / 2
}
