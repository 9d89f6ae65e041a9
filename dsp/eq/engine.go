package eq

import (
	"sync/atomic"

	"github.com/cwbudde/simple-eq/dsp/core"
)

// SettingsSource supplies the current control values. Implementations must
// be safe to call from the audio thread: no locks, no allocation.
type SettingsSource interface {
	Settings() Settings
}

// Engine is the stereo equalizer. It owns two MonoChains that receive the
// same Design but keep separate history.
//
// Prepare, UpdateFilters and the Process methods belong to one audio thread.
// ClampEvents and RejectedUpdates may be read from any goroutine.
type Engine struct {
	src SettingsSource

	left  MonoChain
	right MonoChain

	settings Settings
	spec     core.ProcessSpec
	prepared bool

	scratchL []float64
	scratchR []float64

	clampEvents     atomic.Uint64
	rejectedUpdates atomic.Uint64
}

// NewEngine returns an unprepared engine. src may be nil, in which case the
// engine keeps whatever was last passed to UpdateFilters.
func NewEngine(src SettingsSource) *Engine {
	e := &Engine{
		src:      src,
		settings: DefaultSettings(),
	}
	e.left.clear()
	e.right.clear()

	return e
}

// Prepare (re)initializes the engine for a stream: it clears all history
// and designs filters for the current settings. It must run before the
// first block and again whenever the sample rate or block size changes.
//
// A sample rate that is not positive and finite leaves the engine
// unprepared, and the Process methods pass audio through untouched. A
// non-positive maxBlockSize selects the default block size.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize int) {
	e.PrepareSpec(core.ApplyProcessOptions(
		core.WithSampleRate(sampleRate),
		core.WithMaxBlockSize(maxBlockSize),
	))
}

// PrepareSpec is Prepare taking a ProcessSpec.
func (e *Engine) PrepareSpec(spec core.ProcessSpec) {
	e.left.clear()
	e.right.clear()

	if spec.MaxBlockSize <= 0 {
		spec.MaxBlockSize = core.DefaultProcessSpec().MaxBlockSize
	}

	if !spec.Valid() {
		e.prepared = false
		e.spec = core.ProcessSpec{}

		return
	}

	e.spec = spec
	e.scratchL = core.EnsureLen(e.scratchL, spec.MaxBlockSize)
	e.scratchR = core.EnsureLen(e.scratchR, spec.MaxBlockSize)
	core.Zero(e.scratchL)
	core.Zero(e.scratchR)
	e.prepared = true

	s := e.settings
	if e.src != nil {
		s = e.src.Settings()
	}

	e.UpdateFilters(s)
}

// UpdateFilters designs coefficients for s and loads the same Design into
// both channels. It reports whether the design was applied.
//
// Out-of-range fields are clamped and counted in ClampEvents. A design with
// a non-finite or unstable section is dropped, counted in RejectedUpdates,
// and the previous configuration stays active. On an unprepared engine the
// settings are only remembered for the next Prepare.
func (e *Engine) UpdateFilters(s Settings) bool {
	if !e.prepared {
		e.settings, _ = s.Sanitize(0)
		return false
	}

	d := DesignFilters(s, e.spec.SampleRate)
	if d.Clamped {
		e.clampEvents.Add(1)
	}

	if !d.Valid() {
		e.rejectedUpdates.Add(1)
		return false
	}

	e.left.Apply(&d)
	e.right.Apply(&d)
	e.settings = d.Settings

	return true
}

// Process filters both channels in place with the current configuration.
// A nil right channel selects mono operation: left runs through the left
// chain and the right chain is not touched. The channels may differ in
// length; each is processed over its own length.
func (e *Engine) Process(left, right []float64) {
	if !e.prepared {
		return
	}

	e.left.ProcessBlock(left)

	if right != nil {
		e.right.ProcessBlock(right)
	}
}

// ProcessBlock runs one host block: read a snapshot from the source, update
// the filters, then process. Without a source it is equivalent to Process.
func (e *Engine) ProcessBlock(left, right []float64) {
	if !e.prepared {
		return
	}

	if e.src != nil {
		e.UpdateFilters(e.src.Settings())
	}

	e.Process(left, right)
}

// ProcessInterleaved runs one host block of interleaved float32 frames in
// place. Channel 0 uses the left chain and channel 1 the right chain;
// further channels pass through unchanged. The block may be longer than the
// prepared maximum; it is filtered in chunks with one filter update for the
// whole call.
func (e *Engine) ProcessInterleaved(buf []float32, channels int) {
	if !e.prepared || channels <= 0 {
		return
	}

	if e.src != nil {
		e.UpdateFilters(e.src.Settings())
	}

	frames := len(buf) / channels
	for offset := 0; offset < frames; offset += len(e.scratchL) {
		n := core.Deinterleave(e.scratchL, buf, channels, 0, offset)
		e.left.ProcessBlock(e.scratchL[:n])
		core.Interleave(buf, e.scratchL[:n], channels, 0, offset)

		if channels < 2 {
			continue
		}

		n = core.Deinterleave(e.scratchR, buf, channels, 1, offset)
		e.right.ProcessBlock(e.scratchR[:n])
		core.Interleave(buf, e.scratchR[:n], channels, 1, offset)
	}
}

// Reset clears the filter history of both channels without redesigning.
func (e *Engine) Reset() {
	e.left.Reset()
	e.right.Reset()
}

// Prepared reports whether the engine has a valid stream configuration.
func (e *Engine) Prepared() bool { return e.prepared }

// SampleRate returns the prepared sample rate, or 0 when unprepared.
func (e *Engine) SampleRate() float64 { return e.spec.SampleRate }

// MaxBlockSize returns the prepared block size, or 0 when unprepared.
func (e *Engine) MaxBlockSize() int { return e.spec.MaxBlockSize }

// Settings returns the last applied (sanitized) settings.
func (e *Engine) Settings() Settings { return e.settings }

// LatencySamples is always zero: the filters are recursive with no lookahead.
func (e *Engine) LatencySamples() int { return 0 }

// TailLengthSeconds is always zero.
func (e *Engine) TailLengthSeconds() float64 { return 0 }

// ClampEvents counts updates whose settings had to be clamped.
func (e *Engine) ClampEvents() uint64 { return e.clampEvents.Load() }

// RejectedUpdates counts designs dropped as non-finite or unstable.
func (e *Engine) RejectedUpdates() uint64 { return e.rejectedUpdates.Load() }

// MagnitudeDB is the current analytic response of the left chain.
func (e *Engine) MagnitudeDB(freqHz float64) float64 {
	if !e.prepared {
		return 0
	}

	return e.left.MagnitudeDB(freqHz, e.spec.SampleRate)
}
