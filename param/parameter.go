package param

import (
	"math"
	"sync/atomic"
)

// Parameter is one control with a lock-free plain value.
type Parameter struct {
	spec  Spec
	value atomic.Uint64
}

func newParameter(spec Spec) *Parameter {
	p := &Parameter{spec: spec}
	p.Reset()

	return p
}

// ID returns the control identifier.
func (p *Parameter) ID() ID { return p.spec.ID }

// Name returns the display name, e.g. "Peak Gain".
func (p *Parameter) Name() string { return p.spec.Name }

// Unit returns the display unit, or "" for unitless controls.
func (p *Parameter) Unit() string { return p.spec.Unit }

// Range returns the value range.
func (p *Parameter) Range() Range { return p.spec.Range }

// Default returns the default plain value.
func (p *Parameter) Default() float64 { return p.spec.Default }

// Choices returns the labels of a choice control, or nil.
func (p *Parameter) Choices() []string { return p.spec.Choices }

// Value returns the current plain value. Safe from any goroutine.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// Set snaps v to the step grid, clamps it to the range and stores it.
// NaN is ignored. It returns the stored value.
func (p *Parameter) Set(v float64) float64 {
	if math.IsNaN(v) {
		return p.Value()
	}

	v = p.spec.Range.Snap(v)
	p.value.Store(math.Float64bits(v))

	return v
}

// Normalized returns the current value as a 0..1 position.
func (p *Parameter) Normalized() float64 {
	return p.spec.Range.Normalize(p.Value())
}

// SetNormalized sets the value from a 0..1 position.
func (p *Parameter) SetNormalized(n float64) float64 {
	if math.IsNaN(n) {
		return p.Value()
	}

	return p.Set(p.spec.Range.Denormalize(n))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.value.Store(math.Float64bits(p.spec.Default))
}

// Format renders the current value for display.
func (p *Parameter) Format() string {
	return p.spec.Format(p.Value())
}

// Parse converts display text into a plain value without storing it.
func (p *Parameter) Parse(text string) (float64, error) {
	return p.spec.Parse(text)
}
