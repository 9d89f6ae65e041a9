package eq

import "github.com/cwbudde/simple-eq/dsp/filter/biquad"

// MaxStages is the capacity of a CutChain: enough sections for 48 dB/oct.
const MaxStages = 4

// CutChain is a fixed-capacity cascade of biquad sections for one cut band.
// Stages [0, Order) are active and stages [Order, MaxStages) are bypassed,
// so changing the order never reorders the signal path.
//
// The zero value has all stages active with zero coefficients and is silent;
// use NewCutChain or call SetOrder before processing.
type CutChain struct {
	stages  [MaxStages]biquad.Section
	order   int
	cascade biquad.Cascade
}

// NewCutChain returns a chain with every stage bypassed.
func NewCutChain() *CutChain {
	c := &CutChain{}
	c.SetOrder(0)

	return c
}

// SetOrder activates the first n stages and bypasses the rest. n is
// clamped to [0, MaxStages].
func (c *CutChain) SetOrder(n int) {
	n = min(max(n, 0), MaxStages)
	c.order = n

	for i := range c.stages {
		c.stages[i].SetBypassed(i >= n)
	}
}

// SetCoefficients assigns cs[i] to stage i for every i below
// min(len(cs), MaxStages). Stage history is kept.
func (c *CutChain) SetCoefficients(cs []biquad.Coefficients) {
	for i := 0; i < len(cs) && i < MaxStages; i++ {
		c.stages[i].SetCoefficients(cs[i])
	}
}

// Configure loads cs and activates exactly len(cs) stages.
func (c *CutChain) Configure(cs []biquad.Coefficients) {
	c.SetCoefficients(cs)
	c.SetOrder(len(cs))
}

// Order returns the number of active stages.
func (c *CutChain) Order() int {
	return c.order
}

// Stage returns stage i, or nil when i is out of range.
func (c *CutChain) Stage(i int) *biquad.Section {
	if i < 0 || i >= MaxStages {
		return nil
	}

	return &c.stages[i]
}

// ProcessSample runs x through all stages in order.
func (c *CutChain) ProcessSample(x float64) float64 {
	for i := range c.stages {
		x = c.stages[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters buf in place through the active stages in a single
// cascade pass. The result matches calling ProcessSample for each sample.
func (c *CutChain) ProcessBlock(buf []float64) {
	c.cascade.Process(c.stages[:], buf)
}

// Reset clears the history of every stage.
func (c *CutChain) Reset() {
	for i := range c.stages {
		c.stages[i].Reset()
	}
}
