package eq

import "github.com/cwbudde/simple-eq/dsp/filter/biquad"

// MonoChain is the signal path of one channel: low cut, then peak, then
// high cut.
type MonoChain struct {
	LowCut  CutChain
	Peak    biquad.Section
	HighCut CutChain
}

// NewMonoChain returns a transparent chain: both cuts bypassed and an
// identity peak.
func NewMonoChain() *MonoChain {
	m := &MonoChain{}
	m.clear()

	return m
}

func (m *MonoChain) clear() {
	m.LowCut = CutChain{}
	m.LowCut.SetOrder(0)
	m.Peak = biquad.Section{}
	m.Peak.SetCoefficients(biquad.Identity())
	m.HighCut = CutChain{}
	m.HighCut.SetOrder(0)
}

// Apply loads a design into all three bands. History is kept.
func (m *MonoChain) Apply(d *Design) {
	m.LowCut.Configure(d.LowCutCoefficients())
	m.Peak.SetCoefficients(d.Peak)
	m.Peak.SetBypassed(false)
	m.HighCut.Configure(d.HighCutCoefficients())
}

// ProcessSample filters one sample through the three bands.
func (m *MonoChain) ProcessSample(x float64) float64 {
	x = m.LowCut.ProcessSample(x)
	x = m.Peak.ProcessSample(x)

	return m.HighCut.ProcessSample(x)
}

// ProcessBlock filters buf in place.
func (m *MonoChain) ProcessBlock(buf []float64) {
	m.LowCut.ProcessBlock(buf)
	m.Peak.ProcessBlock(buf)
	m.HighCut.ProcessBlock(buf)
}

// Reset clears all filter history. Coefficients are kept.
func (m *MonoChain) Reset() {
	m.LowCut.Reset()
	m.Peak.Reset()
	m.HighCut.Reset()
}
