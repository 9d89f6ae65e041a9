package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/simple-eq/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:           "generic",
		SIMDLevel:      cpu.SIMDNone,
		Priority:       0,
		ProcessBlock:   processBlock,
		ProcessCascade: processCascade,
	})
}

// processBlock runs one section over buf, two samples per iteration.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	i := 0
	for ; i+1 < len(buf); i += 2 {
		x0, x1 := buf[i], buf[i+1]

		y0 := c.B0*x0 + d0
		d0, d1 = c.B1*x0-c.A1*y0+d1, c.B2*x0-c.A2*y0

		y1 := c.B0*x1 + d0
		d0, d1 = c.B1*x1-c.A1*y1+d1, c.B2*x1-c.A2*y1

		buf[i], buf[i+1] = y0, y1
	}

	if i < len(buf) {
		x := buf[i]
		y := c.B0*x + d0
		d0, d1 = c.B1*x-c.A1*y+d1, c.B2*x-c.A2*y
		buf[i] = y
	}

	return d0, d1
}

// processCascade walks the block once, passing every sample through all
// stages before moving on.
func processCascade(stages []registry.Stage, buf []float64) {
	switch len(stages) {
	case 0:
		return
	case 1:
		st := &stages[0]
		st.D0, st.D1 = processBlock(st.Coefficients, st.D0, st.D1, buf)

		return
	}

	for i, x := range buf {
		for k := range stages {
			st := &stages[k]
			y := st.B0*x + st.D0
			st.D0 = st.B1*x - st.A1*y + st.D1
			st.D1 = st.B2*x - st.A2*y
			x = y
		}

		buf[i] = x
	}
}
