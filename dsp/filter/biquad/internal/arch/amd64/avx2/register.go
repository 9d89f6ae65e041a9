//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/simple-eq/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:           "avx2",
		SIMDLevel:      cpu.SIMDAVX2,
		Priority:       20,
		ProcessBlock:   processBlock,
		ProcessCascade: processCascade,
	})
}

// processBlock runs one section over buf, four samples per iteration.
// The recursion stays serial; the unroll gives the scheduler independent
// loads and stores to overlap.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0
	for ; i+3 < len(buf); i += 4 {
		x0, x1, x2, x3 := buf[i], buf[i+1], buf[i+2], buf[i+3]

		y0 := b0*x0 + d0
		d0, d1 = b1*x0-a1*y0+d1, b2*x0-a2*y0

		y1 := b0*x1 + d0
		d0, d1 = b1*x1-a1*y1+d1, b2*x1-a2*y1

		y2 := b0*x2 + d0
		d0, d1 = b1*x2-a1*y2+d1, b2*x2-a2*y2

		y3 := b0*x3 + d0
		d0, d1 = b1*x3-a1*y3+d1, b2*x3-a2*y3

		buf[i], buf[i+1], buf[i+2], buf[i+3] = y0, y1, y2, y3
	}

	for ; i < len(buf); i++ {
		x := buf[i]
		y := b0*x + d0
		d0, d1 = b1*x-a1*y+d1, b2*x-a2*y
		buf[i] = y
	}

	return d0, d1
}

// processCascade keeps two stages in registers at a time, so a 48 dB/oct
// cut walks the block twice instead of four times.
func processCascade(stages []registry.Stage, buf []float64) {
	k := 0
	for ; k+1 < len(stages); k += 2 {
		processPair(&stages[k], &stages[k+1], buf)
	}

	if k < len(stages) {
		st := &stages[k]
		st.D0, st.D1 = processBlock(st.Coefficients, st.D0, st.D1, buf)
	}
}

func processPair(p, q *registry.Stage, buf []float64) {
	pb0, pb1, pb2, pa1, pa2 := p.B0, p.B1, p.B2, p.A1, p.A2
	qb0, qb1, qb2, qa1, qa2 := q.B0, q.B1, q.B2, q.A1, q.A2
	pd0, pd1 := p.D0, p.D1
	qd0, qd1 := q.D0, q.D1

	for i, x := range buf {
		u := pb0*x + pd0
		pd0, pd1 = pb1*x-pa1*u+pd1, pb2*x-pa2*u

		y := qb0*u + qd0
		qd0, qd1 = qb1*u-qa1*y+qd1, qb2*u-qa2*y

		buf[i] = y
	}

	p.D0, p.D1 = pd0, pd1
	q.D0, q.D1 = qd0, qd1
}
