package biquad

import (
	"github.com/cwbudde/simple-eq/dsp/core"
	archregistry "github.com/cwbudde/simple-eq/dsp/filter/biquad/internal/arch/registry"
)

// MaxCascade is the largest number of active sections a Cascade runs in
// one kernel call. Longer chains are processed in consecutive groups.
const MaxCascade = 8

// Cascade runs a series of sections over a block in one pass of the
// selected kernel instead of one pass per section. Bypassed sections are
// skipped and keep their history, exactly as with Section.ProcessBlock.
//
// A Cascade holds only scratch space; the filter state lives in the
// sections. The zero value is ready to use. Not safe for concurrent use.
type Cascade struct {
	stages [MaxCascade]archregistry.Stage
	index  [MaxCascade]int
}

// Process filters buf in-place through sections in order. Zero-alloc.
// The output matches calling ProcessBlock on every section in turn, and
// state values below 1e-30 are flushed to zero at the end of the block.
func (c *Cascade) Process(sections []Section, buf []float64) {
	if len(buf) == 0 {
		return
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	n := 0
	for i := range sections {
		if sections[i].bypassed {
			continue
		}

		if n == MaxCascade {
			c.run(sections, n, buf)
			n = 0
		}

		s := &sections[i]
		c.stages[n] = archregistry.Stage{
			Coefficients: archregistry.Coefficients{B0: s.B0, B1: s.B1, B2: s.B2, A1: s.A1, A2: s.A2},
			D0:           s.d0,
			D1:           s.d1,
		}
		c.index[n] = i
		n++
	}

	c.run(sections, n, buf)
}

func (c *Cascade) run(sections []Section, n int, buf []float64) {
	if n == 0 {
		return
	}

	processCascadeImpl(c.stages[:n], buf)

	for k := range n {
		s := &sections[c.index[k]]
		s.d0 = core.FlushDenormals(c.stages[k].D0)
		s.d1 = core.FlushDenormals(c.stages[k].D1)
	}
}
