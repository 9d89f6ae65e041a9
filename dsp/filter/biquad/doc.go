// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. A section can be bypassed,
// in which case it passes samples through unchanged and holds its history,
// so fixed-size cascades can switch sections on and off without reordering
// the signal path.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth, peaking EQ, etc.) lives in dsp/filter/design.
package biquad
