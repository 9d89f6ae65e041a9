// Package eq implements a three-band stereo equalizer: a Butterworth low-cut
// with selectable slope, an RBJ peaking band, and a Butterworth high-cut with
// selectable slope.
//
// The building blocks nest strictly by ownership:
//
//	Engine    two independently owned MonoChains (left, right)
//	MonoChain LowCut CutChain -> Peak biquad.Section -> HighCut CutChain
//	CutChain  fixed [MaxStages]biquad.Section plus an active order
//
// Coefficients are produced by [DesignFilters], a pure function of a
// [Settings] value and the sample rate. The result is a [Design] value that
// is copied wholesale into both chains once per block, so every sample of a
// block sees one consistent configuration and the two channels never
// disagree.
//
// Nothing on the processing path allocates, locks or returns an error.
// Out-of-range settings are clamped and counted; designs that would be
// unstable are rejected and the previous configuration stays active.
package eq
