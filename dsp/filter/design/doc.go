// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ-style second-order sections
// ([Lowpass], [Highpass], [Peak]) and Butterworth cascades built from them
// ([ButterworthHP], [ButterworthLP] and their allocation-free Append forms).
//
// Designers never panic and never return NaN for finite input. A frequency
// outside (0, Nyquist) or a non-positive sample rate yields the zero
// [biquad.Coefficients], which the caller can detect and reject.
package design
