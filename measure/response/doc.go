// Package response measures what a filter does to a signal: impulse and
// frequency responses, steady-state sine gain and signal levels.
//
// Measurements drive any [SampleProcessor], which covers single biquad
// sections as well as complete EQ chains. The frequency response is
// computed with an FFT of the impulse response, so it can be compared
// against the analytic response of the designed coefficients.
package response
