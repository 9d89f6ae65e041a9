// Package param holds the equalizer's seven user controls.
//
// Each [Parameter] stores its plain value as float bits in an atomic word,
// so a control thread can write while the audio thread reads without locks.
// [Store.Settings] assembles an eq.Settings snapshot from seven independent
// atomic loads; the snapshot is not a transaction across fields, and does
// not need to be.
//
// Ranges follow the host convention of a normalized 0..1 position with an
// optional skew taper ([Range.Normalize], [Range.Denormalize]). Frequencies
// use skew 0.25, which spreads 20 Hz..20 kHz roughly logarithmically.
package param
