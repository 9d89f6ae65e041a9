package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Deinterleave copies channel ch of an interleaved float32 buffer into dst,
// starting at frame offset. It returns the number of frames copied.
func Deinterleave(dst []float64, src []float32, channels, ch, offset int) int {
	if channels <= 0 || ch < 0 || ch >= channels {
		return 0
	}

	frames := len(src)/channels - offset
	if frames > len(dst) {
		frames = len(dst)
	}

	for i := 0; i < frames; i++ {
		dst[i] = float64(src[(offset+i)*channels+ch])
	}

	return max(frames, 0)
}

// Interleave writes src back into channel ch of an interleaved float32
// buffer, starting at frame offset. It returns the number of frames written.
func Interleave(dst []float32, src []float64, channels, ch, offset int) int {
	if channels <= 0 || ch < 0 || ch >= channels {
		return 0
	}

	frames := len(dst)/channels - offset
	if frames > len(src) {
		frames = len(src)
	}

	for i := 0; i < frames; i++ {
		dst[(offset+i)*channels+ch] = float32(src[i])
	}

	return max(frames, 0)
}
