package param

import "math"

// Range maps plain values to a normalized 0..1 position.
//
// With Skew != 1 the mapping is normalized = proportion^Skew, where
// proportion is the linear position in [Min, Max]. Skew < 1 gives more of
// the normalized range to the low end. A zero Skew means linear.
type Range struct {
	Min  float64
	Max  float64
	Step float64
	Skew float64
}

// Linear returns an unskewed range.
func Linear(min, max, step float64) Range {
	return Range{Min: min, Max: max, Step: step, Skew: 1}
}

// Skewed returns a range with the given skew factor.
func Skewed(min, max, step, skew float64) Range {
	return Range{Min: min, Max: max, Step: step, Skew: skew}
}

func (r Range) skew() float64 {
	if r.Skew <= 0 || math.IsNaN(r.Skew) || math.IsInf(r.Skew, 0) {
		return 1
	}

	return r.Skew
}

// Clamp limits v to [Min, Max]. NaN stays NaN.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}

	if v > r.Max {
		return r.Max
	}

	return v
}

// Snap rounds v to the nearest step above Min and clamps the result.
// Values already on the grid are returned unchanged, free of rounding noise.
func (r Range) Snap(v float64) float64 {
	if r.Step <= 0 {
		return r.Clamp(v)
	}

	n := math.Round((v - r.Min) / r.Step)

	snapped := r.Min + n*r.Step
	if math.Abs(snapped-v) <= 1e-9*r.Step {
		snapped = v
	}

	return r.Clamp(snapped)
}

// Normalize maps a plain value to 0..1.
func (r Range) Normalize(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}

	p := (r.Clamp(v) - r.Min) / (r.Max - r.Min)
	if s := r.skew(); s != 1 && p > 0 {
		p = math.Pow(p, s)
	}

	return p
}

// Denormalize maps 0..1 back to a plain value. It does not snap.
func (r Range) Denormalize(p float64) float64 {
	p = math.Min(math.Max(p, 0), 1)

	if s := r.skew(); s != 1 && p > 0 {
		p = math.Exp(math.Log(p) / s)
	}

	return r.Min + (r.Max-r.Min)*p
}
