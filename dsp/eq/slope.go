package eq

import (
	"errors"
	"fmt"
)

// ErrInvalidSlope is returned when a dB/octave value is not one of the
// supported cut slopes.
var ErrInvalidSlope = errors.New("eq: slope must be 12, 24, 36 or 48 dB/oct")

// Slope selects the steepness of a cut band. Each step adds one cascaded
// second-order Butterworth section.
type Slope int

const (
	Slope12 Slope = iota // 12 dB/oct, order 2
	Slope24              // 24 dB/oct, order 4
	Slope36              // 36 dB/oct, order 6
	Slope48              // 48 dB/oct, order 8
)

// Slopes lists every supported slope in ascending steepness.
var Slopes = [...]Slope{Slope12, Slope24, Slope36, Slope48}

// SlopeFromDBPerOctave maps 12, 24, 36 or 48 to the matching Slope.
func SlopeFromDBPerOctave(db int) (Slope, error) {
	for _, s := range Slopes {
		if s.DBPerOctave() == db {
			return s, nil
		}
	}

	return Slope12, fmt.Errorf("%w: got %d", ErrInvalidSlope, db)
}

// Valid reports whether s is one of the four defined slopes.
func (s Slope) Valid() bool {
	return s >= Slope12 && s <= Slope48
}

// Clamp returns s limited to [Slope12, Slope48].
func (s Slope) Clamp() Slope {
	return min(max(s, Slope12), Slope48)
}

// Sections is the number of biquad sections the slope activates (1..4).
func (s Slope) Sections() int {
	return int(s.Clamp()) + 1
}

// Order is the filter order, (index+1)*2.
func (s Slope) Order() int {
	return s.Sections() * 2
}

// DBPerOctave is the asymptotic attenuation rate.
func (s Slope) DBPerOctave() int {
	return s.Sections() * 12
}

func (s Slope) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Slope(%d)", int(s))
	}

	return fmt.Sprintf("%d db/Oct", s.DBPerOctave())
}
