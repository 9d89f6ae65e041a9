package param

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/simple-eq/dsp/eq"
)

// FrequencyFormatter formats frequency values with Hz/kHz.
func FrequencyFormatter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}

	return fmt.Sprintf("%.0f Hz", hz)
}

// FrequencyParser parses "750", "750 Hz" or "1.5 kHz".
func FrequencyParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	lower := strings.ToLower(str)

	if strings.HasSuffix(lower, "khz") {
		v, err := strconv.ParseFloat(strings.TrimSpace(str[:len(str)-3]), 64)
		if err != nil {
			return 0, err
		}

		return v * 1000, nil
	}

	if strings.HasSuffix(lower, "hz") {
		str = str[:len(str)-2]
	}

	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// DecibelFormatter formats a gain in dB with explicit sign.
func DecibelFormatter(db float64) string {
	return fmt.Sprintf("%+.1f dB", db)
}

// DecibelParser parses "6", "+6 dB" or "-3.5db".
func DecibelParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if strings.HasSuffix(strings.ToLower(str), "db") {
		str = str[:len(str)-2]
	}

	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// QualityFormatter formats a Q value.
func QualityFormatter(q float64) string {
	return fmt.Sprintf("%.2f", q)
}

// PlainParser parses a bare number.
func PlainParser(str string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// SlopeFormatter formats a slope choice index with its label.
func SlopeFormatter(index float64) string {
	return eq.Slope(int(index)).String()
}

// SlopeParser accepts a choice label ("24 db/Oct"), a dB/oct number
// ("24", "24dB") and returns the choice index.
func SlopeParser(str string) (float64, error) {
	str = strings.TrimSpace(str)

	for _, s := range eq.Slopes {
		if strings.EqualFold(str, s.String()) {
			return float64(s), nil
		}
	}

	lower := strings.ToLower(str)
	lower = strings.TrimSuffix(lower, "/oct")
	lower = strings.TrimSpace(strings.TrimSuffix(lower, "db"))

	n, err := strconv.Atoi(lower)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", eq.ErrInvalidSlope, str)
	}

	s, err := eq.SlopeFromDBPerOctave(n)
	if err != nil {
		return 0, err
	}

	return float64(s), nil
}
