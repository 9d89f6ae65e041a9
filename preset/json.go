// Package preset reads and writes equalizer settings as JSON files and
// reloads them into a parameter store when they change on disk.
package preset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/simple-eq/dsp/eq"
	"github.com/cwbudde/simple-eq/param"
)

// ErrInvalidPreset is returned for preset values outside their range.
var ErrInvalidPreset = errors.New("preset: invalid value")

// File is the JSON schema for EQ presets. Absent fields keep their current
// value. Slopes are given in dB/oct (12, 24, 36 or 48).
type File struct {
	LowCutFreq   *float64 `json:"low_cut_freq,omitempty"`
	LowCutSlope  *int     `json:"low_cut_slope,omitempty"`
	PeakFreq     *float64 `json:"peak_freq,omitempty"`
	PeakGainDB   *float64 `json:"peak_gain_db,omitempty"`
	PeakQuality  *float64 `json:"peak_quality,omitempty"`
	HighCutFreq  *float64 `json:"high_cut_freq,omitempty"`
	HighCutSlope *int     `json:"high_cut_slope,omitempty"`
}

// Parse decodes a preset. Unknown keys are an error so typos do not go
// unnoticed.
func Parse(b []byte) (*File, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("preset: decode: %w", err)
	}

	return &f, nil
}

// LoadJSON loads a preset file and applies it on top of the defaults.
func LoadJSON(path string) (eq.Settings, error) {
	s := eq.DefaultSettings()

	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	f, err := Parse(b)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}

	if err := ApplyFile(&s, f); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// LoadInto loads a preset file and stores it in the parameter store.
func LoadInto(path string, store *param.Store) error {
	s, err := LoadJSON(path)
	if err != nil {
		return err
	}

	store.Apply(s)

	return nil
}

// ApplyFile applies a parsed preset file onto existing settings. Nothing is
// written unless every present field is valid.
func ApplyFile(dst *eq.Settings, f *File) error {
	if dst == nil {
		return fmt.Errorf("preset: nil destination settings")
	}

	if f == nil {
		return nil
	}

	next := *dst

	for _, fv := range []struct {
		name     string
		v        *float64
		min, max float64
		dst      *float64
	}{
		{"low_cut_freq", f.LowCutFreq, eq.MinFrequency, eq.MaxFrequency, &next.LowCutFreq},
		{"peak_freq", f.PeakFreq, eq.MinFrequency, eq.MaxFrequency, &next.PeakFreq},
		{"peak_gain_db", f.PeakGainDB, eq.MinGainDB, eq.MaxGainDB, &next.PeakGainDB},
		{"peak_quality", f.PeakQuality, eq.MinQuality, eq.MaxQuality, &next.PeakQuality},
		{"high_cut_freq", f.HighCutFreq, eq.MinFrequency, eq.MaxFrequency, &next.HighCutFreq},
	} {
		if fv.v == nil {
			continue
		}

		if !(*fv.v >= fv.min && *fv.v <= fv.max) {
			return fmt.Errorf("%w: %s=%v outside [%v, %v]", ErrInvalidPreset, fv.name, *fv.v, fv.min, fv.max)
		}

		*fv.dst = *fv.v
	}

	for _, sv := range []struct {
		name string
		v    *int
		dst  *eq.Slope
	}{
		{"low_cut_slope", f.LowCutSlope, &next.LowCutSlope},
		{"high_cut_slope", f.HighCutSlope, &next.HighCutSlope},
	} {
		if sv.v == nil {
			continue
		}

		slope, err := eq.SlopeFromDBPerOctave(*sv.v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidPreset, sv.name, err)
		}

		*sv.dst = slope
	}

	*dst = next

	return nil
}

// FromSettings returns a File with every field set.
func FromSettings(s eq.Settings) File {
	lowSlope := s.LowCutSlope.DBPerOctave()
	highSlope := s.HighCutSlope.DBPerOctave()

	return File{
		LowCutFreq:   &s.LowCutFreq,
		LowCutSlope:  &lowSlope,
		PeakFreq:     &s.PeakFreq,
		PeakGainDB:   &s.PeakGainDB,
		PeakQuality:  &s.PeakQuality,
		HighCutFreq:  &s.HighCutFreq,
		HighCutSlope: &highSlope,
	}
}

// SaveJSON writes s as an indented preset file.
func SaveJSON(path string, s eq.Settings) error {
	f := FromSettings(s)

	b, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return fmt.Errorf("preset: encode: %w", err)
	}

	return os.WriteFile(path, append(b, '\n'), 0o644)
}
