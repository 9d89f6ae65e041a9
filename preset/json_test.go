package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/simple-eq/dsp/eq"
	"github.com/cwbudde/simple-eq/param"
)

func writePreset(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "preset.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	return path
}

func TestLoadJSON_AppliesPresentFields(t *testing.T) {
	path := writePreset(t, `{
  "low_cut_freq": 80,
  "low_cut_slope": 36,
  "peak_freq": 1000,
  "peak_gain_db": 6
}`)

	s, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	def := eq.DefaultSettings()

	if s.LowCutFreq != 80 || s.LowCutSlope != eq.Slope36 {
		t.Fatalf("low cut = %v/%v, want 80/%v", s.LowCutFreq, s.LowCutSlope, eq.Slope36)
	}

	if s.PeakFreq != 1000 || s.PeakGainDB != 6 {
		t.Fatalf("peak = %v Hz %v dB, want 1000 Hz 6 dB", s.PeakFreq, s.PeakGainDB)
	}

	if s.PeakQuality != def.PeakQuality || s.HighCutFreq != def.HighCutFreq || s.HighCutSlope != def.HighCutSlope {
		t.Fatalf("absent fields changed: %+v", s)
	}
}

func TestLoadJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{name: "malformed", body: `{"low_cut_freq": `},
		{name: "unknown key", body: `{"low_cut_frequency": 80}`},
		{name: "frequency range", body: `{"peak_freq": 5}`, invalid: true},
		{name: "gain range", body: `{"peak_gain_db": 20000}`, invalid: true},
		{name: "quality range", body: `{"peak_quality": 0}`, invalid: true},
		{name: "slope", body: `{"high_cut_slope": 18}`, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON(writePreset(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}

			if got := errors.Is(err, ErrInvalidPreset); got != tt.invalid {
				t.Fatalf("errors.Is(ErrInvalidPreset) = %v, want %v (err=%v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadJSON_SlopeErrorWrapsSlopeSentinel(t *testing.T) {
	_, err := LoadJSON(writePreset(t, `{"low_cut_slope": 6}`))
	if !errors.Is(err, eq.ErrInvalidSlope) {
		t.Fatalf("err = %v, want wrapped ErrInvalidSlope", err)
	}
}

func TestLoadJSON_MissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestApplyFile_AllOrNothing(t *testing.T) {
	s := eq.DefaultSettings()
	freq := 500.0
	bad := 7

	err := ApplyFile(&s, &File{PeakFreq: &freq, HighCutSlope: &bad})
	if err == nil {
		t.Fatal("expected error")
	}

	if s != eq.DefaultSettings() {
		t.Fatalf("settings modified on error: %+v", s)
	}
}

func TestApplyFile_NilFile(t *testing.T) {
	s := eq.DefaultSettings()
	if err := ApplyFile(&s, nil); err != nil {
		t.Fatalf("ApplyFile(nil): %v", err)
	}

	if err := ApplyFile(nil, &File{}); err == nil {
		t.Fatal("expected error for nil destination")
	}
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	want := eq.Settings{
		LowCutFreq:   120,
		LowCutSlope:  eq.Slope24,
		PeakFreq:     2500,
		PeakGainDB:   -4.5,
		PeakQuality:  2,
		HighCutFreq:  9000,
		HighCutSlope: eq.Slope48,
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := SaveJSON(path, want); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	got, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadInto(t *testing.T) {
	store := param.NewStore()

	if err := LoadInto(writePreset(t, `{"high_cut_freq": 8000, "high_cut_slope": 24}`), store); err != nil {
		t.Fatalf("LoadInto: %v", err)
	}

	s := store.Settings()
	if s.HighCutFreq != 8000 || s.HighCutSlope != eq.Slope24 {
		t.Fatalf("store settings = %+v", s)
	}

	if err := LoadInto(writePreset(t, `{"peak_gain_db": 99}`), store); err == nil {
		t.Fatal("expected error")
	}

	if got := store.Settings().HighCutFreq; got != 8000 {
		t.Fatalf("store changed by failed load: high cut = %v", got)
	}
}
