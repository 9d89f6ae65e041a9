package eqflags

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/simple-eq/dsp/eq"
	"github.com/cwbudde/simple-eq/preset"
)

func parse(t *testing.T, args ...string) *Values {
	t.Helper()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	v := Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}

	return v
}

func TestSettings_Defaults(t *testing.T) {
	s, err := parse(t).Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	if s != eq.DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", s)
	}
}

func TestSettings_Flags(t *testing.T) {
	s, err := parse(t, "-low-cut", "80", "-low-slope", "48", "-peak-gain", "-3.5", "-high-cut", "9000").Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	if s.LowCutFreq != 80 || s.LowCutSlope != eq.Slope48 || s.PeakGainDB != -3.5 || s.HighCutFreq != 9000 {
		t.Fatalf("settings = %+v", s)
	}
}

func TestSettings_FlagsOverridePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	if err := os.WriteFile(path, []byte(`{"peak_freq": 2000, "peak_gain_db": 4}`), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := parse(t, "-preset", path, "-peak-gain", "-2").Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	if s.PeakFreq != 2000 {
		t.Fatalf("peak freq = %v, want preset value 2000", s.PeakFreq)
	}

	if s.PeakGainDB != -2 {
		t.Fatalf("peak gain = %v, want flag value -2", s.PeakGainDB)
	}
}

func TestSettings_Invalid(t *testing.T) {
	_, err := parse(t, "-high-slope", "30").Settings()
	if !errors.Is(err, preset.ErrInvalidPreset) || !errors.Is(err, eq.ErrInvalidSlope) {
		t.Fatalf("err = %v, want invalid slope", err)
	}

	if _, err := parse(t, "-peak-q", "50").Settings(); !errors.Is(err, preset.ErrInvalidPreset) {
		t.Fatalf("err = %v, want ErrInvalidPreset", err)
	}

	if _, err := parse(t, "-preset", filepath.Join(t.TempDir(), "none.json")).Settings(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestStore(t *testing.T) {
	store, err := parse(t, "-peak-freq", "1500").Store()
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if got := store.Settings().PeakFreq; got != 1500 {
		t.Fatalf("store peak freq = %v, want 1500", got)
	}

	if _, err := parse(t, "-peak-freq", "5").Store(); err == nil {
		t.Fatal("expected error")
	}
}
