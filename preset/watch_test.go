package preset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwbudde/simple-eq/param"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}

	store := param.NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, store, nil) }()

	// The watcher may not be registered yet, so keep rewriting until the
	// store picks the change up.
	deadline := time.Now().Add(5 * time.Second)
	for store.Settings().PeakGainDB != 9 {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("preset was not reloaded")
		}

		if err := os.WriteFile(path, []byte(`{"peak_gain_db": 9}`), 0o600); err != nil {
			t.Fatal(err)
		}

		time.Sleep(25 * time.Millisecond)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_SkipsInvalidAndUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}

	store := param.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = Watch(ctx, path, store, nil) }()

	deadline := time.Now().Add(5 * time.Second)
	for store.Settings().PeakFreq != 3000 {
		if time.Now().After(deadline) {
			t.Fatal("preset was not reloaded")
		}

		// Invalid file first, then a valid one. Only the valid one applies.
		_ = os.WriteFile(path, []byte(`{"peak_freq": 1}`), 0o600)
		_ = os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{"peak_freq": 4000}`), 0o600)
		_ = os.WriteFile(path, []byte(`{"peak_freq": 3000}`), 0o600)

		time.Sleep(25 * time.Millisecond)
	}

	if got := store.Settings().PeakFreq; got != 3000 {
		t.Fatalf("peak freq = %v, want 3000", got)
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "live.json")
	if err := Watch(context.Background(), path, param.NewStore(), nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
