package debug

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeBreakpointFile(t *testing.T, path string, bps string) {
	t.Helper()
	data := `{"version":1,"breakpoints":[` + bps + `]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBreakpointWatcher_ReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakpoints.json")

	m := NewBreakpointManager()
	m.SetPersistPath(path)

	w, err := NewBreakpointWatcher(m, path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBreakpointWatcher() error = %v", err)
	}
	defer w.Close()

	reloaded := make(chan struct{}, 1)
	w.SetOnReload(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	writeBreakpointFile(t, path, `{"id":1,"path":"main.go","line":42,"enabled":true}`)

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after writing breakpoint file")
	}

	if len(m.All()) != 1 {
		t.Errorf("manager has %d breakpoints after reload, expected 1", len(m.All()))
	}
}

func TestBreakpointWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakpoints.json")

	m := NewBreakpointManager()
	m.SetPersistPath(path)

	w, err := NewBreakpointWatcher(m, path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBreakpointWatcher() error = %v", err)
	}
	defer w.Close()

	reloaded := make(chan struct{}, 1)
	w.SetOnReload(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
		t.Fatal("reload triggered by unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestBreakpointWatcher_CloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	m := NewBreakpointManager()

	w, err := NewBreakpointWatcher(m, filepath.Join(dir, "breakpoints.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBreakpointWatcher() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
