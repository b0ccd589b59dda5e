package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.py")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	w, err := NewWatcher(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Stop()

	changed := make(chan string, 1)
	w.SetCallback(func(p string) {
		select {
		case changed <- p:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()

	// Give the watch a moment to register before touching the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("x = 2\n"), 0o644); err != nil {
		t.Fatalf("failed to update test file: %v", err)
	}

	select {
	case p := <-changed:
		if filepath.Base(p) != "file.py" {
			t.Errorf("callback path = %q, want file.py", p)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("callback was not invoked after file change")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.py")
	sibling := filepath.Join(dir, "sibling.py")
	for _, p := range []string{watched, sibling} {
		if err := os.WriteFile(p, []byte("x = 1\n"), 0o644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
	}

	w, err := NewWatcher(watched, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Stop()

	changed := make(chan string, 1)
	w.SetCallback(func(p string) {
		select {
		case changed <- p:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(sibling, []byte("x = 2\n"), 0o644); err != nil {
		t.Fatalf("failed to update sibling: %v", err)
	}

	select {
	case p := <-changed:
		t.Errorf("callback fired for sibling change: %q", p)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherDefaultDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.py")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	w, err := NewWatcher(path, 0)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Stop()

	if w.debounce <= 0 {
		t.Errorf("debounce = %v, want a positive default", w.debounce)
	}
}
