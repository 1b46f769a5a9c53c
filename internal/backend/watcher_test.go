package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/popup-shell/internal/command"
)

type chanSink chan command.Command

func (c chanSink) Submit(cmd command.Command) { c <- cmd }

func TestWatcherSubmitsFileChanges(t *testing.T) {
	dir := t.TempDir()
	sink := make(chanSink, 16)
	w, err := NewWatcher(sink, 0, dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case cmd := <-sink:
		if !cmd.Is(FileChanged) {
			t.Fatalf("expected %s, got %s", FileChanged, cmd.Selector)
		}
		change, err := command.Object[FileChange](cmd)
		if err != nil {
			t.Fatalf("payload: %v", err)
		}
		if change.Path != path {
			t.Fatalf("expected %s, got %s", path, change.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change")
	}
}

func TestWatcherRejectsMissingPath(t *testing.T) {
	sink := make(chanSink, 1)
	if _, err := NewWatcher(sink, 0, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
