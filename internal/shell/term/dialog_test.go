package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/popup-shell/internal/shell"
)

func TestPromptPathJoinsDirectory(t *testing.T) {
	var out bytes.Buffer
	path, err := promptPath(strings.NewReader("notes.txt\n"), &out, false, shell.FileDialogOptions{Directory: "/tmp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/tmp/notes.txt" {
		t.Fatalf("expected /tmp/notes.txt, got %q", path)
	}
	if !strings.Contains(out.String(), "Open file") {
		t.Fatalf("expected default open prompt, got %q", out.String())
	}
}

func TestPromptPathSaveUsesDefaultName(t *testing.T) {
	var out bytes.Buffer
	opts := shell.FileDialogOptions{DefaultName: "untitled.txt"}
	path, err := promptPath(strings.NewReader("\n"), &out, true, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "untitled.txt" {
		t.Fatalf("expected default name, got %q", path)
	}
	if !strings.Contains(out.String(), "Save as [untitled.txt]") {
		t.Fatalf("expected save prompt, got %q", out.String())
	}
}

func TestRunChooser(t *testing.T) {
	if _, err := runChooser("  ", false, shell.FileDialogOptions{}); !errors.Is(err, ErrNoChooser) {
		t.Fatalf("expected ErrNoChooser, got %v", err)
	}
	path, err := runChooser(`echo "$POPUP_SHELL_DIALOG_MODE:/tmp/x"; echo ignored`, true, shell.FileDialogOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "save:/tmp/x" {
		t.Fatalf("expected first line with mode, got %q", path)
	}
	path, err = runChooser("exit 1", false, shell.FileDialogOptions{})
	if err != nil || path != "" {
		t.Fatalf("expected cancel on non-zero exit, got %q %v", path, err)
	}
}
