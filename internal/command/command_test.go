package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/popup-shell/internal/ids"
)

func TestObjectRecoversPayload(t *testing.T) {
	cmd := New(CloseWindow, ids.WindowID(42))
	id, err := Object[ids.WindowID](cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected 42, got %d", id)
	}
}

func TestObjectMissingPayload(t *testing.T) {
	_, err := Object[string](New(ShowWindow, nil))
	if !errors.Is(err, ErrNoPayload) {
		t.Fatalf("expected ErrNoPayload, got %v", err)
	}
}

func TestObjectWrongType(t *testing.T) {
	_, err := Object[ids.WindowID](New(ShowWindow, "not an id"))
	if !errors.Is(err, ErrPayloadType) {
		t.Fatalf("expected ErrPayloadType, got %v", err)
	}
}

func TestTargetOrResolvesAuto(t *testing.T) {
	win := ids.NewWindowID()
	resolved := Auto.Or(win)
	if got, ok := resolved.WindowID(); !ok || got != win {
		t.Fatalf("expected auto to resolve to %s, got %s", win, resolved)
	}
	widget := Widget(ids.NewWidgetID())
	if widget.Or(win) != widget {
		t.Fatalf("expected widget target unchanged")
	}
	if Auto.Kind() != TargetAuto {
		t.Fatalf("expected zero target to be auto")
	}
}
