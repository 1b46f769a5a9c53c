package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/popup-shell/internal/env"
)

func TestFromEnvOverridesAccent(t *testing.T) {
	e := env.New()
	env.Set(e, AccentKey, "99")
	s := FromEnv(e)
	if got := s.Accent.GetForeground(); got != lipgloss.Color("99") {
		t.Fatalf("expected accent 99, got %v", got)
	}
	if got := s.Status.GetForeground(); got != lipgloss.Color("241") {
		t.Fatalf("expected default muted colour, got %v", got)
	}
}

func TestFromNilEnvIsDefault(t *testing.T) {
	if FromEnv(nil) != Default() {
		t.Fatalf("expected default styles for nil env")
	}
}
