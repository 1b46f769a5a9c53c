package term

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Harness drives the shell without a terminal, for tests. Timers never fire
// on their own; FireTimers delivers them.
type Harness struct {
	shell *Shell
}

// NewHarness wraps s. Callbacks posted so far are flushed.
func NewHarness(s *Shell) *Harness {
	h := &Harness{shell: s}
	h.Send(wakeMsg{})
	return h
}

// Send routes msg through Update and runs whatever commands come back.
func (h *Harness) Send(msg tea.Msg) {
	_, cmd := h.shell.Update(msg)
	h.run(cmd, 0)
}

// Wake flushes callbacks posted from other goroutines.
func (h *Harness) Wake() {
	h.Send(wakeMsg{})
}

// FireTimers delivers every parked timer and animation frame.
func (h *Harness) FireTimers() int {
	parked := h.shell.parked
	h.shell.parked = nil
	for _, t := range parked {
		h.Send(t.msg)
	}
	return len(parked)
}

// Key sends a key press as Bubble Tea would.
func (h *Harness) Key(s string) {
	h.Send(keyMsg(s))
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *Harness) View() string { return h.shell.View() }

// PlainView is View with styling escape sequences removed.
func (h *Harness) PlainView() string { return ansi.Strip(h.shell.View()) }

func (h *Harness) Shell() *Shell { return h.shell }

func (h *Harness) run(cmd tea.Cmd, depth int) {
	if cmd == nil || depth > 32 {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c, depth+1)
		}
	case tea.QuitMsg, tea.SuspendMsg:
	default:
		_, next := h.shell.Update(msg)
		h.run(next, depth+1)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+v":
		return tea.KeyMsg{Type: tea.KeyCtrlV}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
