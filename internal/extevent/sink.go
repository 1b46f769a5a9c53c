package extevent

import (
	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/ids"
)

// Sink submits commands from goroutines outside the event loop. It stays
// valid for the lifetime of the application regardless of which windows
// come and go.
type Sink struct {
	host *Host
}

// Submit sends cmd to the window that drains the inbox.
func (s *Sink) Submit(cmd command.Command) {
	s.host.Submit(command.Auto, cmd)
}

// SubmitTo sends cmd to an explicit target.
func (s *Sink) SubmitTo(target command.Target, cmd command.Command) {
	s.host.Submit(target, cmd)
}

// SubmitToWindow is shorthand for SubmitTo(command.Window(id), cmd).
func (s *Sink) SubmitToWindow(id ids.WindowID, cmd command.Command) {
	s.host.Submit(command.Window(id), cmd)
}
