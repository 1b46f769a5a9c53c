package ui

import (
	"github.com/atomicstack/popup-shell/internal/core"
	"github.com/atomicstack/popup-shell/internal/env"
	"github.com/atomicstack/popup-shell/internal/event"
	"github.com/atomicstack/popup-shell/internal/ids"
)

// Delegate tracks open windows and swallows key presses of Blocked.
type Delegate struct {
	Blocked string
}

var _ core.Delegate[Model] = (*Delegate)(nil)

func (d *Delegate) Event(ctx *core.DelegateCtx, ev event.Event, m *Model, e *env.Env) event.Event {
	if d.Blocked == "" {
		return ev
	}
	switch key := ev.(type) {
	case event.KeyDown:
		if key.Key == d.Blocked {
			m.Swallowed++
			return nil
		}
	case event.KeyUp:
		if key.Key == d.Blocked {
			return nil
		}
	}
	return ev
}

func (d *Delegate) WindowAdded(ctx *core.DelegateCtx, id ids.WindowID, m *Model, e *env.Env) {
	m.Windows = m.withWindow(id)
}

func (d *Delegate) WindowRemoved(ctx *core.DelegateCtx, id ids.WindowID, m *Model, e *env.Env) {
	m.Windows = m.withoutWindow(id)
}
