// Package core is the dispatch layer between a platform shell and the
// application's widget tree: it owns the shared application state, routes
// events and commands, and drives the update and invalidation passes.
package core

import (
	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/data"
	"github.com/atomicstack/popup-shell/internal/env"
	"github.com/atomicstack/popup-shell/internal/event"
	"github.com/atomicstack/popup-shell/internal/extevent"
	"github.com/atomicstack/popup-shell/internal/ids"
	"github.com/atomicstack/popup-shell/internal/logging"
	"github.com/atomicstack/popup-shell/internal/logging/events"
	"github.com/atomicstack/popup-shell/internal/menu"
	"github.com/atomicstack/popup-shell/internal/shell"
	"github.com/atomicstack/popup-shell/internal/window"
)

// AppState holds everything the windows of one application share.
type AppState[T data.Data[T]] struct {
	delegate Delegate[T]
	queue    *command.Queue
	ext      *extevent.Host
	windows  *window.Registry[T]
	env      *env.Env
	data     T
}

func newAppState[T data.Data[T]](delegate Delegate[T], ext *extevent.Host, e *env.Env, d T) *AppState[T] {
	if e == nil {
		e = env.New()
	}
	return &AppState[T]{
		delegate: delegate,
		queue:    command.NewQueue(),
		ext:      ext,
		windows:  window.NewRegistry[T](),
		env:      e,
		data:     d,
	}
}

// Data returns the current application data.
func (a *AppState[T]) Data() T { return a.data }

// Env returns the shared environment.
func (a *AppState[T]) Env() *env.Env { return a.env }

// Windows exposes the registry.
func (a *AppState[T]) Windows() *window.Registry[T] { return a.windows }

func (a *AppState[T]) delegateCtx(id ids.WindowID) *DelegateCtx {
	return &DelegateCtx{source: id, queue: a.queue}
}

// delegateEvent gives the delegate first refusal. Without a delegate events
// pass through unchanged.
func (a *AppState[T]) delegateEvent(id ids.WindowID, ev event.Event) event.Event {
	if a.delegate == nil {
		return ev
	}
	return a.delegate.Event(a.delegateCtx(id), ev, &a.data, a.env)
}

func (a *AppState[T]) addWindow(id ids.WindowID, p *window.Pending[T]) {
	a.windows.Add(id, p)
}

func (a *AppState[T]) connect(id ids.WindowID, handle shell.WindowHandle) {
	if _, ok := a.windows.Connect(id, handle); !ok {
		return
	}
	// without a waker, external submissions would sit in the inbox forever
	if _, ok := a.ext.Waker(); !ok {
		a.setExtEventIdleHandler(id)
	}
	if a.delegate != nil {
		a.delegate.WindowAdded(a.delegateCtx(id), id, &a.data, a.env)
	}
}

// removeWindow runs after the platform destroyed the window. It reports
// false when the id was already gone.
func (a *AppState[T]) removeWindow(id ids.WindowID) bool {
	if a.windows.Discard(id) {
		return true
	}
	if !a.windows.IsLive(id) {
		return false
	}
	if a.delegate != nil {
		a.delegate.WindowRemoved(a.delegateCtx(id), id, &a.data, a.env)
	}
	a.windows.Remove(id)

	if waker, ok := a.ext.Waker(); ok && waker == id {
		a.ext.ClearIdle()
		for _, other := range a.windows.IDs() {
			if a.setExtEventIdleHandler(other) {
				break
			}
		}
	}
	return true
}

// setExtEventIdleHandler makes id the window woken for external events.
func (a *AppState[T]) setExtEventIdleHandler(id ids.WindowID) bool {
	w, ok := a.windows.Get(id)
	if !ok {
		return false
	}
	idle, ok := w.Handle().IdleHandle()
	if !ok {
		return false
	}
	a.ext.SetIdle(idle, id)
	return true
}

// requestCloseWindow asks the platform to close id. Removal happens later,
// from the destroy callback.
func (a *AppState[T]) requestCloseWindow(id ids.WindowID) {
	if w, ok := a.windows.Get(id); ok {
		events.Window.CloseRequest(id.String())
		w.Handle().Close()
	}
}

func (a *AppState[T]) showWindow(id ids.WindowID) {
	if w, ok := a.windows.Get(id); ok {
		events.Window.Show(id.String())
		w.Handle().BringToFrontAndFocus()
	}
}

// paint reports whether the window wants another animation frame.
func (a *AppState[T]) paint(id ids.WindowID, canvas shell.Canvas) bool {
	w, ok := a.windows.Get(id)
	if !ok {
		return false
	}
	w.Paint(canvas, a.queue, a.data, a.env)
	return w.WantsAnimationFrame()
}

// doEvent routes one event. Widget and Auto targeted commands go to every
// live window in order until one handles them; everything else goes to the
// source window only.
func (a *AppState[T]) doEvent(source ids.WindowID, ev event.Event, winCtx shell.WinCtx) bool {
	name := event.Name(ev)
	ev = a.delegateEvent(source, ev)
	if ev == nil {
		events.Delegate.Swallow(source.String(), name)
		return true
	}

	if tc, ok := ev.(event.TargetedCommand); ok {
		switch tc.Command.Selector {
		case command.SetMenu:
			a.setMenu(source, tc.Command)
			return true
		case command.ShowContextMenu:
			a.showContextMenu(source, tc.Command)
			return true
		}
		switch tc.Target.Kind() {
		case command.TargetWidget, command.TargetAuto:
			for _, w := range a.windows.All() {
				if w.Event(winCtx, a.queue, ev, &a.data, a.env) {
					return true
				}
			}
			return false
		}
	}

	w, ok := a.windows.Get(source)
	if !ok {
		return false
	}
	return w.Event(winCtx, a.queue, ev, &a.data, a.env)
}

func (a *AppState[T]) setMenu(id ids.WindowID, cmd command.Command) {
	w, ok := a.windows.Get(id)
	if !ok {
		return
	}
	m, err := command.Object[menu.Desc](cmd)
	if err != nil {
		logging.Warnf("set-menu object error: %v", err)
		return
	}
	w.SetMenu(m, a.data, a.env)
}

func (a *AppState[T]) showContextMenu(id ids.WindowID, cmd command.Command) {
	w, ok := a.windows.Get(id)
	if !ok {
		return
	}
	cm, err := command.Object[menu.ContextMenu](cmd)
	if err != nil {
		logging.Warnf("show-context-menu object error: %v", err)
		return
	}
	w.ShowContextMenu(cm.Menu, cm.Location, a.data, a.env)
}

// doUpdate sends the update pass to every live window, not just the one the
// event came from, then invalidates.
func (a *AppState[T]) doUpdate(winCtx shell.WinCtx) {
	for _, w := range a.windows.All() {
		w.Update(winCtx, a.data, a.env)
	}
	a.invalidateAndFinalize()
}

func (a *AppState[T]) invalidateAndFinalize() {
	for _, w := range a.windows.All() {
		w.InvalidateAndFinalize(a.queue, a.data, a.env)
	}
}

func (a *AppState[T]) windowGotFocus(id ids.WindowID) {
	if w, ok := a.windows.Get(id); ok {
		w.RefreshMenu()
	}
}

func (a *AppState[T]) menuCommand(id ids.WindowID, menuID uint32) (command.Command, bool) {
	w, ok := a.windows.Get(id)
	if !ok {
		return command.Command{}, false
	}
	return w.MenuCommand(menuID)
}
