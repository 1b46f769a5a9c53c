package core

import (
	"errors"
	"fmt"

	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/data"
	"github.com/atomicstack/popup-shell/internal/env"
	"github.com/atomicstack/popup-shell/internal/extevent"
	"github.com/atomicstack/popup-shell/internal/logging/events"
	"github.com/atomicstack/popup-shell/internal/shell"
	"github.com/atomicstack/popup-shell/internal/window"
)

// ErrNoWindows is returned by Launch when no initial window was configured.
var ErrNoWindows = errors.New("launcher has no windows")

// Launcher collects what an application needs before the platform starts.
type Launcher[T data.Data[T]] struct {
	windows  []*window.Desc[T]
	delegate Delegate[T]
	env      *env.Env
	ext      *extevent.Host
	state    *shared[T]
}

// NewLauncher starts with a single initial window.
func NewLauncher[T data.Data[T]](desc *window.Desc[T]) *Launcher[T] {
	l := &Launcher[T]{ext: extevent.NewHost(), env: env.New()}
	if desc != nil {
		l.windows = append(l.windows, desc)
	}
	return l
}

func (l *Launcher[T]) WithDelegate(d Delegate[T]) *Launcher[T] {
	l.delegate = d
	return l
}

func (l *Launcher[T]) WithEnv(e *env.Env) *Launcher[T] {
	if e != nil {
		l.env = e
	}
	return l
}

// AddWindow adds another initial window.
func (l *Launcher[T]) AddWindow(desc *window.Desc[T]) *Launcher[T] {
	l.windows = append(l.windows, desc)
	return l
}

// Sink returns the producer handle for external events. It may be used
// before Launch; submissions wait until the first window connects.
func (l *Launcher[T]) Sink() *extevent.Sink {
	return l.ext.Sink()
}

// Launch builds the shared state and creates every initial window on app.
// The platform's own run loop is started by the caller afterwards.
func (l *Launcher[T]) Launch(app shell.Application, d T) error {
	if len(l.windows) == 0 {
		return ErrNoWindows
	}
	if l.state != nil {
		return errors.New("launcher already launched")
	}
	l.state = newShared(newAppState(l.delegate, l.ext, l.env, d), app)
	events.App.Launch(len(l.windows))
	built := make([]shell.WindowHandle, 0, len(l.windows))
	for _, desc := range l.windows {
		handle, err := buildWindow(l.state, desc)
		if err != nil {
			l.rollback(built)
			return fmt.Errorf("launch window: %w", err)
		}
		built = append(built, handle)
	}
	for _, handle := range built {
		handle.Show()
	}
	return nil
}

// rollback undoes a failed Launch so it can be retried: windows already
// created are closed and the waker is dropped with the state it belonged to.
func (l *Launcher[T]) rollback(built []shell.WindowHandle) {
	for _, handle := range built {
		handle.Close()
	}
	l.ext.ClearIdle()
	l.state = nil
}

// Data returns the current application data. It must be called from the
// platform loop, never from inside a callback.
func (l *Launcher[T]) Data() (T, bool) {
	if l.state == nil {
		var zero T
		return zero, false
	}
	return borrow(l.state, func(a *AppState[T]) T { return a.data }), true
}

// RunCommands asks the window behind idle to drain the command queue. Use it
// after queueing commands from outside a callback.
func RunCommands(idle shell.IdleHandle) {
	idle.ScheduleIdle(extevent.RunCommandsToken)
}

// Submit queues cmd from outside a callback and schedules a drain on the
// current external-event waker. It must be called on the platform loop.
func (l *Launcher[T]) Submit(target command.Target, cmd command.Command) bool {
	if l.state == nil {
		return false
	}
	var idle shell.IdleHandle
	l.state.with(func(a *AppState[T]) {
		id, ok := a.ext.Waker()
		if !ok {
			return
		}
		w, ok := a.windows.Get(id)
		if !ok {
			return
		}
		h, ok := w.Handle().IdleHandle()
		if !ok {
			return
		}
		a.queue.Push(target.Or(id), cmd)
		idle = h
	})
	if idle == nil {
		return false
	}
	RunCommands(idle)
	return true
}
