// Package window holds the per-window half of the dispatch core: pending and
// live windows, the contexts handed to root widgets, and the registry that
// tracks which windows exist.
package window

import (
	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/data"
	"github.com/atomicstack/popup-shell/internal/env"
	"github.com/atomicstack/popup-shell/internal/event"
	"github.com/atomicstack/popup-shell/internal/ids"
	"github.com/atomicstack/popup-shell/internal/logging/events"
	"github.com/atomicstack/popup-shell/internal/menu"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// Window is a live window: a platform handle, the root widget and the menu
// state. Only the event loop touches it.
type Window[T data.Data[T]] struct {
	id     ids.WindowID
	handle shell.WindowHandle
	root   Widget[T]
	title  string
	size   shell.Size

	menu         *shell.Menu
	menuCmds     *menu.Registry
	contextCmds  *menu.Registry
	last         T
	hasLast      bool
	needsInval   bool
	wantsAnimate bool
}

// ID returns the window id.
func (w *Window[T]) ID() ids.WindowID { return w.id }

// Handle returns the platform handle.
func (w *Window[T]) Handle() shell.WindowHandle { return w.handle }

// Root returns the root widget.
func (w *Window[T]) Root() Widget[T] { return w.root }

// Title returns the window title.
func (w *Window[T]) Title() string { return w.title }

// Event delivers ev to the root widget and reports whether it was handled.
func (w *Window[T]) Event(winCtx shell.WinCtx, queue *command.Queue, ev event.Event, d *T, e *env.Env) bool {
	switch ev := ev.(type) {
	case event.Size:
		w.size = ev.Size
		w.needsInval = true
	case event.WindowConnected:
		w.needsInval = true
	}
	ctx := &EventCtx{window: w.id, queue: queue, win: winCtx, size: w.size}
	w.root.Event(ctx, ev, d, e)
	if ctx.paint {
		w.needsInval = true
	}
	if ctx.anim {
		w.wantsAnimate = true
	}
	events.Window.Event(w.id.String(), event.Name(ev), ctx.handled)
	return ctx.handled
}

// Update gives the root widget a chance to react to changed data. Nothing
// happens when d is the same as the data seen by the previous update.
func (w *Window[T]) Update(winCtx shell.WinCtx, d T, e *env.Env) {
	if w.hasLast && w.last.Same(d) {
		return
	}
	ctx := &UpdateCtx{window: w.id}
	w.root.Update(ctx, w.last, d, e)
	w.last = d
	w.hasLast = true
	if ctx.paint {
		w.needsInval = true
	}
}

// InvalidateAndFinalize runs the finalize hook and asks the platform for a
// repaint if anything requested one since the previous call. Calling it again
// without intervening changes does nothing.
func (w *Window[T]) InvalidateAndFinalize(queue *command.Queue, d T, e *env.Env) {
	if fin, ok := w.root.(Finalizer[T]); ok {
		ctx := &FinalizeCtx{window: w.id, queue: queue}
		fin.Finalize(ctx, d, e)
		if ctx.paint {
			w.needsInval = true
		}
	}
	if !w.needsInval {
		return
	}
	w.needsInval = false
	events.Window.Invalidate(w.id.String())
	w.handle.Invalidate()
}

// NeedsInvalidate reports whether a repaint request is pending.
func (w *Window[T]) NeedsInvalidate() bool { return w.needsInval }

// Paint draws the root widget onto canvas.
func (w *Window[T]) Paint(canvas shell.Canvas, queue *command.Queue, d T, e *env.Env) {
	ctx := &PaintCtx{window: w.id, canvas: canvas, queue: queue}
	w.wantsAnimate = false
	w.root.Paint(ctx, d, e)
	if ctx.anim {
		w.wantsAnimate = true
	}
}

// WantsAnimationFrame reports whether the last event or paint asked for
// another frame.
func (w *Window[T]) WantsAnimationFrame() bool { return w.wantsAnimate }

// SetMenu replaces the window menu.
func (w *Window[T]) SetMenu(m menu.Desc, d T, e *env.Env) {
	w.installMenu(m)
}

// ShowContextMenu pops up m at pos. Its entries stay resolvable until the
// next context menu replaces them.
func (w *Window[T]) ShowContextMenu(m menu.Desc, pos shell.Point, d T, e *env.Env) {
	platform, reg := m.Build()
	w.contextCmds = reg
	w.handle.ShowContextMenu(platform, pos)
}

// RefreshMenu pushes the current menu to the platform again, for platforms
// with one menu bar shared by all windows.
func (w *Window[T]) RefreshMenu() {
	if w.menu != nil {
		w.handle.SetMenu(w.menu)
	}
}

// MenuCommand resolves a platform menu id from the window or context menu.
func (w *Window[T]) MenuCommand(id uint32) (command.Command, bool) {
	if cmd, ok := w.menuCmds.Command(id); ok {
		return cmd, true
	}
	return w.contextCmds.Command(id)
}

func (w *Window[T]) installMenu(m menu.Desc) {
	platform, reg := m.Build()
	w.menu = platform
	w.menuCmds = reg
	w.handle.SetMenu(platform)
}
