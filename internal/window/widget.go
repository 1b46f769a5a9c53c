package window

import (
	"time"

	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/env"
	"github.com/atomicstack/popup-shell/internal/event"
	"github.com/atomicstack/popup-shell/internal/ids"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// Widget is the root of a window's widget tree. Layout, child routing and
// painting details are the widget's own business.
type Widget[T any] interface {
	// Event handles an event, mutating data as needed. Call ctx.SetHandled to
	// report the event consumed.
	Event(ctx *EventCtx, ev event.Event, data *T, e *env.Env)
	// Update is called when the application data changed since the last pass.
	Update(ctx *UpdateCtx, old, data T, e *env.Env)
	Paint(ctx *PaintCtx, data T, e *env.Env)
}

// Finalizer is optionally implemented by root widgets that want a hook at
// the end of every dispatch cycle, after the update pass.
type Finalizer[T any] interface {
	Finalize(ctx *FinalizeCtx, data T, e *env.Env)
}

// EventCtx is handed to Widget.Event.
type EventCtx struct {
	window  ids.WindowID
	queue   *command.Queue
	win     shell.WinCtx
	size    shell.Size
	handled bool
	paint   bool
	anim    bool
}

// WindowID returns the window receiving the event.
func (c *EventCtx) WindowID() ids.WindowID { return c.window }

// Size returns the last size reported for the window.
func (c *EventCtx) Size() shell.Size { return c.size }

// Submit queues a command. Auto targets resolve to this window.
func (c *EventCtx) Submit(cmd command.Command, target command.Target) {
	c.queue.Push(target.Or(c.window), cmd)
}

// SetHandled marks the event consumed.
func (c *EventCtx) SetHandled() { c.handled = true }

// IsHandled reports whether SetHandled was called.
func (c *EventCtx) IsHandled() bool { return c.handled }

// RequestPaint asks for the window to be redrawn at the end of the cycle.
func (c *EventCtx) RequestPaint() { c.paint = true }

// RequestAnimFrame asks for continuous repainting.
func (c *EventCtx) RequestAnimFrame() {
	c.anim = true
	c.paint = true
}

// RequestTimer schedules a timer event after d. Without a platform context
// the zero token is returned and nothing fires.
func (c *EventCtx) RequestTimer(d time.Duration) shell.TimerToken {
	if c.win == nil {
		return 0
	}
	return c.win.RequestTimer(time.Now().Add(d))
}

// UpdateCtx is handed to Widget.Update.
type UpdateCtx struct {
	window ids.WindowID
	paint  bool
}

func (c *UpdateCtx) WindowID() ids.WindowID { return c.window }

func (c *UpdateCtx) RequestPaint() { c.paint = true }

// PaintCtx is handed to Widget.Paint.
type PaintCtx struct {
	window ids.WindowID
	canvas shell.Canvas
	queue  *command.Queue
	anim   bool
}

func (c *PaintCtx) WindowID() ids.WindowID { return c.window }

// Canvas returns the paint target.
func (c *PaintCtx) Canvas() shell.Canvas { return c.canvas }

// Submit queues a command from paint; it is dispatched on the next drain.
func (c *PaintCtx) Submit(cmd command.Command, target command.Target) {
	c.queue.Push(target.Or(c.window), cmd)
}

// RequestAnimFrame asks the platform to paint again on the next frame.
func (c *PaintCtx) RequestAnimFrame() { c.anim = true }

// FinalizeCtx is handed to Finalizer.Finalize.
type FinalizeCtx struct {
	window ids.WindowID
	queue  *command.Queue
	paint  bool
}

func (c *FinalizeCtx) WindowID() ids.WindowID { return c.window }

func (c *FinalizeCtx) Submit(cmd command.Command, target command.Target) {
	c.queue.Push(target.Or(c.window), cmd)
}

func (c *FinalizeCtx) RequestPaint() { c.paint = true }
