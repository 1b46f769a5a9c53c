package core

import (
	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/env"
	"github.com/atomicstack/popup-shell/internal/event"
	"github.com/atomicstack/popup-shell/internal/ids"
)

// Delegate gets first refusal on every event and hears about windows coming
// and going. Returning nil from Event swallows the event; the dispatch then
// reports it handled without any window seeing it.
type Delegate[T any] interface {
	Event(ctx *DelegateCtx, ev event.Event, data *T, e *env.Env) event.Event
	WindowAdded(ctx *DelegateCtx, id ids.WindowID, data *T, e *env.Env)
	WindowRemoved(ctx *DelegateCtx, id ids.WindowID, data *T, e *env.Env)
}

// DelegateCtx lets a delegate queue commands.
type DelegateCtx struct {
	source ids.WindowID
	queue  *command.Queue
}

// SourceID returns the window the current event or notification is about.
func (c *DelegateCtx) SourceID() ids.WindowID { return c.source }

// Submit queues cmd. An Auto target resolves to the source window.
func (c *DelegateCtx) Submit(cmd command.Command, target command.Target) {
	c.queue.Push(target.Or(c.source), cmd)
}
