// Package extevent lets code running outside the event loop submit commands
// to the application. Submissions land in a locked inbox; the host then asks
// one designated window (the waker) for an idle callback, during which the
// loop drains the inbox.
package extevent

import (
	"sync"

	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/ids"
	"github.com/atomicstack/popup-shell/internal/logging/events"
	"github.com/atomicstack/popup-shell/internal/shell"
)

const (
	// RunCommandsToken asks a handler to drain the command queue.
	RunCommandsToken shell.IdleToken = 1
	// ExtEventToken asks a handler to drain the external event inbox.
	ExtEventToken shell.IdleToken = 2
)

// Item is one external submission. An Auto target is delivered to the window
// that drains the inbox.
type Item struct {
	Target  command.Target
	Command command.Command
}

// Host owns the inbox and the current waker. All methods are safe for
// concurrent use.
type Host struct {
	mu          sync.Mutex
	inbox       []Item
	idle        shell.IdleHandle
	waker       ids.WindowID
	hasWaker    bool
	wakePending bool
}

// NewHost returns a host with an empty inbox and no waker.
func NewHost() *Host {
	return &Host{}
}

// Sink returns a producer handle for this host.
func (h *Host) Sink() *Sink {
	return &Sink{host: h}
}

// Submit appends an item and requests a wake-up from the waker unless one is
// already outstanding. Without a waker the item waits for SetIdle.
func (h *Host) Submit(target command.Target, cmd command.Command) {
	h.mu.Lock()
	h.inbox = append(h.inbox, Item{Target: target, Command: cmd})
	idle, waker := h.armLocked()
	h.mu.Unlock()

	events.Ext.Submit(target.String(), cmd.Selector.String())
	if idle != nil {
		events.Ext.Wake(waker.String())
		idle.ScheduleIdle(ExtEventToken)
	}
}

// Recv pops the oldest item. Once the inbox is observed empty the next
// submission may schedule a new wake-up.
func (h *Host) Recv() (Item, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.inbox) == 0 {
		h.wakePending = false
		return Item{}, false
	}
	item := h.inbox[0]
	h.inbox[0] = Item{}
	h.inbox = h.inbox[1:]
	return item, true
}

// HasPendingItems reports whether anything waits in the inbox.
func (h *Host) HasPendingItems() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.inbox) > 0
}

// SetIdle designates the waker. Items already waiting trigger a wake-up right
// away.
func (h *Host) SetIdle(idle shell.IdleHandle, id ids.WindowID) {
	h.mu.Lock()
	h.idle = idle
	h.waker = id
	h.hasWaker = idle != nil
	h.wakePending = false
	schedule, waker := h.armLocked()
	h.mu.Unlock()

	events.Ext.Waker(id.String())
	if schedule != nil {
		events.Ext.Wake(waker.String())
		schedule.ScheduleIdle(ExtEventToken)
	}
}

// ClearIdle drops the current waker. A wake-up it still owed is forgotten.
func (h *Host) ClearIdle() {
	h.mu.Lock()
	prev := h.waker
	h.idle = nil
	h.hasWaker = false
	h.wakePending = false
	h.mu.Unlock()
	events.Ext.WakerCleared(prev.String())
}

// Waker returns the window currently responsible for wake-ups.
func (h *Host) Waker() (ids.WindowID, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.waker, h.hasWaker
}

// armLocked returns the idle handle to poke when a wake-up is due. Callers
// hold h.mu and must call ScheduleIdle after unlocking.
func (h *Host) armLocked() (shell.IdleHandle, ids.WindowID) {
	if h.idle == nil || h.wakePending || len(h.inbox) == 0 {
		return nil, 0
	}
	h.wakePending = true
	return h.idle, h.waker
}
