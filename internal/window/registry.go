package window

import (
	"fmt"

	"github.com/atomicstack/popup-shell/internal/data"
	"github.com/atomicstack/popup-shell/internal/ids"
	"github.com/atomicstack/popup-shell/internal/logging"
	"github.com/atomicstack/popup-shell/internal/logging/events"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// Registry tracks pending and live windows. An id is in at most one of the
// two sets. Live windows iterate in connect order.
type Registry[T data.Data[T]] struct {
	pending map[ids.WindowID]*Pending[T]
	live    map[ids.WindowID]*Window[T]
	order   []ids.WindowID
}

// NewRegistry returns an empty registry.
func NewRegistry[T data.Data[T]]() *Registry[T] {
	return &Registry[T]{
		pending: make(map[ids.WindowID]*Pending[T]),
		live:    make(map[ids.WindowID]*Window[T]),
	}
}

// Add registers a pending window. Reusing an id that is pending or live is a
// protocol violation and panics.
func (r *Registry[T]) Add(id ids.WindowID, p *Pending[T]) {
	if _, dup := r.pending[id]; dup {
		panic(fmt.Sprintf("duplicate pending window %s", id))
	}
	if _, dup := r.live[id]; dup {
		panic(fmt.Sprintf("pending window %s is already live", id))
	}
	r.pending[id] = p
	events.Window.Pending(id.String())
}

// Connect moves a pending window to the live set. Without a pending entry
// the platform broke the connect protocol; that is logged and ignored.
func (r *Registry[T]) Connect(id ids.WindowID, handle shell.WindowHandle) (*Window[T], bool) {
	p, ok := r.pending[id]
	if !ok {
		logging.Errorf("no pending window for connecting handle %s", id)
		return nil, false
	}
	delete(r.pending, id)
	if _, dup := r.live[id]; dup {
		panic(fmt.Sprintf("duplicate window %s", id))
	}
	w := p.IntoWindow(id, handle)
	r.live[id] = w
	r.order = append(r.order, id)
	events.Window.Connect(id.String())
	return w, true
}

// Discard drops a pending window whose platform window never materialised.
func (r *Registry[T]) Discard(id ids.WindowID) bool {
	if _, ok := r.pending[id]; !ok {
		return false
	}
	delete(r.pending, id)
	return true
}

// Remove drops a live window and returns its handle for final cleanup.
func (r *Registry[T]) Remove(id ids.WindowID) (shell.WindowHandle, bool) {
	w, ok := r.live[id]
	if !ok {
		return nil, false
	}
	delete(r.live, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	events.Window.Remove(id.String())
	return w.handle, true
}

// Get returns a live window.
func (r *Registry[T]) Get(id ids.WindowID) (*Window[T], bool) {
	w, ok := r.live[id]
	return w, ok
}

// All returns the live windows in connect order. The slice is a snapshot.
func (r *Registry[T]) All() []*Window[T] {
	out := make([]*Window[T], 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.live[id])
	}
	return out
}

// IDs returns the live window ids in connect order.
func (r *Registry[T]) IDs() []ids.WindowID {
	return append([]ids.WindowID(nil), r.order...)
}

// Len returns the number of live windows.
func (r *Registry[T]) Len() int { return len(r.live) }

// IsPending reports whether id waits for its platform handle.
func (r *Registry[T]) IsPending(id ids.WindowID) bool {
	_, ok := r.pending[id]
	return ok
}

// IsLive reports whether id is connected.
func (r *Registry[T]) IsLive(id ids.WindowID) bool {
	_, ok := r.live[id]
	return ok
}
