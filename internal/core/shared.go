package core

import (
	"github.com/atomicstack/popup-shell/internal/data"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// shared is the single owner of the application state, reachable from every
// window handler of the process. Access is serialized by the platform loop;
// the borrowed flag turns accidental re-entry into a loud failure instead of
// silent corruption.
type shared[T data.Data[T]] struct {
	state    *AppState[T]
	app      shell.Application
	borrowed bool
}

func newShared[T data.Data[T]](state *AppState[T], app shell.Application) *shared[T] {
	return &shared[T]{state: state, app: app}
}

// with runs fn with exclusive access to the state. Borrows must not nest.
func (s *shared[T]) with(fn func(a *AppState[T])) {
	if s.borrowed {
		panic("app state already borrowed")
	}
	s.borrowed = true
	defer func() { s.borrowed = false }()
	fn(s.state)
}

// borrow is with for callers that need a result back.
func borrow[T data.Data[T], R any](s *shared[T], fn func(a *AppState[T]) R) R {
	var out R
	s.with(func(a *AppState[T]) { out = fn(a) })
	return out
}
