// Package data holds the constraint application data must satisfy to be
// shared across windows by the dispatch core.
package data

// Data is implemented by application state. Same reports whether other is
// observably identical to the receiver; the core only calls it to decide
// whether windows need an update pass to react to a change.
type Data[T any] interface {
	Same(other T) bool
}
