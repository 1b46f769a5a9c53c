package ui

import (
	"slices"

	"github.com/atomicstack/popup-shell/internal/ids"
)

// Model is the application data shared by every window.
type Model struct {
	Counter      int
	LastFile     string
	LastSaved    string
	LastExternal string
	Pasted       string
	Swallowed    int
	Windows      []ids.WindowID
}

// Same compares every field. Windows is compared by value; mutations always
// go through withWindow and withoutWindow so earlier snapshots stay intact.
func (m Model) Same(other Model) bool {
	return m.Counter == other.Counter &&
		m.LastFile == other.LastFile &&
		m.LastSaved == other.LastSaved &&
		m.LastExternal == other.LastExternal &&
		m.Pasted == other.Pasted &&
		m.Swallowed == other.Swallowed &&
		slices.Equal(m.Windows, other.Windows)
}

func (m Model) withWindow(id ids.WindowID) []ids.WindowID {
	out := make([]ids.WindowID, 0, len(m.Windows)+1)
	out = append(out, m.Windows...)
	return append(out, id)
}

func (m Model) withoutWindow(id ids.WindowID) []ids.WindowID {
	out := make([]ids.WindowID, 0, len(m.Windows))
	for _, w := range m.Windows {
		if w != id {
			out = append(out, w)
		}
	}
	return out
}
