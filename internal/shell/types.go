package shell

import "strings"

// Size is a width/height pair in platform units (cells for the terminal).
type Size struct {
	Width  int
	Height int
}

// Point is a position in window coordinates.
type Point struct {
	X int
	Y int
}

// Vec2 is a scroll delta.
type Vec2 struct {
	X float64
	Y float64
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
	ModMeta
)

// Has reports whether all bits in m are set.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

func (m Modifiers) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	return strings.Join(parts, "+")
}

// MouseButton names the button involved in a mouse event.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// MouseEvent describes a mouse press, release or move.
type MouseEvent struct {
	Pos    Point
	Mods   Modifiers
	Button MouseButton
	Count  int
}

// KeyEvent describes a key press or release. Key is a printable name such as
// "a", "enter" or "ctrl+v".
type KeyEvent struct {
	Key   string
	Runes []rune
	Mods  Modifiers
}

// FileDialogOptions configures open and save dialogs.
type FileDialogOptions struct {
	Title        string
	ShowHidden   bool
	AllowedTypes []string
	DefaultName  string
	Directory    string
}

// FileInfo is the result of a file dialog.
type FileInfo struct {
	Path string
}

// MenuEntry is one platform menu row.
type MenuEntry struct {
	ID        uint32
	Label     string
	Hotkey    string
	Disabled  bool
	Separator bool
}

// Menu is a flat platform menu.
type Menu struct {
	Title   string
	Entries []MenuEntry
}
