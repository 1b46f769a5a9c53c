// Package menu describes window and context menus in terms of commands and
// turns them into the numbered platform menus the shell displays.
package menu

import (
	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// Item is a selectable menu entry. Selecting it submits Command to the window
// that owns the menu.
type Item struct {
	Label     string
	Command   command.Command
	Hotkey    string
	Disabled  bool
	Separator bool
}

// Desc describes a menu.
type Desc struct {
	Title string
	Items []Item
}

// New returns a menu with the given title and items.
func New(title string, items ...Item) Desc {
	return Desc{Title: title, Items: items}
}

// Entry is shorthand for a plain command item.
func Entry(label string, cmd command.Command) Item {
	return Item{Label: label, Command: cmd}
}

// Separator returns a separator row.
func Separator() Item {
	return Item{Separator: true}
}

// Append returns a copy of d with more items.
func (d Desc) Append(items ...Item) Desc {
	dup := Desc{Title: d.Title, Items: make([]Item, 0, len(d.Items)+len(items))}
	dup.Items = append(dup.Items, d.Items...)
	dup.Items = append(dup.Items, items...)
	return dup
}

// ContextMenu is the payload of the show-context-menu command.
type ContextMenu struct {
	Menu     Desc
	Location shell.Point
}
