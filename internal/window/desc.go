package window

import (
	"errors"
	"fmt"

	"github.com/atomicstack/popup-shell/internal/data"
	"github.com/atomicstack/popup-shell/internal/ids"
	"github.com/atomicstack/popup-shell/internal/menu"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// ErrNoRoot is returned for descriptors without a root widget builder.
var ErrNoRoot = errors.New("window descriptor has no root widget")

const defaultTitle = "popup-shell"

// Desc describes a window to be created. It is the payload of the
// new-window command.
type Desc[T data.Data[T]] struct {
	ID    ids.WindowID
	Title string
	Size  shell.Size
	Menu  *menu.Desc
	Root  func() Widget[T]

	claimed bool
}

// NewDesc returns a descriptor with a freshly allocated window id.
func NewDesc[T data.Data[T]](root func() Widget[T]) *Desc[T] {
	return &Desc[T]{ID: ids.NewWindowID(), Title: defaultTitle, Root: root}
}

func (d *Desc[T]) WithTitle(title string) *Desc[T] {
	d.Title = title
	return d
}

func (d *Desc[T]) WithSize(size shell.Size) *Desc[T] {
	d.Size = size
	return d
}

func (d *Desc[T]) WithMenu(m menu.Desc) *Desc[T] {
	d.Menu = &m
	return d
}

// Claim returns the id for the next window built from d. The first claim
// gets ID (allocated if zero); a descriptor used again, for example from a
// menu entry selected twice, gets a fresh id every time.
func (d *Desc[T]) Claim() ids.WindowID {
	if d.claimed {
		return ids.NewWindowID()
	}
	d.claimed = true
	if d.ID == 0 {
		d.ID = ids.NewWindowID()
	}
	return d.ID
}

// Pending builds the root widget and returns the pending window.
func (d *Desc[T]) Pending() (*Pending[T], error) {
	if d == nil || d.Root == nil {
		return nil, ErrNoRoot
	}
	root := d.Root()
	if root == nil {
		return nil, fmt.Errorf("%s: %w", d.ID, ErrNoRoot)
	}
	return &Pending[T]{root: root, title: d.Title, size: d.Size, menu: d.Menu}, nil
}

// Pending is a window waiting for the platform to confirm its handle.
type Pending[T data.Data[T]] struct {
	root  Widget[T]
	title string
	size  shell.Size
	menu  *menu.Desc
}

// NewPending wraps a root widget directly.
func NewPending[T data.Data[T]](root Widget[T], title string) *Pending[T] {
	return &Pending[T]{root: root, title: title}
}

// Title returns the requested title.
func (p *Pending[T]) Title() string { return p.title }

// Size returns the requested size.
func (p *Pending[T]) Size() shell.Size { return p.size }

// Menu returns the requested menu, if any.
func (p *Pending[T]) Menu() *menu.Desc { return p.menu }

// IntoWindow turns the pending descriptor into a live window bound to handle.
func (p *Pending[T]) IntoWindow(id ids.WindowID, handle shell.WindowHandle) *Window[T] {
	w := &Window[T]{
		id:     id,
		handle: handle,
		root:   p.root,
		title:  p.title,
		size:   p.size,
	}
	if p.menu != nil {
		w.installMenu(*p.menu)
	}
	return w
}
