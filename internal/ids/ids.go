// Package ids generates the opaque identifiers used to address windows and
// widgets. Identifiers come from process-wide counters and are never reused.
package ids

import (
	"strconv"
	"sync/atomic"
)

// WindowID identifies a window for its whole lifetime, pending or live.
type WindowID uint64

// WidgetID addresses a widget for widget-targeted commands.
type WidgetID uint64

var (
	nextWindow atomic.Uint64
	nextWidget atomic.Uint64
)

// NewWindowID returns a fresh, never before issued window id.
func NewWindowID() WindowID {
	return WindowID(nextWindow.Add(1))
}

// NewWidgetID returns a fresh widget id.
func NewWidgetID() WidgetID {
	return WidgetID(nextWidget.Add(1))
}

func (id WindowID) String() string {
	return "window#" + strconv.FormatUint(uint64(id), 10)
}

func (id WidgetID) String() string {
	return "widget#" + strconv.FormatUint(uint64(id), 10)
}
