package command

import "github.com/atomicstack/popup-shell/internal/ids"

// TargetKind discriminates the Target union.
type TargetKind int

const (
	// TargetAuto addresses the current window of whoever submits the command.
	TargetAuto TargetKind = iota
	TargetWindow
	TargetWidget
)

// Target is the routing address of a command or command event. The zero value
// is Auto.
type Target struct {
	kind   TargetKind
	window ids.WindowID
	widget ids.WidgetID
}

// Auto is the implicit "current window" target.
var Auto = Target{}

// Window targets a specific window.
func Window(id ids.WindowID) Target {
	return Target{kind: TargetWindow, window: id}
}

// Widget targets a specific widget, in whichever window holds it.
func Widget(id ids.WidgetID) Target {
	return Target{kind: TargetWidget, widget: id}
}

// Kind returns which variant the target holds.
func (t Target) Kind() TargetKind {
	return t.kind
}

// WindowID returns the window id for window targets.
func (t Target) WindowID() (ids.WindowID, bool) {
	return t.window, t.kind == TargetWindow
}

// WidgetID returns the widget id for widget targets.
func (t Target) WidgetID() (ids.WidgetID, bool) {
	return t.widget, t.kind == TargetWidget
}

// Or resolves Auto to the given window and returns any other target unchanged.
func (t Target) Or(id ids.WindowID) Target {
	if t.kind == TargetAuto {
		return Window(id)
	}
	return t
}

func (t Target) String() string {
	switch t.kind {
	case TargetWindow:
		return t.window.String()
	case TargetWidget:
		return t.widget.String()
	default:
		return "auto"
	}
}
