// Package event defines the internal events delivered to the delegate and the
// widget tree. Each platform callback maps to exactly one of these.
package event

import (
	"fmt"

	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// Event is implemented by every internal event type.
type Event interface {
	isEvent()
}

// WindowConnected is sent once the platform window is live.
type WindowConnected struct{}

// Size reports the new window size.
type Size struct {
	shell.Size
}

type MouseDown struct {
	shell.MouseEvent
}

type MouseUp struct {
	shell.MouseEvent
}

type MouseMove struct {
	shell.MouseEvent
}

type KeyDown struct {
	shell.KeyEvent
}

type KeyUp struct {
	shell.KeyEvent
}

// Wheel is a scroll event.
type Wheel struct {
	Delta shell.Vec2
	Mods  shell.Modifiers
}

// Zoom is a pinch or zoom gesture.
type Zoom struct {
	Delta float64
}

// Timer fires for a token obtained from RequestTimer.
type Timer struct {
	Token shell.TimerToken
}

// GotFocus is sent when the window becomes the focused window.
type GotFocus struct{}

// TargetedCommand carries a command into the widget tree.
type TargetedCommand struct {
	Target  command.Target
	Command command.Command
}

// Paste carries the clipboard contents at the time of the paste command.
type Paste struct {
	Text string
	OK   bool
}

func (WindowConnected) isEvent() {}
func (Size) isEvent()            {}
func (MouseDown) isEvent()       {}
func (MouseUp) isEvent()         {}
func (MouseMove) isEvent()       {}
func (KeyDown) isEvent()         {}
func (KeyUp) isEvent()           {}
func (Wheel) isEvent()           {}
func (Zoom) isEvent()            {}
func (Timer) isEvent()           {}
func (GotFocus) isEvent()        {}
func (TargetedCommand) isEvent() {}
func (Paste) isEvent()           {}

// Name returns a short stable name for tracing.
func Name(ev Event) string {
	switch e := ev.(type) {
	case WindowConnected:
		return "connected"
	case Size:
		return "size"
	case MouseDown:
		return "mouse-down"
	case MouseUp:
		return "mouse-up"
	case MouseMove:
		return "mouse-move"
	case KeyDown:
		return "key-down:" + e.Key
	case KeyUp:
		return "key-up:" + e.Key
	case Wheel:
		return "wheel"
	case Zoom:
		return "zoom"
	case Timer:
		return "timer"
	case GotFocus:
		return "got-focus"
	case TargetedCommand:
		return "command:" + string(e.Command.Selector)
	case Paste:
		return "paste"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", ev)
	}
}
