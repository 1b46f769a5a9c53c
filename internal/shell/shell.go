// Package shell describes the capabilities the dispatch core needs from a
// host windowing system and the callbacks the host delivers back. A concrete
// terminal implementation lives in shell/term.
package shell

import "time"

// IdleToken tells an idle callback why it was scheduled.
type IdleToken uint32

// TimerToken identifies a requested timer when it fires.
type TimerToken uint64

// IdleHandle schedules an idle callback on the window's handler. It may be
// used from any goroutine.
type IdleHandle interface {
	ScheduleIdle(token IdleToken)
}

// WindowHandle is the platform side of a live window.
type WindowHandle interface {
	Show()
	// Close asks the platform to close the window. The handler's Destroy
	// callback follows once the platform has done so.
	Close()
	BringToFrontAndFocus()
	// Invalidate requests a repaint.
	Invalidate()
	SetTitle(title string)
	SetMenu(menu *Menu)
	ShowContextMenu(menu *Menu, pos Point)
	IdleHandle() (IdleHandle, bool)
}

// WinCtx is handed to every callback and is only valid for its duration.
type WinCtx interface {
	Invalidate()
	RequestTimer(deadline time.Time) TimerToken
	// OpenFileSync shows a modal open dialog; ok is false when cancelled.
	OpenFileSync(opts FileDialogOptions) (FileInfo, bool)
	// SaveAsSync shows a modal save dialog; ok is false when cancelled.
	SaveAsSync(opts FileDialogOptions) (FileInfo, bool)
}

// WinHandler receives the callbacks of one platform window.
type WinHandler interface {
	Connect(handle WindowHandle)
	Connected(ctx WinCtx)
	// Paint draws the window and reports whether another animation frame is wanted.
	Paint(canvas Canvas, ctx WinCtx) bool
	Size(width, height int, ctx WinCtx)
	// Command delivers a menu selection by platform menu id.
	Command(id uint32, ctx WinCtx)
	MouseDown(ev MouseEvent, ctx WinCtx) bool
	MouseUp(ev MouseEvent, ctx WinCtx) bool
	MouseMove(ev MouseEvent, ctx WinCtx) bool
	KeyDown(ev KeyEvent, ctx WinCtx) bool
	KeyUp(ev KeyEvent, ctx WinCtx)
	Wheel(delta Vec2, mods Modifiers, ctx WinCtx)
	Zoom(delta float64, ctx WinCtx)
	GotFocus(ctx WinCtx)
	Timer(token TimerToken, ctx WinCtx)
	Idle(token IdleToken, ctx WinCtx)
	// Destroy is called once after the platform window is gone.
	Destroy(ctx WinCtx)
}

// WindowBuilder carries what the platform needs to create a window.
type WindowBuilder struct {
	Handler WinHandler
	Title   string
	Size    Size
}

// Clipboard is the platform clipboard.
type Clipboard interface {
	String() (string, bool)
	SetString(text string)
}

// Application is the process-wide platform capability set.
type Application interface {
	// NewWindow creates a platform window. The handler's Connect callback runs
	// before NewWindow returns.
	NewWindow(builder WindowBuilder) (WindowHandle, error)
	Quit()
	// Hide and HideOthers are no-ops on platforms without the concept.
	Hide()
	HideOthers()
	Clipboard() Clipboard
}

// Canvas is the opaque paint target handed to widgets.
type Canvas interface {
	Size() Size
	DrawText(line string)
}
