package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-shell/internal/shell"
)

// Window is one virtual terminal window. It implements shell.WindowHandle
// and shell.IdleHandle.
type Window struct {
	shell   *Shell
	seq     uint64
	handler shell.WinHandler
	title   string
	menu    *shell.Menu
	size    shell.Size

	shown     bool
	closed    bool
	destroyed bool
	dirty     bool
	lines     []string
}

// Title returns the current title.
func (w *Window) Title() string { return w.title }

// Menu returns the menu last set by the application.
func (w *Window) Menu() *shell.Menu { return w.menu }

// Lines returns what the window painted last.
func (w *Window) Lines() []string { return append([]string(nil), w.lines...) }

// Closed reports whether Close was called.
func (w *Window) Closed() bool { return w.closed }

func (w *Window) Show() {
	if w.closed {
		return
	}
	w.shown = true
	w.shell.raise(w)
}

// Close removes the window from the stack and delivers Destroy once the
// current update is done. The program exits with the last window.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	s := w.shell
	s.remove(w)
	s.post(func() {
		if w.destroyed {
			return
		}
		w.destroyed = true
		w.handler.Destroy(s.ctx(w))
		if len(s.windows) == 0 {
			s.Quit()
		}
	})
}

func (w *Window) BringToFrontAndFocus() {
	if w.closed {
		return
	}
	w.shown = true
	w.shell.raise(w)
	w.shell.post(func() {
		if !w.destroyed {
			w.handler.GotFocus(w.shell.ctx(w))
		}
	})
}

func (w *Window) Invalidate() { w.dirty = true }

func (w *Window) SetTitle(title string) {
	w.title = title
	w.dirty = true
}

func (w *Window) SetMenu(menu *shell.Menu) { w.menu = menu }

// ShowContextMenu opens the palette over menu.
func (w *Window) ShowContextMenu(menu *shell.Menu, pos shell.Point) {
	if w.closed || menu == nil {
		return
	}
	w.shell.openPalette(w, menu, pos)
}

func (w *Window) IdleHandle() (shell.IdleHandle, bool) { return w, true }

// ScheduleIdle queues an idle callback. Safe from any goroutine.
func (w *Window) ScheduleIdle(token shell.IdleToken) {
	s := w.shell
	s.post(func() {
		if w.destroyed {
			return
		}
		w.handler.Idle(token, s.ctx(w))
	})
}

// winCtx is handed to every callback of one window.
type winCtx struct {
	shell  *Shell
	window *Window
}

func (c *winCtx) Invalidate() { c.window.dirty = true }

// RequestTimer arranges a Timer callback at deadline.
func (c *winCtx) RequestTimer(deadline time.Time) shell.TimerToken {
	s := c.shell
	s.timerSeq++
	token := shell.TimerToken(s.timerSeq)
	d := time.Until(deadline)
	if d < 0 {
		d = 0
	}
	s.schedule(d, timerMsg{window: c.window, token: token})
	return token
}

func (c *winCtx) OpenFileSync(opts shell.FileDialogOptions) (shell.FileInfo, bool) {
	return c.shell.dialog(false, opts)
}

func (c *winCtx) SaveAsSync(opts shell.FileDialogOptions) (shell.FileInfo, bool) {
	return c.shell.dialog(true, opts)
}

type tick struct {
	after time.Duration
	msg   tea.Msg
}

// schedule delivers msg after d. Without a running program the tick is
// parked until FireTimers.
func (s *Shell) schedule(d time.Duration, msg tea.Msg) {
	if !s.live {
		s.parked = append(s.parked, tick{after: d, msg: msg})
		return
	}
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg { return msg }))
}
