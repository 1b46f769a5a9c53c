// Package term is a terminal platform shell built on Bubble Tea. All windows
// share one program: they are stacked, the front window is drawn inside a
// Lip Gloss frame and receives input, and ctrl+p opens a filterable palette
// over the front window's menu.
package term

import (
	"errors"
	"reflect"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-shell/internal/logging"
	"github.com/atomicstack/popup-shell/internal/shell"
	"github.com/atomicstack/popup-shell/internal/theme"
)

// ErrNoChooser is returned when no external file chooser is configured.
var ErrNoChooser = errors.New("no file chooser configured")

// DialogFunc replaces the built-in file dialog. save tells open from save.
type DialogFunc func(save bool, opts shell.FileDialogOptions) (string, bool)

// Options configure a Shell.
type Options struct {
	// Chooser is a shell command printing the chosen path on stdout.
	Chooser string
	// Dialog overrides the chooser and tty prompt entirely.
	Dialog DialogFunc
	// SystemClipboard enables the OS clipboard; otherwise an in-memory one
	// is used.
	SystemClipboard bool
	Styles          *theme.Styles
}

// Shell implements shell.Application on a single Bubble Tea program. Apart
// from the outbox, its state is only touched from the program's loop.
type Shell struct {
	opts   Options
	styles *theme.Styles

	mu      sync.Mutex
	outbox  []func()
	nudged  bool
	program *tea.Program

	windows  []*Window
	nextID   uint64
	width    int
	height   int
	palette  *palette
	clip     *clipBuffer
	cmds     []tea.Cmd
	parked   []tick
	live     bool
	quitting bool
	timerSeq uint64
	handlers map[reflect.Type]msgHandler
}

// New returns a shell ready to accept windows. Call Run to start the loop.
func New(opts Options) *Shell {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	s := &Shell{
		opts:   opts,
		styles: styles,
		clip:   &clipBuffer{system: opts.SystemClipboard},
	}
	s.registerHandlers()
	return s
}

// Run starts the Bubble Tea program and blocks until it exits.
func (s *Shell) Run() error {
	p := tea.NewProgram(s, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	s.mu.Lock()
	s.program = p
	s.live = true
	s.mu.Unlock()
	_, err := p.Run()
	return err
}

// NewWindow creates a hidden window and connects its handler before
// returning. The connected and size callbacks follow on the loop.
func (s *Shell) NewWindow(b shell.WindowBuilder) (shell.WindowHandle, error) {
	if b.Handler == nil {
		return nil, errors.New("window builder has no handler")
	}
	if s.quitting {
		return nil, errors.New("shell is shutting down")
	}
	s.nextID++
	w := &Window{shell: s, seq: s.nextID, handler: b.Handler, title: b.Title, dirty: true}
	if b.Size.Width > 0 && b.Size.Height > 0 {
		w.size = b.Size
	}
	s.windows = append(s.windows, w)
	b.Handler.Connect(w)
	s.post(func() {
		if w.destroyed {
			return
		}
		ctx := s.ctx(w)
		w.handler.Connected(ctx)
		if size := s.contentSize(w); size.Width > 0 {
			w.handler.Size(size.Width, size.Height, ctx)
		}
	})
	return w, nil
}

// Quit stops the program after the current update.
func (s *Shell) Quit() {
	if s.quitting {
		return
	}
	s.quitting = true
	s.cmds = append(s.cmds, tea.Quit)
}

// Hide suspends the program like ctrl+z in a shell would.
func (s *Shell) Hide() {
	s.cmds = append(s.cmds, tea.Suspend)
}

// HideOthers has no terminal equivalent.
func (s *Shell) HideOthers() {}

func (s *Shell) Clipboard() shell.Clipboard { return s.clip }

// Windows returns the windows in stacking order, front last.
func (s *Shell) Windows() []*Window {
	return append([]*Window(nil), s.windows...)
}

// Front returns the window receiving input.
func (s *Shell) Front() *Window {
	for i := len(s.windows) - 1; i >= 0; i-- {
		if s.windows[i].shown {
			return s.windows[i]
		}
	}
	return nil
}

// Quitting reports whether Quit was requested.
func (s *Shell) Quitting() bool { return s.quitting }

// post queues fn to run on the loop once the current update is done. It may
// be called from any goroutine.
func (s *Shell) post(fn func()) {
	s.mu.Lock()
	s.outbox = append(s.outbox, fn)
	p := s.program
	nudge := p != nil && !s.nudged
	if nudge {
		s.nudged = true
	}
	s.mu.Unlock()
	if nudge {
		// Send blocks until the loop reads it, which would deadlock when
		// post runs on the loop itself.
		go p.Send(wakeMsg{})
	}
}

// flush runs posted callbacks until none are left.
func (s *Shell) flush() {
	for round := 0; round < maxFlushRounds; round++ {
		s.mu.Lock()
		batch := s.outbox
		s.outbox = nil
		s.nudged = false
		s.mu.Unlock()
		if len(batch) == 0 {
			return
		}
		for _, fn := range batch {
			fn()
		}
	}
	logging.Warnf("callbacks still pending after %d rounds", maxFlushRounds)
}

const maxFlushRounds = 64

func (s *Shell) raise(w *Window) {
	for i, other := range s.windows {
		if other == w {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			break
		}
	}
	s.windows = append(s.windows, w)
	w.dirty = true
}

func (s *Shell) remove(w *Window) {
	for i, other := range s.windows {
		if other == w {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			break
		}
	}
	if s.palette != nil && s.palette.window == w {
		s.palette = nil
	}
	if front := s.Front(); front != nil {
		front.dirty = true
	}
}

// cycle brings the bottom-most visible window to the front.
func (s *Shell) cycle() {
	for _, w := range s.windows {
		if w.shown && w != s.Front() {
			s.raise(w)
			s.post(func() {
				if !w.destroyed {
					w.handler.GotFocus(s.ctx(w))
				}
			})
			return
		}
	}
}

func (s *Shell) contentSize(w *Window) shell.Size {
	if w.size.Width > 0 {
		return w.size
	}
	if s.width <= 0 || s.height <= 0 {
		return shell.Size{}
	}
	// frame border plus status line
	width, height := s.width-2, s.height-3
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return shell.Size{Width: width, Height: height}
}

func (s *Shell) ctx(w *Window) shell.WinCtx {
	return &winCtx{shell: s, window: w}
}
