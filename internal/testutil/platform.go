// Package testutil provides an in-memory platform shell so the dispatch core
// can be driven from tests without a terminal.
package testutil

import (
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/popup-shell/internal/shell"
)

// ErrPlatform is what Platform.NewWindow returns when told to fail.
var ErrPlatform = errors.New("platform refused window")

// Platform records every request made against the application.
type Platform struct {
	Windows   []*Handle
	Clip      *Clipboard
	FailNext  bool
	NoIdle    bool
	Quits     int
	Hides     int
	HideOther int
}

// NewPlatform returns a platform with an empty clipboard.
func NewPlatform() *Platform {
	return &Platform{Clip: &Clipboard{}}
}

// NewWindow connects the handler synchronously, like a real shell does.
func (p *Platform) NewWindow(b shell.WindowBuilder) (shell.WindowHandle, error) {
	if p.FailNext {
		p.FailNext = false
		return nil, ErrPlatform
	}
	h := &Handle{Handler: b.Handler, Title: b.Title, idle: &Idle{}, noIdle: p.NoIdle}
	p.Windows = append(p.Windows, h)
	b.Handler.Connect(h)
	return h, nil
}

func (p *Platform) Quit()                      { p.Quits++ }
func (p *Platform) Hide()                      { p.Hides++ }
func (p *Platform) HideOthers()                { p.HideOther++ }
func (p *Platform) Clipboard() shell.Clipboard { return p.Clip }

// Last returns the most recently created window.
func (p *Platform) Last() *Handle {
	if len(p.Windows) == 0 {
		return nil
	}
	return p.Windows[len(p.Windows)-1]
}

// Handle is a fake platform window.
type Handle struct {
	Handler      shell.WinHandler
	Title        string
	Shown        int
	Closes       int
	Focused      int
	Invalidates  int
	Menu         *shell.Menu
	ContextMenu  *shell.Menu
	ContextPoint shell.Point

	idle   *Idle
	noIdle bool
}

func (h *Handle) Show()                    { h.Shown++ }
func (h *Handle) Close()                   { h.Closes++ }
func (h *Handle) BringToFrontAndFocus()    { h.Focused++ }
func (h *Handle) Invalidate()              { h.Invalidates++ }
func (h *Handle) SetTitle(title string)    { h.Title = title }
func (h *Handle) SetMenu(menu *shell.Menu) { h.Menu = menu }

func (h *Handle) ShowContextMenu(menu *shell.Menu, pos shell.Point) {
	h.ContextMenu = menu
	h.ContextPoint = pos
}

func (h *Handle) IdleHandle() (shell.IdleHandle, bool) {
	if h.noIdle {
		return nil, false
	}
	return h.idle, true
}

// Idle returns the recorder behind IdleHandle.
func (h *Handle) Idle() *Idle { return h.idle }

// RunIdle delivers every scheduled idle token to the handler, oldest first.
func (h *Handle) RunIdle(ctx shell.WinCtx) int {
	tokens := h.idle.Take()
	for _, tok := range tokens {
		h.Handler.Idle(tok, ctx)
	}
	return len(tokens)
}

// Idle records scheduled idle tokens. Safe for concurrent use.
type Idle struct {
	mu     sync.Mutex
	tokens []shell.IdleToken
}

func (i *Idle) ScheduleIdle(token shell.IdleToken) {
	i.mu.Lock()
	i.tokens = append(i.tokens, token)
	i.mu.Unlock()
}

// Count returns how many tokens are waiting.
func (i *Idle) Count() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.tokens)
}

// Take removes and returns the waiting tokens.
func (i *Idle) Take() []shell.IdleToken {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := i.tokens
	i.tokens = nil
	return out
}

// Clipboard is an in-memory clipboard.
type Clipboard struct {
	Text string
	Set  bool
}

func (c *Clipboard) String() (string, bool) { return c.Text, c.Set }

func (c *Clipboard) SetString(text string) {
	c.Text = text
	c.Set = true
}

// WinCtx is a fake per-callback context with scripted dialog results.
type WinCtx struct {
	Invalidates int
	Timers      []time.Time
	OpenResult  *shell.FileInfo
	SaveResult  *shell.FileInfo
	OpenCalls   []shell.FileDialogOptions
	SaveCalls   []shell.FileDialogOptions
}

func (c *WinCtx) Invalidate() { c.Invalidates++ }

func (c *WinCtx) RequestTimer(deadline time.Time) shell.TimerToken {
	c.Timers = append(c.Timers, deadline)
	return shell.TimerToken(len(c.Timers))
}

func (c *WinCtx) OpenFileSync(opts shell.FileDialogOptions) (shell.FileInfo, bool) {
	c.OpenCalls = append(c.OpenCalls, opts)
	if c.OpenResult == nil {
		return shell.FileInfo{}, false
	}
	return *c.OpenResult, true
}

func (c *WinCtx) SaveAsSync(opts shell.FileDialogOptions) (shell.FileInfo, bool) {
	c.SaveCalls = append(c.SaveCalls, opts)
	if c.SaveResult == nil {
		return shell.FileInfo{}, false
	}
	return *c.SaveResult, true
}

// Canvas collects drawn lines.
type Canvas struct {
	Dims  shell.Size
	Lines []string
}

func (c *Canvas) Size() shell.Size     { return c.Dims }
func (c *Canvas) DrawText(line string) { c.Lines = append(c.Lines, line) }
