package term

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/popup-shell/internal/shell"
)

const frameInterval = time.Second / 30

type wakeMsg struct{}

type timerMsg struct {
	window *Window
	token  shell.TimerToken
}

type frameMsg struct {
	window *Window
}

type msgHandler func(tea.Msg)

var _ tea.Model = (*Shell)(nil)

// Init flushes callbacks posted before the program started.
func (s *Shell) Init() tea.Cmd {
	return func() tea.Msg { return wakeMsg{} }
}

// Update translates Bubble Tea messages into window callbacks, then runs
// posted callbacks and repaints the front window.
func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := s.handlerFor(msg); handler != nil {
		handler(msg)
	}
	return s, s.finishUpdate()
}

func (s *Shell) registerHandlers() {
	s.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        s.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      s.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): s.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):      s.handleFocusMsg,
		reflect.TypeOf(timerMsg{}):          s.handleTimerMsg,
		reflect.TypeOf(frameMsg{}):          s.handleFrameMsg,
	}
}

func (s *Shell) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || s.handlers == nil {
		return nil
	}
	return s.handlers[reflect.TypeOf(msg)]
}

func (s *Shell) finishUpdate() tea.Cmd {
	s.flush()
	s.render()
	cmds := s.cmds
	s.cmds = nil
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (s *Shell) handleKeyMsg(msg tea.Msg) {
	key := msg.(tea.KeyMsg)
	if s.palette != nil {
		s.handlePaletteKey(key)
		return
	}
	if key.String() == "ctrl+p" {
		if w := s.Front(); w != nil && w.menu != nil {
			s.openPalette(w, w.menu, shell.Point{})
		}
		return
	}
	w := s.Front()
	if w == nil {
		if key.String() == "ctrl+c" {
			s.Quit()
		}
		return
	}
	ev := keyEvent(key)
	ctx := s.ctx(w)
	handled := w.handler.KeyDown(ev, ctx)
	// terminals report presses only
	w.handler.KeyUp(ev, ctx)
	if handled {
		return
	}
	switch key.String() {
	case "ctrl+c":
		s.Quit()
	case "tab":
		s.cycle()
	}
}

func keyEvent(key tea.KeyMsg) shell.KeyEvent {
	name := key.String()
	var mods shell.Modifiers
	if key.Alt {
		mods |= shell.ModAlt
	}
	if strings.HasPrefix(strings.TrimPrefix(name, "alt+"), "ctrl+") {
		mods |= shell.ModCtrl
	}
	if strings.Contains(name, "shift+") {
		mods |= shell.ModShift
	}
	return shell.KeyEvent{Key: name, Runes: append([]rune(nil), key.Runes...), Mods: mods}
}

func (s *Shell) handleMouseMsg(msg tea.Msg) {
	mouse := msg.(tea.MouseMsg)
	w := s.Front()
	if w == nil || s.palette != nil {
		return
	}
	ctx := s.ctx(w)
	var mods shell.Modifiers
	if mouse.Shift {
		mods |= shell.ModShift
	}
	if mouse.Alt {
		mods |= shell.ModAlt
	}
	if mouse.Ctrl {
		mods |= shell.ModCtrl
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		w.handler.Wheel(shell.Vec2{Y: -1}, mods, ctx)
		return
	case tea.MouseButtonWheelDown:
		w.handler.Wheel(shell.Vec2{Y: 1}, mods, ctx)
		return
	case tea.MouseButtonWheelLeft:
		w.handler.Wheel(shell.Vec2{X: -1}, mods, ctx)
		return
	case tea.MouseButtonWheelRight:
		w.handler.Wheel(shell.Vec2{X: 1}, mods, ctx)
		return
	}
	ev := shell.MouseEvent{
		// content starts inside the frame border
		Pos:    shell.Point{X: mouse.X - 1, Y: mouse.Y - 1},
		Mods:   mods,
		Button: mouseButton(mouse.Button),
		Count:  1,
	}
	switch mouse.Action {
	case tea.MouseActionPress:
		w.handler.MouseDown(ev, ctx)
	case tea.MouseActionRelease:
		w.handler.MouseUp(ev, ctx)
	case tea.MouseActionMotion:
		ev.Count = 0
		w.handler.MouseMove(ev, ctx)
	}
}

func mouseButton(b tea.MouseButton) shell.MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return shell.MouseLeft
	case tea.MouseButtonMiddle:
		return shell.MouseMiddle
	case tea.MouseButtonRight:
		return shell.MouseRight
	default:
		return shell.MouseNone
	}
}

func (s *Shell) handleWindowSizeMsg(msg tea.Msg) {
	size := msg.(tea.WindowSizeMsg)
	s.width, s.height = size.Width, size.Height
	for _, w := range s.Windows() {
		if w.destroyed {
			continue
		}
		w.dirty = true
		content := s.contentSize(w)
		w.handler.Size(content.Width, content.Height, s.ctx(w))
	}
	if s.palette != nil {
		s.palette.resize(s.width)
	}
}

func (s *Shell) handleFocusMsg(tea.Msg) {
	if w := s.Front(); w != nil {
		w.handler.GotFocus(s.ctx(w))
	}
}

func (s *Shell) handleTimerMsg(msg tea.Msg) {
	t := msg.(timerMsg)
	if t.window.destroyed {
		return
	}
	t.window.handler.Timer(t.token, s.ctx(t.window))
}

func (s *Shell) handleFrameMsg(msg tea.Msg) {
	f := msg.(frameMsg)
	f.window.dirty = true
}

// render repaints the front window when it was invalidated.
func (s *Shell) render() {
	w := s.Front()
	if w == nil || !w.dirty {
		return
	}
	w.dirty = false
	canvas := newCanvas(s.contentSize(w))
	if w.handler.Paint(canvas, s.ctx(w)) {
		s.schedule(frameInterval, frameMsg{window: w})
	}
	w.lines = canvas.lines
}

// View draws the front window inside its frame, the palette when open and a
// status line.
func (s *Shell) View() string {
	if s.quitting {
		return ""
	}
	w := s.Front()
	if w == nil {
		return s.styles.Status.Render("no windows")
	}
	size := s.contentSize(w)
	body := make([]string, 0, size.Height)
	body = append(body, w.lines...)
	if s.palette != nil && s.palette.window == w {
		body = append(body, s.palette.view(s.styles, size.Width)...)
	}
	if size.Height > 0 && len(body) > size.Height {
		body = body[len(body)-size.Height:]
	}
	for len(body) < size.Height {
		body = append(body, "")
	}
	frame := s.styles.Frame.Width(size.Width).Render(strings.Join(body, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, s.titleLine(w, size.Width), frame, s.statusLine(size.Width))
}

func (s *Shell) titleLine(w *Window, width int) string {
	visible := 0
	index := 0
	for _, other := range s.windows {
		if other.shown {
			visible++
			if other == w {
				index = visible
			}
		}
	}
	title := fmt.Sprintf("%s [%d/%d]", w.title, index, visible)
	return s.styles.Title.Render(truncate.StringWithTail(title, uint(width+2), "…"))
}

func (s *Shell) statusLine(width int) string {
	hint := "ctrl+p menu · tab next window · ctrl+c quit"
	if s.palette != nil {
		hint = "enter select · esc close · ↑/↓ move"
	}
	return s.styles.Status.Render(truncate.String(hint, uint(width+2)))
}
