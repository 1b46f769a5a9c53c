package ui

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/popup-shell/internal/backend"
	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/env"
	"github.com/atomicstack/popup-shell/internal/event"
	"github.com/atomicstack/popup-shell/internal/format/table"
	"github.com/atomicstack/popup-shell/internal/logging"
	"github.com/atomicstack/popup-shell/internal/menu"
	"github.com/atomicstack/popup-shell/internal/shell"
	"github.com/atomicstack/popup-shell/internal/theme"
	"github.com/atomicstack/popup-shell/internal/window"
)

const hints = "n new  w close  o open  s save  +/- count  m menu  ctrl+v paste  q quit"

// NewWindow describes a demo window titled title.
func NewWindow(styles *theme.Styles, title string) *window.Desc[Model] {
	return window.NewDesc[Model](func() window.Widget[Model] {
		return NewRoot(styles, title)
	}).WithTitle(title).WithMenu(MainMenu())
}

// Root is the only widget of a demo window.
type Root struct {
	styles *theme.Styles
	title  string
	size   shell.Size
	status string
}

// NewRoot returns a root widget. A nil style set uses the default theme.
func NewRoot(styles *theme.Styles, title string) *Root {
	if styles == nil {
		styles = theme.Default()
	}
	return &Root{styles: styles, title: title}
}

func (r *Root) Event(ctx *window.EventCtx, ev event.Event, m *Model, e *env.Env) {
	switch ev := ev.(type) {
	case event.Size:
		r.size = ev.Size
		ctx.RequestPaint()
	case event.KeyDown:
		if r.key(ctx, ev.Key, m) {
			ctx.SetHandled()
			ctx.RequestPaint()
		}
	case event.Paste:
		if ev.OK {
			m.Pasted = ev.Text
			r.status = ""
		} else {
			r.status = "clipboard is empty"
		}
		ctx.SetHandled()
		ctx.RequestPaint()
	case event.TargetedCommand:
		if r.command(ctx, ev.Command, m) {
			ctx.SetHandled()
			ctx.RequestPaint()
		}
	}
}

func (r *Root) key(ctx *window.EventCtx, key string, m *Model) bool {
	switch key {
	case "n":
		r.spawn(ctx, m)
	case "w":
		ctx.Submit(command.New(command.CloseWindow, nil), command.Auto)
	case "o":
		ctx.Submit(command.New(command.ShowOpenPanel, openOptions), command.Auto)
	case "s":
		ctx.Submit(command.New(command.ShowSavePanel, saveOptions), command.Auto)
	case "+", "=":
		m.Counter++
	case "-":
		m.Counter--
	case "m":
		ctx.Submit(command.New(command.ShowContextMenu, menu.ContextMenu{
			Menu:     CounterMenu(m.Counter),
			Location: shell.Point{X: 2, Y: 3},
		}), command.Auto)
	case "ctrl+v":
		ctx.Submit(command.New(command.Paste, nil), command.Auto)
	case "q":
		ctx.Submit(command.New(command.QuitApp, nil), command.Auto)
	default:
		return false
	}
	return true
}

func (r *Root) command(ctx *window.EventCtx, cmd command.Command, m *Model) bool {
	switch cmd.Selector {
	case Increment:
		m.Counter++
	case Decrement:
		m.Counter--
	case Reset:
		m.Counter = 0
	case SpawnWindow:
		r.spawn(ctx, m)
	case command.OpenFile:
		info, err := command.Object[shell.FileInfo](cmd)
		if err != nil {
			logging.Warnf("open-file: %v", err)
			return false
		}
		m.LastFile = info.Path
	case command.SaveFile:
		info, err := command.Object[shell.FileInfo](cmd)
		if err != nil {
			logging.Warnf("save-file: %v", err)
			return false
		}
		m.LastSaved = info.Path
	case backend.FileChanged:
		change, err := command.Object[backend.FileChange](cmd)
		if err != nil {
			logging.Warnf("file-changed: %v", err)
			return false
		}
		m.LastExternal = change.Op + " " + change.Path
	default:
		return false
	}
	return true
}

func (r *Root) spawn(ctx *window.EventCtx, m *Model) {
	title := fmt.Sprintf("%s %d", r.title, len(m.Windows)+1)
	ctx.Submit(command.New(command.NewWindow, NewWindow(r.styles, title)), command.Auto)
}

func (r *Root) Update(ctx *window.UpdateCtx, old, m Model, e *env.Env) {
	ctx.RequestPaint()
}

func (r *Root) Paint(ctx *window.PaintCtx, m Model, e *env.Env) {
	s := r.styles
	c := ctx.Canvas()
	compact := r.size.Height > 0 && r.size.Height < 10
	blank := func() {
		if !compact {
			c.DrawText("")
		}
	}
	c.DrawText(s.Header.Render(ctx.WindowID().String()) + s.Status.Render(fmt.Sprintf("  %d open", len(m.Windows))))
	blank()
	rows := [][]string{
		r.field("counter", strconv.Itoa(m.Counter)),
		r.field("opened", m.LastFile),
		r.field("saved", m.LastSaved),
		r.field("external", m.LastExternal),
		r.field("pasted", m.Pasted),
	}
	if m.Swallowed > 0 {
		rows = append(rows, r.field("swallowed", strconv.Itoa(m.Swallowed)))
	}
	for _, line := range table.Format(rows, nil) {
		c.DrawText(line)
	}
	blank()
	if r.status != "" {
		c.DrawText(s.Error.Render(r.status))
	}
	c.DrawText(s.Status.Render(hints))
}

func (r *Root) field(label, value string) []string {
	if value == "" {
		value = "-"
	}
	return []string{r.styles.Info.Render(label), r.styles.Accent.Render(value)}
}
