package core

import (
	"errors"
	"fmt"

	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/data"
	"github.com/atomicstack/popup-shell/internal/event"
	"github.com/atomicstack/popup-shell/internal/extevent"
	"github.com/atomicstack/popup-shell/internal/ids"
	"github.com/atomicstack/popup-shell/internal/logging"
	"github.com/atomicstack/popup-shell/internal/logging/events"
	"github.com/atomicstack/popup-shell/internal/shell"
	"github.com/atomicstack/popup-shell/internal/window"
)

// Handler receives the callbacks of one platform window and feeds them
// through the shared state. Borrows of the state are kept short; none is held
// while a command is interpreted, because interpretation may create windows
// whose Connect callback borrows again.
type Handler[T data.Data[T]] struct {
	state     *shared[T]
	windowID  ids.WindowID
	destroyed bool
}

func newHandler[T data.Data[T]](state *shared[T], id ids.WindowID) *Handler[T] {
	return &Handler[T]{state: state, windowID: id}
}

// WindowID returns the window this handler serves.
func (h *Handler[T]) WindowID() ids.WindowID { return h.windowID }

// doEvent runs the full cycle for one event: dispatch, drain, update and
// invalidate. It returns whether the event was handled.
func (h *Handler[T]) doEvent(ev event.Event, ctx shell.WinCtx) bool {
	handled := borrow(h.state, func(a *AppState[T]) bool {
		return a.doEvent(h.windowID, ev, ctx)
	})
	h.processCommands(ctx)
	h.state.with(func(a *AppState[T]) { a.doUpdate(ctx) })
	return handled
}

// dispatch routes ev without draining or updating; the caller's loop does that.
func (h *Handler[T]) dispatch(source ids.WindowID, ev event.Event, ctx shell.WinCtx) bool {
	return borrow(h.state, func(a *AppState[T]) bool {
		return a.doEvent(source, ev, ctx)
	})
}

func (h *Handler[T]) processCommands(ctx shell.WinCtx) {
	for {
		var (
			entry command.Entry
			ok    bool
		)
		h.state.with(func(a *AppState[T]) { entry, ok = a.queue.Pop() })
		if !ok {
			return
		}
		h.handleCmd(entry.Target, entry.Command, ctx)
	}
}

func (h *Handler[T]) processExtEvents(ctx shell.WinCtx) {
	count := 0
	for {
		var (
			item extevent.Item
			ok   bool
		)
		h.state.with(func(a *AppState[T]) { item, ok = a.ext.Recv() })
		if !ok {
			break
		}
		count++
		h.handleCmd(item.Target.Or(h.windowID), item.Command, ctx)
	}
	events.Ext.Drain(h.windowID.String(), count)
	h.processCommands(ctx)
	h.state.with(func(a *AppState[T]) { a.doUpdate(ctx) })
}

// handleCmd interprets one drained command. System selectors addressed to a
// window are handled here; everything else becomes a targeted command event.
func (h *Handler[T]) handleCmd(target command.Target, cmd command.Command, ctx shell.WinCtx) {
	id, ok := target.WindowID()
	if !ok {
		events.Command.Dispatch(target.String(), cmd.Selector.String())
		h.dispatch(h.windowID, event.TargetedCommand{Target: target, Command: cmd}, ctx)
		return
	}

	events.Command.System(id.String(), cmd.Selector.String())
	switch cmd.Selector {
	case command.ShowOpenPanel:
		h.showOpenPanel(cmd, id, ctx)
	case command.ShowSavePanel:
		h.showSavePanel(cmd, id, ctx)
	case command.NewWindow:
		if err := h.newWindow(cmd); err != nil {
			logging.Errorf("failed to create window: %v", err)
		}
	case command.CloseWindow:
		h.requestCloseWindow(cmd, id)
	case command.ShowWindow:
		h.showWindow(cmd)
	case command.QuitApp:
		events.App.Quit()
		h.state.app.Quit()
	case command.HideApplication:
		h.state.app.Hide()
	case command.HideOthers:
		h.state.app.HideOthers()
	case command.Paste:
		h.doPaste(id, ctx)
	default:
		events.Command.Dispatch(target.String(), cmd.Selector.String())
		h.dispatch(id, event.TargetedCommand{Target: target, Command: cmd}, ctx)
	}
}

func dialogOptions(cmd command.Command) shell.FileDialogOptions {
	opts, err := command.Object[shell.FileDialogOptions](cmd)
	if err != nil && !errors.Is(err, command.ErrNoPayload) {
		logging.Warnf("file dialog options: %v", err)
	}
	return opts
}

func (h *Handler[T]) showOpenPanel(cmd command.Command, id ids.WindowID, ctx shell.WinCtx) {
	info, ok := ctx.OpenFileSync(dialogOptions(cmd))
	if !ok {
		return
	}
	open := command.New(command.OpenFile, info)
	h.dispatch(id, event.TargetedCommand{Target: command.Window(id), Command: open}, ctx)
}

func (h *Handler[T]) showSavePanel(cmd command.Command, id ids.WindowID, ctx shell.WinCtx) {
	info, ok := ctx.SaveAsSync(dialogOptions(cmd))
	if !ok {
		return
	}
	save := command.New(command.SaveFile, info)
	h.dispatch(id, event.TargetedCommand{Target: command.Window(id), Command: save}, ctx)
}

func (h *Handler[T]) newWindow(cmd command.Command) error {
	desc, err := command.Object[*window.Desc[T]](cmd)
	if err != nil {
		return err
	}
	handle, err := buildWindow(h.state, desc)
	if err != nil {
		return err
	}
	handle.Show()
	return nil
}

func (h *Handler[T]) requestCloseWindow(cmd command.Command, fallback ids.WindowID) {
	id, err := command.Object[ids.WindowID](cmd)
	if err != nil {
		if !errors.Is(err, command.ErrNoPayload) {
			logging.Warnf("close-window object error: %v", err)
		}
		id = fallback
	}
	h.state.with(func(a *AppState[T]) { a.requestCloseWindow(id) })
}

func (h *Handler[T]) showWindow(cmd command.Command) {
	id, err := command.Object[ids.WindowID](cmd)
	if err != nil {
		logging.Warnf("show-window object error: %v", err)
		return
	}
	h.state.with(func(a *AppState[T]) { a.showWindow(id) })
}

func (h *Handler[T]) doPaste(id ids.WindowID, ctx shell.WinCtx) {
	var paste event.Paste
	if clip := h.state.app.Clipboard(); clip != nil {
		paste.Text, paste.OK = clip.String()
	}
	h.dispatch(id, paste, ctx)
}

// buildWindow registers desc as pending and asks the platform for a window.
// The platform connects the handler before NewWindow returns.
func buildWindow[T data.Data[T]](s *shared[T], desc *window.Desc[T]) (shell.WindowHandle, error) {
	if desc == nil {
		return nil, window.ErrNoRoot
	}
	pending, err := desc.Pending()
	if err != nil {
		return nil, err
	}
	id := desc.Claim()
	s.with(func(a *AppState[T]) { a.addWindow(id, pending) })

	handle, err := s.app.NewWindow(shell.WindowBuilder{
		Handler: newHandler(s, id),
		Title:   pending.Title(),
		Size:    pending.Size(),
	})
	if err != nil {
		s.with(func(a *AppState[T]) { a.windows.Discard(id) })
		return nil, fmt.Errorf("platform window %s: %w", id, err)
	}
	return handle, nil
}

func (h *Handler[T]) Connect(handle shell.WindowHandle) {
	h.state.with(func(a *AppState[T]) { a.connect(h.windowID, handle) })
}

func (h *Handler[T]) Connected(ctx shell.WinCtx) {
	h.doEvent(event.WindowConnected{}, ctx)
}

func (h *Handler[T]) Paint(canvas shell.Canvas, ctx shell.WinCtx) bool {
	return borrow(h.state, func(a *AppState[T]) bool { return a.paint(h.windowID, canvas) })
}

func (h *Handler[T]) Size(width, height int, ctx shell.WinCtx) {
	h.doEvent(event.Size{Size: shell.Size{Width: width, Height: height}}, ctx)
}

// Command handles a menu selection. The id is resolved against this window's
// menus and the command is queued for this window.
func (h *Handler[T]) Command(id uint32, ctx shell.WinCtx) {
	h.state.with(func(a *AppState[T]) {
		cmd, ok := a.menuCommand(h.windowID, id)
		if !ok {
			logging.Warnf("no command for menu id %d", id)
			return
		}
		events.Command.Menu(h.windowID.String(), id, cmd.Selector.String())
		a.queue.Push(command.Window(h.windowID), cmd)
	})
	h.processCommands(ctx)
	h.state.with(func(a *AppState[T]) { a.doUpdate(ctx) })
}

func (h *Handler[T]) MouseDown(ev shell.MouseEvent, ctx shell.WinCtx) bool {
	return h.doEvent(event.MouseDown{MouseEvent: ev}, ctx)
}

func (h *Handler[T]) MouseUp(ev shell.MouseEvent, ctx shell.WinCtx) bool {
	return h.doEvent(event.MouseUp{MouseEvent: ev}, ctx)
}

func (h *Handler[T]) MouseMove(ev shell.MouseEvent, ctx shell.WinCtx) bool {
	return h.doEvent(event.MouseMove{MouseEvent: ev}, ctx)
}

func (h *Handler[T]) KeyDown(ev shell.KeyEvent, ctx shell.WinCtx) bool {
	return h.doEvent(event.KeyDown{KeyEvent: ev}, ctx)
}

func (h *Handler[T]) KeyUp(ev shell.KeyEvent, ctx shell.WinCtx) {
	h.doEvent(event.KeyUp{KeyEvent: ev}, ctx)
}

func (h *Handler[T]) Wheel(delta shell.Vec2, mods shell.Modifiers, ctx shell.WinCtx) {
	h.doEvent(event.Wheel{Delta: delta, Mods: mods}, ctx)
}

func (h *Handler[T]) Zoom(delta float64, ctx shell.WinCtx) {
	h.doEvent(event.Zoom{Delta: delta}, ctx)
}

func (h *Handler[T]) GotFocus(ctx shell.WinCtx) {
	h.state.with(func(a *AppState[T]) { a.windowGotFocus(h.windowID) })
	h.doEvent(event.GotFocus{}, ctx)
}

func (h *Handler[T]) Timer(token shell.TimerToken, ctx shell.WinCtx) {
	h.doEvent(event.Timer{Token: token}, ctx)
}

// Idle runs work scheduled through the window's idle handle.
func (h *Handler[T]) Idle(token shell.IdleToken, ctx shell.WinCtx) {
	switch token {
	case extevent.RunCommandsToken:
		h.processCommands(ctx)
		h.state.with(func(a *AppState[T]) { a.doUpdate(ctx) })
	case extevent.ExtEventToken:
		h.processExtEvents(ctx)
	default:
		logging.Errorf("unexpected idle token %d for %s", token, h.windowID)
	}
}

// Destroy releases the window. The platform calls it once; a repeat is
// logged and ignored.
func (h *Handler[T]) Destroy(ctx shell.WinCtx) {
	if h.destroyed {
		logging.Warnf("window %s destroyed twice", h.windowID)
		return
	}
	h.destroyed = true
	h.state.with(func(a *AppState[T]) { a.removeWindow(h.windowID) })
	// the delegate may have queued commands or changed data on removal
	h.processCommands(ctx)
	h.state.with(func(a *AppState[T]) { a.doUpdate(ctx) })
}
