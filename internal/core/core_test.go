package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/env"
	"github.com/atomicstack/popup-shell/internal/event"
	"github.com/atomicstack/popup-shell/internal/extevent"
	"github.com/atomicstack/popup-shell/internal/ids"
	"github.com/atomicstack/popup-shell/internal/logging"
	"github.com/atomicstack/popup-shell/internal/menu"
	"github.com/atomicstack/popup-shell/internal/shell"
	"github.com/atomicstack/popup-shell/internal/testutil"
	"github.com/atomicstack/popup-shell/internal/window"
)

type model struct{ n int }

func (m model) Same(other model) bool { return m.n == other.n }

type recorder struct {
	name    string
	visits  *[]string
	seen    []event.Event
	handles func(ev event.Event) bool
	onEvent func(ctx *window.EventCtx, ev event.Event, d *model)
	updates int
}

func (r *recorder) Event(ctx *window.EventCtx, ev event.Event, d *model, e *env.Env) {
	r.seen = append(r.seen, ev)
	if r.visits != nil {
		*r.visits = append(*r.visits, r.name)
	}
	if r.onEvent != nil {
		r.onEvent(ctx, ev, d)
	}
	if r.handles != nil && r.handles(ev) {
		ctx.SetHandled()
	}
}

func (r *recorder) Update(ctx *window.UpdateCtx, old, d model, e *env.Env) {
	r.updates++
	ctx.RequestPaint()
}

func (r *recorder) Paint(ctx *window.PaintCtx, d model, e *env.Env) {
	ctx.Canvas().DrawText(r.name)
}

// commands returns the selectors of the targeted commands r received.
func (r *recorder) commands() []string {
	var out []string
	for _, ev := range r.seen {
		if tc, ok := ev.(event.TargetedCommand); ok {
			out = append(out, string(tc.Command.Selector))
		}
	}
	return out
}

type gate struct {
	swallow   func(ev event.Event) bool
	onRemoved func(ctx *DelegateCtx, id ids.WindowID, d *model)
	added     []ids.WindowID
	removed   []ids.WindowID
}

func (g *gate) Event(ctx *DelegateCtx, ev event.Event, d *model, e *env.Env) event.Event {
	if g.swallow != nil && g.swallow(ev) {
		return nil
	}
	return ev
}

func (g *gate) WindowAdded(ctx *DelegateCtx, id ids.WindowID, d *model, e *env.Env) {
	g.added = append(g.added, id)
}

func (g *gate) WindowRemoved(ctx *DelegateCtx, id ids.WindowID, d *model, e *env.Env) {
	g.removed = append(g.removed, id)
	if g.onRemoved != nil {
		g.onRemoved(ctx, id, d)
	}
}

func descFor(r *recorder) *window.Desc[model] {
	return window.NewDesc[model](func() window.Widget[model] { return r }).WithTitle(r.name)
}

type fixture struct {
	launcher *Launcher[model]
	platform *testutil.Platform
	ctx      *testutil.WinCtx
}

func launch(t *testing.T, delegate Delegate[model], roots ...*recorder) *fixture {
	t.Helper()
	useTempLog(t)
	l := NewLauncher(descFor(roots[0]))
	for _, r := range roots[1:] {
		l.AddWindow(descFor(r))
	}
	if delegate != nil {
		l.WithDelegate(delegate)
	}
	p := testutil.NewPlatform()
	if err := l.Launch(p, model{}); err != nil {
		t.Fatalf("launch failed: %v", err)
	}
	return &fixture{launcher: l, platform: p, ctx: &testutil.WinCtx{}}
}

func (f *fixture) handler(i int) *Handler[model] {
	return f.platform.Windows[i].Handler.(*Handler[model])
}

func (f *fixture) state() *AppState[model] {
	return f.launcher.state.state
}

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "popup-shell.log")
	prev := logging.Path()
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure(prev) })
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func key(k string) shell.KeyEvent { return shell.KeyEvent{Key: k} }

func TestCommandsDrainInOrderIncludingMidDrainPushes(t *testing.T) {
	root := &recorder{name: "w1"}
	root.onEvent = func(ctx *window.EventCtx, ev event.Event, d *model) {
		switch ev := ev.(type) {
		case event.KeyDown:
			ctx.Submit(command.New("a", nil), command.Auto)
			ctx.Submit(command.New("b", nil), command.Auto)
		case event.TargetedCommand:
			if ev.Command.Is("a") {
				ctx.Submit(command.New("c", nil), command.Auto)
			}
		}
	}
	f := launch(t, nil, root)
	f.handler(0).KeyDown(key("x"), f.ctx)

	got := strings.Join(root.commands(), ",")
	if got != "a,b,c" {
		t.Fatalf("expected a,b,c, got %s", got)
	}
	if f.state().queue.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", f.state().queue.Len())
	}
}

func TestDelegateSwallowShortCircuits(t *testing.T) {
	root := &recorder{name: "w1"}
	g := &gate{swallow: func(ev event.Event) bool {
		_, ok := ev.(event.KeyDown)
		return ok
	}}
	f := launch(t, g, root)
	if !f.handler(0).KeyDown(key("x"), f.ctx) {
		t.Fatalf("expected swallowed event reported handled")
	}
	if len(root.seen) != 0 {
		t.Fatalf("expected no window to see the event, got %v", root.seen)
	}
	if len(g.added) != 1 {
		t.Fatalf("expected delegate told about 1 window, got %d", len(g.added))
	}
}

func TestDelegateMayTransformEvents(t *testing.T) {
	root := &recorder{name: "w1"}
	f := launch(t, transform{}, root)
	f.handler(0).KeyDown(key("x"), f.ctx)
	if len(root.seen) != 1 {
		t.Fatalf("expected one event, got %d", len(root.seen))
	}
	if kd, ok := root.seen[0].(event.KeyDown); !ok || kd.Key != "y" {
		t.Fatalf("expected rewritten key y, got %v", root.seen[0])
	}
}

type transform struct{}

func (transform) Event(ctx *DelegateCtx, ev event.Event, d *model, e *env.Env) event.Event {
	if kd, ok := ev.(event.KeyDown); ok && kd.Key == "x" {
		kd.Key = "y"
		return kd
	}
	return ev
}

func (transform) WindowAdded(*DelegateCtx, ids.WindowID, *model, *env.Env)   {}
func (transform) WindowRemoved(*DelegateCtx, ids.WindowID, *model, *env.Env) {}

func TestWidgetBroadcastStopsAtFirstHandler(t *testing.T) {
	var visits []string
	isPing := func(ev event.Event) bool {
		tc, ok := ev.(event.TargetedCommand)
		return ok && tc.Command.Is("ping")
	}
	a := &recorder{name: "A", visits: &visits}
	b := &recorder{name: "B", visits: &visits, handles: isPing}
	c := &recorder{name: "C", visits: &visits}
	f := launch(t, nil, a, b, c)

	ev := event.TargetedCommand{Target: command.Widget(ids.NewWidgetID()), Command: command.New("ping", nil)}
	if !f.handler(0).doEvent(ev, f.ctx) {
		t.Fatalf("expected broadcast handled")
	}
	if got := strings.Join(visits, ","); got != "A,B" {
		t.Fatalf("expected A,B visited, got %s", got)
	}
	if len(c.seen) != 0 {
		t.Fatalf("expected C untouched, got %v", c.seen)
	}
}

func TestWidgetCommandFromQueueBroadcasts(t *testing.T) {
	a := &recorder{name: "A"}
	b := &recorder{name: "B", handles: func(event.Event) bool { return true }}
	f := launch(t, nil, a, b)
	f.state().queue.Push(command.Widget(ids.NewWidgetID()), command.New("ping", nil))
	f.handler(1).Idle(extevent.RunCommandsToken, f.ctx)
	if len(a.commands()) != 1 || len(b.commands()) != 1 {
		t.Fatalf("expected both windows to see ping, got %v %v", a.commands(), b.commands())
	}
}

func TestUpdateAndInvalidateReachEveryWindow(t *testing.T) {
	a := &recorder{name: "A"}
	b := &recorder{name: "B"}
	f := launch(t, nil, a, b)
	f.handler(0).KeyDown(key("x"), f.ctx)
	if a.updates != 1 || b.updates != 1 {
		t.Fatalf("expected update on both windows, got %d %d", a.updates, b.updates)
	}
	for i, h := range f.platform.Windows {
		if h.Invalidates != 1 {
			t.Fatalf("expected window %d invalidated once, got %d", i, h.Invalidates)
		}
	}
	if len(b.seen) != 0 {
		t.Fatalf("expected key event to reach only the source window")
	}
}

func TestGotFocusRunsFullCycle(t *testing.T) {
	a := &recorder{name: "A"}
	b := &recorder{name: "B"}
	f := launch(t, nil, a, b)
	f.handler(1).GotFocus(f.ctx)

	if len(b.seen) != 1 {
		t.Fatalf("expected one event on B, got %v", b.seen)
	}
	if _, ok := b.seen[0].(event.GotFocus); !ok {
		t.Fatalf("expected got-focus on B, got %v", b.seen[0])
	}
	if len(a.seen) != 0 {
		t.Fatalf("expected A untouched, got %v", a.seen)
	}
	if a.updates != 1 || b.updates != 1 {
		t.Fatalf("expected update on both windows, got %d %d", a.updates, b.updates)
	}
	for i, h := range f.platform.Windows {
		if h.Invalidates != 1 {
			t.Fatalf("expected window %d invalidated once, got %d", i, h.Invalidates)
		}
	}
}

func TestNewWindowDuringEvent(t *testing.T) {
	second := &recorder{name: "W2"}
	first := &recorder{name: "W1"}
	first.onEvent = func(ctx *window.EventCtx, ev event.Event, d *model) {
		if _, ok := ev.(event.KeyDown); ok {
			ctx.Submit(command.New(command.NewWindow, descFor(second)), command.Auto)
		}
	}
	f := launch(t, nil, first)
	f.handler(0).KeyDown(key("n"), f.ctx)

	if len(f.platform.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(f.platform.Windows))
	}
	w2 := f.platform.Windows[1]
	if w2.Shown != 1 {
		t.Fatalf("expected new window shown once, got %d", w2.Shown)
	}
	if first.updates != 1 || second.updates != 1 {
		t.Fatalf("expected update on W1 and W2, got %d %d", first.updates, second.updates)
	}
	if f.platform.Windows[0].Invalidates != 1 || w2.Invalidates != 1 {
		t.Fatalf("expected both invalidated, got %d %d", f.platform.Windows[0].Invalidates, w2.Invalidates)
	}
	if f.state().windows.Len() != 2 {
		t.Fatalf("expected 2 live windows, got %d", f.state().windows.Len())
	}
}

func TestNewWindowEntrySelectedTwice(t *testing.T) {
	root := &recorder{name: "A"}
	f := launch(t, nil, root)
	h := f.handler(0)
	handle := f.platform.Windows[0]

	spawn := descFor(&recorder{name: "B"})
	m := menu.New("main", menu.Entry("Spawn", command.New(command.NewWindow, spawn)))
	h.doEvent(event.TargetedCommand{Target: command.Window(h.WindowID()), Command: command.New(command.SetMenu, m)}, f.ctx)
	entry := handle.Menu.Entries[0].ID

	h.Command(entry, f.ctx)
	h.Command(entry, f.ctx)

	if len(f.platform.Windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(f.platform.Windows))
	}
	first, second := f.handler(1).WindowID(), f.handler(2).WindowID()
	if first == second {
		t.Fatalf("expected distinct window ids, got %s twice", first)
	}
	if first != spawn.ID {
		t.Fatalf("expected first window to use the descriptor id %s, got %s", spawn.ID, first)
	}
	if f.state().windows.Len() != 3 {
		t.Fatalf("expected 3 live windows, got %d", f.state().windows.Len())
	}
	for i, w := range f.platform.Windows[1:] {
		if w.Shown != 1 {
			t.Fatalf("expected spawned window %d shown once, got %d", i, w.Shown)
		}
	}
}

func TestNewWindowFailuresAreLogged(t *testing.T) {
	root := &recorder{name: "w1"}
	f := launch(t, nil, root)
	path := logging.Path()
	h := f.handler(0)
	id := h.WindowID()

	h.handleCmd(command.Window(id), command.New(command.NewWindow, "not a descriptor"), f.ctx)
	f.platform.FailNext = true
	h.handleCmd(command.Window(id), command.New(command.NewWindow, descFor(&recorder{name: "w2"})), f.ctx)

	if len(f.platform.Windows) != 1 {
		t.Fatalf("expected no new window, got %d", len(f.platform.Windows))
	}
	if got := strings.Count(readLog(t, path), "failed to create window"); got != 2 {
		t.Fatalf("expected 2 logged failures, got %d", got)
	}
	if f.state().windows.Len() != 1 {
		t.Fatalf("expected the failed window discarded")
	}
}

func TestExternalSubmissionWakesWakerOnce(t *testing.T) {
	root := &recorder{name: "w1"}
	f := launch(t, nil, root)
	h := f.platform.Windows[0]

	sink := f.launcher.Sink()
	sink.Submit(command.New("tick", nil))
	if got := h.Idle().Count(); got != 1 {
		t.Fatalf("expected one wake-up, got %d", got)
	}
	sink.Submit(command.New("tock", nil))
	if got := h.Idle().Count(); got != 1 {
		t.Fatalf("expected still one wake-up, got %d", got)
	}

	h.RunIdle(f.ctx)
	if got := strings.Join(root.commands(), ","); got != "tick,tock" {
		t.Fatalf("expected tick,tock, got %s", got)
	}
	tc := root.seen[0].(event.TargetedCommand)
	if id, ok := tc.Target.WindowID(); !ok || id != f.handler(0).WindowID() {
		t.Fatalf("expected target resolved to the waker, got %s", tc.Target)
	}
	if f.state().ext.HasPendingItems() {
		t.Fatalf("expected empty inbox")
	}
}

func TestSubmissionBeforeLaunchWaitsForConnect(t *testing.T) {
	useTempLog(t)
	root := &recorder{name: "w1"}
	l := NewLauncher(descFor(root))
	l.Sink().Submit(command.New("early", nil))
	p := testutil.NewPlatform()
	if err := l.Launch(p, model{}); err != nil {
		t.Fatalf("launch failed: %v", err)
	}
	if p.Windows[0].Idle().Count() != 1 {
		t.Fatalf("expected backlog to schedule a wake-up on connect")
	}
	p.Windows[0].RunIdle(&testutil.WinCtx{})
	if got := strings.Join(root.commands(), ","); got != "early" {
		t.Fatalf("expected early, got %s", got)
	}
}

func TestWakerTransfersOnRemove(t *testing.T) {
	f := launch(t, nil, &recorder{name: "A"}, &recorder{name: "B"})
	a, b := f.handler(0), f.handler(1)
	ext := f.state().ext

	if id, ok := ext.Waker(); !ok || id != a.WindowID() {
		t.Fatalf("expected A as waker, got %s %v", id, ok)
	}
	a.Destroy(f.ctx)
	if id, ok := ext.Waker(); !ok || id != b.WindowID() {
		t.Fatalf("expected B as waker, got %s %v", id, ok)
	}
	b.Destroy(f.ctx)
	if _, ok := ext.Waker(); ok {
		t.Fatalf("expected no waker with no windows")
	}

	f.launcher.Sink().Submit(command.New("later", nil))
	late := &recorder{name: "C"}
	if _, err := buildWindow(f.launcher.state, descFor(late)); err != nil {
		t.Fatalf("build window: %v", err)
	}
	c := f.platform.Last()
	if id, ok := ext.Waker(); !ok || id != c.Handler.(*Handler[model]).WindowID() {
		t.Fatalf("expected C installed as waker, got %s %v", id, ok)
	}
	if c.Idle().Count() != 1 {
		t.Fatalf("expected C woken for the backlog, got %d", c.Idle().Count())
	}
}

func TestDestroyRunsOnce(t *testing.T) {
	g := &gate{}
	f := launch(t, g, &recorder{name: "A"})
	h := f.handler(0)
	h.Destroy(f.ctx)
	h.Destroy(f.ctx)
	if len(g.removed) != 1 {
		t.Fatalf("expected one removal notice, got %d", len(g.removed))
	}
	if f.state().windows.Len() != 0 {
		t.Fatalf("expected no live windows")
	}
}

func TestDestroyDrainsDelegateCommands(t *testing.T) {
	a := &recorder{name: "A"}
	b := &recorder{name: "B"}
	g := &gate{}
	f := launch(t, g, a, b)
	other := f.handler(1).WindowID()
	g.onRemoved = func(ctx *DelegateCtx, id ids.WindowID, d *model) {
		d.n++
		ctx.Submit(command.New("peer-closed", id), command.Window(other))
	}

	f.handler(0).Destroy(f.ctx)

	if got := strings.Join(b.commands(), ","); got != "peer-closed" {
		t.Fatalf("expected peer-closed on B, got %s", got)
	}
	if f.state().queue.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", f.state().queue.Len())
	}
	if b.updates != 1 {
		t.Fatalf("expected B updated once, got %d", b.updates)
	}
	if got := f.platform.Windows[1].Invalidates; got != 1 {
		t.Fatalf("expected B invalidated once, got %d", got)
	}
	if d, _ := f.launcher.Data(); d.n != 1 {
		t.Fatalf("expected delegate change kept, got %+v", d)
	}
}

func TestCloseWindowOnlyRequestsClose(t *testing.T) {
	f := launch(t, nil, &recorder{name: "A"}, &recorder{name: "B"})
	a, b := f.handler(0), f.handler(1)

	a.handleCmd(command.Window(a.WindowID()), command.New(command.CloseWindow, b.WindowID()), f.ctx)
	if f.platform.Windows[1].Closes != 1 || f.platform.Windows[0].Closes != 0 {
		t.Fatalf("expected only B asked to close")
	}
	if !f.state().windows.IsLive(b.WindowID()) {
		t.Fatalf("expected B still live until destroyed")
	}
	a.handleCmd(command.Window(a.WindowID()), command.New(command.CloseWindow, nil), f.ctx)
	if f.platform.Windows[0].Closes != 1 {
		t.Fatalf("expected A to close itself without a payload")
	}
}

func TestPlatformCommands(t *testing.T) {
	f := launch(t, nil, &recorder{name: "A"}, &recorder{name: "B"})
	a, b := f.handler(0), f.handler(1)
	target := command.Window(a.WindowID())

	a.handleCmd(target, command.New(command.ShowWindow, b.WindowID()), f.ctx)
	a.handleCmd(target, command.New(command.ShowWindow, nil), f.ctx)
	a.handleCmd(target, command.New(command.QuitApp, nil), f.ctx)
	a.handleCmd(target, command.New(command.HideApplication, nil), f.ctx)
	a.handleCmd(target, command.New(command.HideOthers, nil), f.ctx)

	if f.platform.Windows[1].Focused != 1 {
		t.Fatalf("expected B focused once, got %d", f.platform.Windows[1].Focused)
	}
	if f.platform.Quits != 1 || f.platform.Hides != 1 || f.platform.HideOther != 1 {
		t.Fatalf("expected quit, hide and hide-others once each, got %+v", f.platform)
	}
}

func TestPasteDeliversClipboard(t *testing.T) {
	root := &recorder{name: "A"}
	f := launch(t, nil, root)
	f.platform.Clip.SetString("hello")
	h := f.handler(0)
	h.handleCmd(command.Window(h.WindowID()), command.New(command.Paste, nil), f.ctx)

	if len(root.seen) != 1 {
		t.Fatalf("expected one paste event, got %v", root.seen)
	}
	paste, ok := root.seen[0].(event.Paste)
	if !ok || !paste.OK || paste.Text != "hello" {
		t.Fatalf("expected paste of hello, got %+v", root.seen[0])
	}
}

func TestOpenPanelReentersDispatch(t *testing.T) {
	root := &recorder{name: "A"}
	f := launch(t, nil, root)
	h := f.handler(0)
	target := command.Window(h.WindowID())

	h.handleCmd(target, command.New(command.ShowOpenPanel, nil), f.ctx)
	if len(f.ctx.OpenCalls) != 1 || len(root.seen) != 0 {
		t.Fatalf("expected a cancelled dialog and no event")
	}

	f.ctx.OpenResult = &shell.FileInfo{Path: "/tmp/a.txt"}
	f.ctx.SaveResult = &shell.FileInfo{Path: "/tmp/b.txt"}
	opts := shell.FileDialogOptions{Title: "pick"}
	h.handleCmd(target, command.New(command.ShowOpenPanel, opts), f.ctx)
	h.handleCmd(target, command.New(command.ShowSavePanel, nil), f.ctx)

	if f.ctx.OpenCalls[1].Title != "pick" {
		t.Fatalf("expected dialog options passed through, got %+v", f.ctx.OpenCalls[1])
	}
	if got := strings.Join(root.commands(), ","); got != "open-file,save-file" {
		t.Fatalf("expected open-file,save-file, got %s", got)
	}
	tc := root.seen[0].(event.TargetedCommand)
	info, err := command.Object[shell.FileInfo](tc.Command)
	if err != nil || info.Path != "/tmp/a.txt" {
		t.Fatalf("expected /tmp/a.txt, got %+v %v", info, err)
	}
}

func TestMenuCommandsResolvePerWindow(t *testing.T) {
	root := &recorder{name: "A"}
	f := launch(t, nil, root)
	path := logging.Path()
	h := f.handler(0)
	handle := f.platform.Windows[0]

	m := menu.New("main", menu.Entry("Ping", command.New("ping", nil)))
	set := event.TargetedCommand{Target: command.Window(h.WindowID()), Command: command.New(command.SetMenu, m)}
	h.doEvent(set, f.ctx)
	if handle.Menu == nil || len(handle.Menu.Entries) != 1 {
		t.Fatalf("expected menu installed, got %+v", handle.Menu)
	}
	if len(root.seen) != 0 {
		t.Fatalf("expected set-menu consumed before the widget, got %v", root.seen)
	}

	h.Command(handle.Menu.Entries[0].ID, f.ctx)
	if got := strings.Join(root.commands(), ","); got != "ping" {
		t.Fatalf("expected ping, got %s", got)
	}

	h.Command(4242424, f.ctx)
	if !strings.Contains(readLog(t, path), "no command for menu id 4242424") {
		t.Fatalf("expected unknown menu id logged")
	}

	handle.Menu = nil
	h.GotFocus(f.ctx)
	if handle.Menu == nil {
		t.Fatalf("expected focus to refresh the menu")
	}
}

func TestPaintReportsAnimationRequest(t *testing.T) {
	root := &recorder{name: "A"}
	f := launch(t, nil, root)
	canvas := &testutil.Canvas{}
	if f.handler(0).Paint(canvas, f.ctx) {
		t.Fatalf("expected no animation request")
	}
	if len(canvas.Lines) != 1 || canvas.Lines[0] != "A" {
		t.Fatalf("expected the root to paint, got %v", canvas.Lines)
	}
}

func TestInvalidateTwiceSignalsOnce(t *testing.T) {
	f := launch(t, nil, &recorder{name: "A"})
	a := f.state()
	a.doUpdate(f.ctx)
	a.invalidateAndFinalize()
	a.invalidateAndFinalize()
	if got := f.platform.Windows[0].Invalidates; got != 1 {
		t.Fatalf("expected one invalidation, got %d", got)
	}
}

func TestUnknownIdleTokenIsLogged(t *testing.T) {
	f := launch(t, nil, &recorder{name: "A"})
	path := logging.Path()
	f.handler(0).Idle(99, f.ctx)
	if !strings.Contains(readLog(t, path), "unexpected idle token 99") {
		t.Fatalf("expected unknown token logged")
	}
}

func TestNestedBorrowPanics(t *testing.T) {
	f := launch(t, nil, &recorder{name: "A"})
	s := f.launcher.state
	defer func() {
		if r := recover(); r != "app state already borrowed" {
			t.Fatalf("expected borrow panic, got %v", r)
		}
	}()
	s.with(func(*AppState[model]) {
		s.with(func(*AppState[model]) {})
	})
}

func TestLauncherSubmitSchedulesDrain(t *testing.T) {
	root := &recorder{name: "A"}
	f := launch(t, nil, root)
	if !f.launcher.Submit(command.Auto, command.New("flush", nil)) {
		t.Fatalf("expected submit to find a waker")
	}
	f.platform.Windows[0].RunIdle(f.ctx)
	if got := strings.Join(root.commands(), ","); got != "flush" {
		t.Fatalf("expected flush, got %s", got)
	}
	if d, ok := f.launcher.Data(); !ok || d.n != 0 {
		t.Fatalf("expected launched data, got %+v %v", d, ok)
	}
}

func TestLaunchWithoutWindows(t *testing.T) {
	l := NewLauncher[model](nil)
	if err := l.Launch(testutil.NewPlatform(), model{}); err != ErrNoWindows {
		t.Fatalf("expected ErrNoWindows, got %v", err)
	}
}

func TestLaunchFailureRollsBack(t *testing.T) {
	useTempLog(t)
	broken := window.NewDesc[model](func() window.Widget[model] { return nil })
	l := NewLauncher(descFor(&recorder{name: "A"})).AddWindow(broken)

	p := testutil.NewPlatform()
	if err := l.Launch(p, model{}); !errors.Is(err, window.ErrNoRoot) {
		t.Fatalf("expected ErrNoRoot, got %v", err)
	}
	if len(p.Windows) != 1 {
		t.Fatalf("expected one window built before the failure, got %d", len(p.Windows))
	}
	if p.Windows[0].Closes != 1 || p.Windows[0].Shown != 0 {
		t.Fatalf("expected the built window closed unshown, got %+v", p.Windows[0])
	}
	if _, ok := l.ext.Waker(); ok {
		t.Fatalf("expected no waker after rollback")
	}
	if _, ok := l.Data(); ok {
		t.Fatalf("expected no state after rollback")
	}

	l.windows[1] = descFor(&recorder{name: "B"})
	retry := testutil.NewPlatform()
	if err := l.Launch(retry, model{}); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if len(retry.Windows) != 2 {
		t.Fatalf("expected 2 windows on retry, got %d", len(retry.Windows))
	}
	if _, ok := l.ext.Waker(); !ok {
		t.Fatalf("expected a waker after retry")
	}
}
