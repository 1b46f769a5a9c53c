// Package backend produces external events: it watches files and submits a
// command for every change from its own goroutine.
package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/logging"
	"github.com/atomicstack/popup-shell/internal/logging/events"
)

// FileChanged is submitted for every observed change. Its payload is a
// FileChange.
const FileChanged command.Selector = "file-changed"

// FileChange describes one filesystem notification.
type FileChange struct {
	Path string
	Op   string
}

// Submitter accepts commands from outside the event loop.
type Submitter interface {
	Submit(cmd command.Command)
}

// Watcher turns fsnotify events into submitted commands.
type Watcher struct {
	sink     Submitter
	fs       *fsnotify.Watcher
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher starts watching paths. Changes to the same path closer together
// than interval are coalesced into the first one.
func NewWatcher(sink Submitter, interval time.Duration, paths ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for _, path := range paths {
		if err := fs.Add(path); err != nil {
			fs.Close()
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
		events.Watch.Add(path)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		sink:     sink,
		fs:       fs,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fs.Close()
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.emit(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Watch.Error(err)
			logging.Error(fmt.Errorf("watch: %w", err))
		}
	}
}

func (w *Watcher) emit(ev fsnotify.Event) {
	if ev.Op == 0 || !w.throttle.allow(ev.Name) {
		return
	}
	op := ev.Op.String()
	events.Watch.Change(ev.Name, op)
	w.sink.Submit(command.New(FileChanged, FileChange{Path: ev.Name, Op: op}))
}
