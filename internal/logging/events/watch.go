package events

import "github.com/atomicstack/popup-shell/internal/logging"

type WatchTracer struct{}

var Watch = WatchTracer{}

func (WatchTracer) Add(path string) {
	logging.Trace("watch.add", map[string]interface{}{"path": path})
}

func (WatchTracer) Change(path, op string) {
	logging.Trace("watch.change", map[string]interface{}{"path": path, "op": op})
}

func (WatchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("watch.error", map[string]interface{}{"error": err.Error()})
}
