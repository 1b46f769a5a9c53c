package events

import "github.com/atomicstack/popup-shell/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Pending(id string) {
	logging.Trace("window.pending", map[string]interface{}{"window": id})
}

func (WindowTracer) Connect(id string) {
	logging.Trace("window.connect", map[string]interface{}{"window": id})
}

func (WindowTracer) Remove(id string) {
	logging.Trace("window.remove", map[string]interface{}{"window": id})
}

func (WindowTracer) CloseRequest(id string) {
	logging.Trace("window.close.request", map[string]interface{}{"window": id})
}

func (WindowTracer) Show(id string) {
	logging.Trace("window.show", map[string]interface{}{"window": id})
}

func (WindowTracer) Invalidate(id string) {
	logging.Trace("window.invalidate", map[string]interface{}{"window": id})
}

func (WindowTracer) Event(id, name string, handled bool) {
	logging.Trace("window.event", map[string]interface{}{"window": id, "event": name, "handled": handled})
}
