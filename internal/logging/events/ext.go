package events

import "github.com/atomicstack/popup-shell/internal/logging"

type ExtTracer struct{}

var Ext = ExtTracer{}

func (ExtTracer) Submit(target, selector string) {
	logging.Trace("ext.submit", map[string]interface{}{"target": target, "selector": selector})
}

func (ExtTracer) Wake(window string) {
	logging.Trace("ext.wake", map[string]interface{}{"window": window})
}

func (ExtTracer) Waker(window string) {
	logging.Trace("ext.waker", map[string]interface{}{"window": window})
}

func (ExtTracer) WakerCleared(window string) {
	logging.Trace("ext.waker.cleared", map[string]interface{}{"window": window})
}

func (ExtTracer) Drain(window string, count int) {
	logging.Trace("ext.drain", map[string]interface{}{"window": window, "count": count})
}
