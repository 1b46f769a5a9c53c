package events

import "github.com/atomicstack/popup-shell/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Launch(windows int) {
	logging.Trace("app.launch", map[string]interface{}{"windows": windows})
}

func (AppTracer) Quit() {
	logging.Trace("app.quit", nil)
}
