package events

import "github.com/atomicstack/popup-shell/internal/logging"

type CommandTracer struct{}

type DelegateTracer struct{}

var (
	Command  = CommandTracer{}
	Delegate = DelegateTracer{}
)

func (CommandTracer) Queue(target, selector string) {
	logging.Trace("command.queue", map[string]interface{}{"target": target, "selector": selector})
}

func (CommandTracer) System(window, selector string) {
	logging.Trace("command.system", map[string]interface{}{"window": window, "selector": selector})
}

func (CommandTracer) Dispatch(target, selector string) {
	logging.Trace("command.dispatch", map[string]interface{}{"target": target, "selector": selector})
}

func (CommandTracer) Menu(window string, id uint32, selector string) {
	logging.Trace("command.menu", map[string]interface{}{"window": window, "id": id, "selector": selector})
}

func (DelegateTracer) Swallow(window, event string) {
	logging.Trace("delegate.swallow", map[string]interface{}{"window": window, "event": event})
}
