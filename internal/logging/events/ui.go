package events

import "github.com/atomicstack/chatroom/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Selection(selected int) {
	logging.Trace("ui.selection", map[string]interface{}{"selected": selected})
}

func (UITracer) Input(input string) {
	logging.Trace("ui.input", map[string]interface{}{"input": input})
}

func (UITracer) Submit(message string, total int) {
	logging.Trace("ui.submit", map[string]interface{}{"message": message, "total": total})
}

func (UITracer) Quit() {
	logging.Trace("ui.quit", nil)
}
