package events

import (
	"time"

	"github.com/atomicstack/chatroom/internal/logging"
)

type SourceTracer struct{}

var Source = SourceTracer{}

func (SourceTracer) Start(tickRate time.Duration) {
	logging.Trace("source.start", map[string]interface{}{"tickRate": tickRate.String()})
}

func (SourceTracer) Closed() {
	logging.Trace("source.closed", nil)
}
