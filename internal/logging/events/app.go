package events

import "github.com/atomicstack/scripthost/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(script string, frames uint64) {
	logging.Trace("app.exit", map[string]interface{}{"script": script, "frames": frames})
}
