package events

import "github.com/atomicstack/scripthost/internal/logging"

type FrameTracer struct{}

type ModalTracer struct{}

type PopupTracer struct{}

type ScreenTracer struct{}

var (
	Frame  = FrameTracer{}
	Modal  = ModalTracer{}
	Popup  = PopupTracer{}
	Screen = ScreenTracer{}
)

func (FrameTracer) Tick(frame uint64, events int, target string) {
	if events == 0 {
		return
	}
	logging.Trace("frame.tick", map[string]interface{}{"frame": frame, "events": events, "target": target})
}

func (FrameTracer) Panic(frame uint64, phase string, recovered interface{}) {
	logging.Trace("frame.panic", map[string]interface{}{"frame": frame, "phase": phase, "recovered": recovered})
}

func (ModalTracer) Push(id string, width, height, depth int) {
	logging.Trace("modal.push", map[string]interface{}{"id": id, "width": width, "height": height, "depth": depth})
}

func (ModalTracer) Pop(id string, depth int) {
	logging.Trace("modal.pop", map[string]interface{}{"id": id, "depth": depth})
}

func (ModalTracer) ForcePop(key string, cleared int) {
	logging.Trace("modal.force-pop", map[string]interface{}{"key": key, "cleared": cleared})
}

func (ModalTracer) Route(id string, events int) {
	logging.Trace("modal.route", map[string]interface{}{"id": id, "events": events})
}

func (PopupTracer) Overflow(id, mode string, x, y, width, height int, clamped bool) {
	logging.Trace("popup.overflow", map[string]interface{}{
		"id":      id,
		"mode":    mode,
		"x":       x,
		"y":       y,
		"width":   width,
		"height":  height,
		"clamped": clamped,
	})
}

func (ScreenTracer) Resize(width, height int) {
	logging.Trace("screen.resize", map[string]interface{}{"width": width, "height": height})
}
