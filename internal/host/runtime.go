// Package host drives one frame at a time: drain input, route it to a single
// consumer, then run the script's layout and draw pass against a freshly
// cleared canvas.
package host

import (
	"fmt"

	"github.com/atomicstack/scripthost/internal/bridge"
	"github.com/atomicstack/scripthost/internal/input"
	"github.com/atomicstack/scripthost/internal/logging"
	"github.com/atomicstack/scripthost/internal/logging/events"
	"github.com/atomicstack/scripthost/internal/markup"
	"github.com/atomicstack/scripthost/internal/modal"
	"github.com/atomicstack/scripthost/internal/popup"
	"github.com/atomicstack/scripthost/internal/render"
	"github.com/atomicstack/scripthost/internal/screen"
	"github.com/atomicstack/scripthost/internal/script"
	"github.com/atomicstack/scripthost/internal/viewport"
)

// Options configures a Runtime.
type Options struct {
	InitialSize screen.Size
	PopupMode   popup.Mode
	EscapeKey   string
	Background  markup.Color
	// Observer, when set, sees every primitive alongside the canvas.
	Observer render.Renderer
}

// Stats summarises the last frame.
type Stats struct {
	Frame     uint64
	Events    int
	Target    modal.Target
	Layers    int
	OffScreen []popup.Geometry
	TopLayer  string
}

// Runtime owns all core state. Only Queue and Resize may be called from
// goroutines other than the one calling Frame.
type Runtime struct {
	queue     *input.Queue
	screen    *screen.State
	viewports *viewport.Stack
	modals    *modal.Stack
	canvas    *render.Canvas
	bridge    *bridge.Bridge
	script    script.Script
	mode      popup.Mode

	frame    uint64
	warned   map[string]bool
	lastStat Stats
}

// NewRuntime builds the core around s and calls its Init.
func NewRuntime(s script.Script, opts Options) *Runtime {
	size := screen.NewState(opts.InitialSize)
	current := size.Size()
	canvas := render.NewCanvas(current.Width, current.Height, opts.Background)
	rt := &Runtime{
		queue:     input.NewQueue(),
		screen:    size,
		viewports: &viewport.Stack{},
		modals:    modal.NewStack(opts.EscapeKey),
		canvas:    canvas,
		script:    s,
		mode:      opts.PopupMode,
		warned:    map[string]bool{},
	}
	var target render.Renderer = canvas
	if opts.Observer != nil {
		target = render.Tee{canvas, opts.Observer}
	}
	rt.bridge = bridge.New(target, rt.screen, rt.viewports, rt.modals, opts.PopupMode)
	rt.guard("init", func() { s.Init(rt.bridge) })
	rt.bridge.ResetViewport()
	return rt
}

// Queue is the device-facing input buffer.
func (r *Runtime) Queue() *input.Queue {
	return r.queue
}

// Screen exposes the shared screen-size state.
func (r *Runtime) Screen() *screen.State {
	return r.screen
}

// Resize records a resize notification.
func (r *Runtime) Resize(width, height int) {
	if r.screen.Resize(width, height) {
		events.Screen.Resize(width, height)
	}
}

// Modals exposes the popup stack for inspection.
func (r *Runtime) Modals() *modal.Stack {
	return r.modals
}

// Bridge exposes the script API.
func (r *Runtime) Bridge() *bridge.Bridge {
	return r.bridge
}

// Canvas returns the surface drawn by the last frame.
func (r *Runtime) Canvas() *render.Canvas {
	return r.canvas
}

// Script returns the running script.
func (r *Runtime) Script() script.Script {
	return r.script
}

// Done reports whether the script asked to exit.
func (r *Runtime) Done() bool {
	return r.script.Done()
}

// LastStats returns the stats of the most recent frame.
func (r *Runtime) LastStats() Stats {
	return r.lastStat
}

// Frame runs one tick. It always completes; panics raised by script code are
// logged and the frame carries on with whatever was drawn.
func (r *Runtime) Frame() Stats {
	r.frame++
	batch := r.queue.Drain()

	target := modal.TargetMain
	r.guard("route", func() {
		target = r.modals.Route(batch, func(b []input.Event) {
			r.script.HandleEvents(r.bridge, b)
		})
	})
	r.bridge.ResetViewport()

	size := r.screen.Size()
	if w, h := r.canvas.Size(); w != size.Width || h != size.Height {
		r.canvas.Resize(size.Width, size.Height)
	} else {
		r.canvas.Clear()
	}
	r.guard("draw", func() { r.script.Draw(r.bridge) })
	r.bridge.ResetViewport()

	stats := Stats{
		Frame:  r.frame,
		Events: len(batch),
		Target: target,
		Layers: r.modals.Len(),
	}
	if top, ok := r.modals.Top(); ok {
		stats.TopLayer = top.ID
	}
	stats.OffScreen = r.checkPopups(size)
	events.Frame.Tick(r.frame, len(batch), target.String())
	r.lastStat = stats
	return stats
}

// checkPopups resolves every open layer and reports the ones that do not fit.
// Each overflowing layer is logged once.
func (r *Runtime) checkPopups(size screen.Size) []popup.Geometry {
	open := map[string]bool{}
	var overflow []popup.Geometry
	for _, l := range r.modals.Layers() {
		open[l.ID] = true
		g := popup.Compute(l.ContentWidth, l.ContentHeight, size, r.mode)
		if !g.OffScreen {
			delete(r.warned, l.ID)
			continue
		}
		overflow = append(overflow, g)
		if r.warned[l.ID] {
			continue
		}
		r.warned[l.ID] = true
		events.Popup.Overflow(l.ID, r.mode.String(), g.X, g.Y, g.Width, g.Height, g.Clamped)
		if g.Clamped {
			logging.Warn("popup clamped to screen", "id", l.ID, "contentHeight", l.ContentHeight, "screenHeight", size.Height)
		} else {
			logging.Warn("popup extends off-screen and still captures input", "id", l.ID, "x", g.X, "y", g.Y, "escapeKey", r.modals.EscapeKey())
		}
	}
	for id := range r.warned {
		if !open[id] {
			delete(r.warned, id)
		}
	}
	return overflow
}

func (r *Runtime) guard(phase string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			events.Frame.Panic(r.frame, phase, fmt.Sprint(rec))
			logging.Error(fmt.Errorf("script %s panicked during %s: %v", r.script.Name(), phase, rec))
		}
	}()
	fn()
}
