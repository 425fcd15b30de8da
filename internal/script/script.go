// Package script defines the contract between the host and the scripted
// application it runs.
package script

import (
	"github.com/atomicstack/scripthost/internal/bridge"
	"github.com/atomicstack/scripthost/internal/input"
)

// Script is the scripted application. The host calls it only from the frame
// goroutine: HandleEvents with the batch routed to the main UI (never while a
// popup owns input), then Draw once per frame. Popups receive their batches
// through the handlers passed to bridge.OpenPopup.
type Script interface {
	Name() string
	Init(b *bridge.Bridge)
	HandleEvents(b *bridge.Bridge, batch []input.Event)
	Draw(b *bridge.Bridge)
	// Done reports that the script wants the host to exit.
	Done() bool
}

// Factory builds a fresh script instance.
type Factory func() Script

// Registry maps script names to factories.
type Registry struct {
	order     []string
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds or replaces a factory.
func (r *Registry) Register(name string, f Factory) {
	if _, exists := r.factories[name]; !exists {
		r.order = append(r.order, name)
	}
	r.factories[name] = f
}

// New instantiates the named script.
func (r *Registry) New(name string) (Script, bool) {
	f, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names lists registered scripts in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
