// Package modal keeps the ordered set of open popup layers and decides which
// consumer receives each frame's input batch.
//
// Routing is single-consumer: while any layer is open the topmost one
// receives the entire batch, whether or not it is visible on screen. The only
// way out of an unreachable layer is the escape key, which clears the stack.
package modal

import (
	"fmt"

	"github.com/atomicstack/scripthost/internal/input"
	"github.com/atomicstack/scripthost/internal/logging/events"
)

// DefaultEscapeKey force-pops every layer when pressed while a popup is open.
const DefaultEscapeKey = "ctrl+g"

// Handler consumes one frame's batch of events.
type Handler func([]input.Event)

// Layer is a handle to one open popup.
type Layer struct {
	ID            string
	ContentWidth  int
	ContentHeight int
	Handler       Handler
}

// Target names the consumer chosen for a batch.
type Target int

const (
	TargetMain Target = iota
	TargetLayer
	TargetForcePop
)

func (t Target) String() string {
	switch t {
	case TargetMain:
		return "main"
	case TargetLayer:
		return "layer"
	case TargetForcePop:
		return "force-pop"
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

// Stack is confined to the frame goroutine and is not safe for concurrent use.
type Stack struct {
	layers    []Layer
	escapeKey string
	nextID    int
}

// NewStack returns an empty stack. An empty escapeKey selects DefaultEscapeKey.
func NewStack(escapeKey string) *Stack {
	if escapeKey == "" {
		escapeKey = DefaultEscapeKey
	}
	return &Stack{escapeKey: escapeKey}
}

// EscapeKey returns the reserved force-pop key.
func (s *Stack) EscapeKey() string {
	return s.escapeKey
}

// NewID allocates a layer identifier unique within this stack.
func (s *Stack) NewID() string {
	s.nextID++
	return fmt.Sprintf("popup-%d", s.nextID)
}

// Push makes layer the topmost consumer. A missing ID is allocated.
func (s *Stack) Push(layer Layer) Layer {
	if layer.ID == "" {
		layer.ID = s.NewID()
	}
	s.layers = append(s.layers, layer)
	events.Modal.Push(layer.ID, layer.ContentWidth, layer.ContentHeight, len(s.layers))
	return layer
}

// Pop removes and returns the topmost layer.
func (s *Stack) Pop() (Layer, bool) {
	n := len(s.layers)
	if n == 0 {
		return Layer{}, false
	}
	top := s.layers[n-1]
	s.layers[n-1] = Layer{}
	s.layers = s.layers[:n-1]
	events.Modal.Pop(top.ID, len(s.layers))
	return top, true
}

// Top returns the topmost layer without removing it.
func (s *Stack) Top() (Layer, bool) {
	if len(s.layers) == 0 {
		return Layer{}, false
	}
	return s.layers[len(s.layers)-1], true
}

// Len returns the number of open layers.
func (s *Stack) Len() int {
	return len(s.layers)
}

// Layers returns a copy of the open layers, bottom first.
func (s *Stack) Layers() []Layer {
	if len(s.layers) == 0 {
		return nil
	}
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Clear drops every layer and returns how many were open.
func (s *Stack) Clear() int {
	n := len(s.layers)
	for i := range s.layers {
		s.layers[i] = Layer{}
	}
	s.layers = s.layers[:0]
	return n
}

// SetContentSize records the content size a layer computed during its own
// layout pass. It reports false when id is not open.
func (s *Stack) SetContentSize(id string, width, height int) bool {
	for i := range s.layers {
		if s.layers[i].ID == id {
			s.layers[i].ContentWidth = width
			s.layers[i].ContentHeight = height
			return true
		}
	}
	return false
}

// Lookup finds an open layer by id.
func (s *Stack) Lookup(id string) (Layer, bool) {
	for _, l := range s.layers {
		if l.ID == id {
			return l, true
		}
	}
	return Layer{}, false
}

// Route hands the whole batch to exactly one consumer: the topmost layer when
// one is open, main otherwise. A press of the escape key while layers are open
// clears the stack and consumes the batch.
func (s *Stack) Route(batch []input.Event, main Handler) Target {
	top, ok := s.Top()
	if !ok {
		if main != nil {
			main(batch)
		}
		return TargetMain
	}
	for _, evt := range batch {
		if evt.IsKeyDown(s.escapeKey) {
			events.Modal.ForcePop(s.escapeKey, s.Clear())
			return TargetForcePop
		}
	}
	events.Modal.Route(top.ID, len(batch))
	if top.Handler != nil {
		top.Handler(batch)
	}
	return TargetLayer
}
