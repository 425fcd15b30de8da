package modal

import (
	"testing"

	"github.com/atomicstack/scripthost/internal/input"
)

type recorder struct {
	batches [][]input.Event
}

func (r *recorder) handle(batch []input.Event) {
	r.batches = append(r.batches, batch)
}

func (r *recorder) count() int {
	n := 0
	for _, b := range r.batches {
		n += len(b)
	}
	return n
}

func TestRouteEmptyStackGoesToMain(t *testing.T) {
	s := NewStack("")
	var main recorder
	batch := []input.Event{input.KeyDown("a"), input.KeyUp("a")}
	if got := s.Route(batch, main.handle); got != TargetMain {
		t.Fatalf("expected main target, got %s", got)
	}
	if len(main.batches) != 1 || main.count() != 2 {
		t.Fatalf("expected one batch of two events, got %#v", main.batches)
	}
}

func TestRouteTopLayerOwnsWholeBatch(t *testing.T) {
	s := NewStack("")
	var main, lower, upper recorder
	s.Push(Layer{ID: "lower", Handler: lower.handle})
	s.Push(Layer{ID: "upper", Handler: upper.handle})

	batch := []input.Event{input.KeyDown("x"), input.MouseMove(1, 2), input.KeyUp("x")}
	if got := s.Route(batch, main.handle); got != TargetLayer {
		t.Fatalf("expected layer target, got %s", got)
	}
	if len(main.batches) != 0 {
		t.Fatalf("main UI must not see events while a layer is open")
	}
	if len(lower.batches) != 0 {
		t.Fatalf("only the topmost layer may receive events")
	}
	if len(upper.batches) != 1 || upper.count() != 3 {
		t.Fatalf("expected every event delivered once to the top layer, got %#v", upper.batches)
	}
	for i, evt := range batch {
		if upper.batches[0][i] != evt {
			t.Fatalf("event %d reordered: %v", i, upper.batches[0][i])
		}
	}
}

func TestRouteOffScreenLayerStillCapturesInput(t *testing.T) {
	s := NewStack("")
	var main, tall recorder
	s.Push(Layer{ID: "tall", ContentHeight: 5000, Handler: tall.handle})
	s.Route([]input.Event{input.KeyDown("esc")}, main.handle)
	if len(main.batches) != 0 || tall.count() != 1 {
		t.Fatalf("expected off-screen layer to own input")
	}
}

func TestRouteEscapeKeyClearsStack(t *testing.T) {
	s := NewStack("f12")
	var main, layer recorder
	s.Push(Layer{Handler: layer.handle})
	s.Push(Layer{Handler: layer.handle})

	got := s.Route([]input.Event{input.KeyDown("a"), input.KeyDown("f12")}, main.handle)
	if got != TargetForcePop {
		t.Fatalf("expected force-pop, got %s", got)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty stack, got %d", s.Len())
	}
	if len(main.batches) != 0 || len(layer.batches) != 0 {
		t.Fatalf("force-pop batch must be consumed")
	}

	s.Route([]input.Event{input.KeyDown("b")}, main.handle)
	if main.count() != 1 {
		t.Fatalf("expected main to receive input after recovery")
	}
}

func TestEscapeKeyIgnoredWithoutLayers(t *testing.T) {
	s := NewStack("")
	var main recorder
	if got := s.Route([]input.Event{input.KeyDown(DefaultEscapeKey)}, main.handle); got != TargetMain {
		t.Fatalf("expected main target, got %s", got)
	}
	if main.count() != 1 {
		t.Fatalf("expected escape key forwarded to main when no layer is open")
	}
}

func TestPushPopTop(t *testing.T) {
	s := NewStack("")
	if _, ok := s.Top(); ok {
		t.Fatalf("expected empty stack")
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("expected pop on empty stack to fail")
	}
	a := s.Push(Layer{ContentHeight: 10})
	b := s.Push(Layer{ID: "named"})
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected generated unique ids, got %q %q", a.ID, b.ID)
	}
	if top, _ := s.Top(); top.ID != "named" {
		t.Fatalf("expected named on top, got %q", top.ID)
	}
	if popped, ok := s.Pop(); !ok || popped.ID != "named" {
		t.Fatalf("unexpected pop %v %v", popped, ok)
	}
	if top, _ := s.Top(); top.ID != a.ID {
		t.Fatalf("expected %q on top, got %q", a.ID, top.ID)
	}
}

func TestSetContentSize(t *testing.T) {
	s := NewStack("")
	l := s.Push(Layer{})
	if !s.SetContentSize(l.ID, 40, 12) {
		t.Fatalf("expected update to succeed")
	}
	got, ok := s.Lookup(l.ID)
	if !ok || got.ContentWidth != 40 || got.ContentHeight != 12 {
		t.Fatalf("unexpected layer %+v", got)
	}
	if s.SetContentSize("missing", 1, 1) {
		t.Fatalf("expected unknown id to be rejected")
	}
	if layers := s.Layers(); len(layers) != 1 {
		t.Fatalf("expected one layer, got %d", len(layers))
	}
}
