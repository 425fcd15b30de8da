package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/scripthost/internal/bridge"
	"github.com/atomicstack/scripthost/internal/input"
	"github.com/atomicstack/scripthost/internal/logging"
	"github.com/atomicstack/scripthost/internal/markup"
	"github.com/atomicstack/scripthost/internal/modal"
	"github.com/atomicstack/scripthost/internal/popup"
	"github.com/atomicstack/scripthost/internal/render"
	"github.com/atomicstack/scripthost/internal/screen"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "scripthost-host")
	if err != nil {
		panic(err)
	}
	logging.Configure(filepath.Join(dir, "test.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type fakeScript struct {
	mainEvents  []input.Event
	popupEvents []input.Event
	draws       int
	drawFn      func(b *bridge.Bridge)
	handleFn    func(b *bridge.Bridge, batch []input.Event)
	done        bool
}

func (f *fakeScript) Name() string        { return "fake" }
func (f *fakeScript) Init(*bridge.Bridge) {}
func (f *fakeScript) Done() bool          { return f.done }

func (f *fakeScript) HandleEvents(b *bridge.Bridge, batch []input.Event) {
	f.mainEvents = append(f.mainEvents, batch...)
	if f.handleFn != nil {
		f.handleFn(b, batch)
	}
}

func (f *fakeScript) Draw(b *bridge.Bridge) {
	f.draws++
	if f.drawFn != nil {
		f.drawFn(b)
	}
}

func (f *fakeScript) popupHandler(batch []input.Event) {
	f.popupEvents = append(f.popupEvents, batch...)
}

func newTestRuntime(s *fakeScript, mode popup.Mode) (*Runtime, *render.Recorder) {
	rec := &render.Recorder{}
	rt := NewRuntime(s, Options{
		InitialSize: screen.Size{Width: 1280, Height: 720},
		PopupMode:   mode,
		Observer:    rec,
	})
	return rt, rec
}

func TestFrameRoutesToMainWithoutPopups(t *testing.T) {
	s := &fakeScript{}
	rt, _ := newTestRuntime(s, popup.Faithful)
	rt.Queue().Append(input.KeyDown("a"))
	rt.Queue().Append(input.KeyUp("a"))
	stats := rt.Frame()
	if stats.Target != modal.TargetMain || stats.Events != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(s.mainEvents) != 2 || s.draws != 1 {
		t.Fatalf("expected main to see both events and one draw, got %d/%d", len(s.mainEvents), s.draws)
	}
	if rt.Queue().Len() != 0 {
		t.Fatalf("expected queue drained")
	}
}

func TestFrameWithPopupLeavesMainUntouched(t *testing.T) {
	s := &fakeScript{}
	rt, _ := newTestRuntime(s, popup.Faithful)
	rt.Bridge().OpenPopup(753, s.popupHandler)

	rt.Queue().Append(input.KeyDown("x"))
	rt.Queue().Append(input.MouseMove(4, 5))
	stats := rt.Frame()

	if len(s.mainEvents) != 0 {
		t.Fatalf("main UI must not receive events while a popup is open, got %v", s.mainEvents)
	}
	if len(s.popupEvents) != 2 {
		t.Fatalf("expected popup to receive both events once, got %v", s.popupEvents)
	}
	if stats.Target != modal.TargetLayer || stats.Layers != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(stats.OffScreen) != 1 || stats.OffScreen[0].Y != -17 {
		t.Fatalf("expected off-screen popup at y=-17, got %+v", stats.OffScreen)
	}
}

func TestEscapeKeyRecoversFromOffScreenPopup(t *testing.T) {
	s := &fakeScript{}
	rt, _ := newTestRuntime(s, popup.Faithful)
	rt.Bridge().OpenPopup(5000, s.popupHandler)

	rt.Queue().Append(input.KeyDown(modal.DefaultEscapeKey))
	stats := rt.Frame()
	if stats.Target != modal.TargetForcePop || stats.Layers != 0 {
		t.Fatalf("expected force-pop, got %+v", stats)
	}

	rt.Queue().Append(input.KeyDown("b"))
	rt.Frame()
	if len(s.mainEvents) != 1 || s.mainEvents[0].Code != "b" {
		t.Fatalf("expected main UI to regain input, got %v", s.mainEvents)
	}
	if len(s.popupEvents) != 0 {
		t.Fatalf("popup must not see the escape batch")
	}
}

func TestBoundedModeReportsClampedPopup(t *testing.T) {
	s := &fakeScript{}
	rt, _ := newTestRuntime(s, popup.Bounded)
	rt.Bridge().OpenPopup(753, s.popupHandler)
	stats := rt.Frame()
	if len(stats.OffScreen) != 1 {
		t.Fatalf("expected one overflowing popup, got %+v", stats.OffScreen)
	}
	g := stats.OffScreen[0]
	if g.Y != 0 || !g.Clamped {
		t.Fatalf("expected clamped geometry, got %+v", g)
	}
}

func TestViewportResetBetweenFrames(t *testing.T) {
	s := &fakeScript{}
	rt, rec := newTestRuntime(s, popup.Faithful)
	s.drawFn = func(b *bridge.Bridge) {
		b.DrawString(0, 0, "a", markup.Palette[7])
		b.SetViewport(10, 10, 100, 100)
		b.SetViewport(5, 5, 20, 20)
		b.DrawString(0, 0, "b", markup.Palette[7])
	}
	rt.Frame()
	rt.Frame()
	texts := rec.Texts()
	if len(texts) != 4 {
		t.Fatalf("expected four runs, got %d", len(texts))
	}
	if texts[1].X != 15 || texts[1].Y != 15 {
		t.Fatalf("expected nested draw at (15,15), got (%d,%d)", texts[1].X, texts[1].Y)
	}
	if texts[2].X != 0 || texts[2].Y != 0 {
		t.Fatalf("leaked viewport: next frame drew at (%d,%d)", texts[2].X, texts[2].Y)
	}
}

func TestViewportResetAfterEventHandling(t *testing.T) {
	s := &fakeScript{}
	rt, rec := newTestRuntime(s, popup.Faithful)
	s.handleFn = func(b *bridge.Bridge, batch []input.Event) {
		b.SetViewport(30, 30, 1, 1)
	}
	s.drawFn = func(b *bridge.Bridge) {
		b.DrawString(1, 1, "x", markup.Palette[7])
	}
	rt.Queue().Append(input.KeyDown("k"))
	rt.Frame()
	texts := rec.Texts()
	if len(texts) != 1 || texts[0].X != 1 || texts[0].Y != 1 {
		t.Fatalf("expected draw at root origin, got %+v", texts)
	}
}

func TestFrameSurvivesScriptPanic(t *testing.T) {
	s := &fakeScript{}
	rt, _ := newTestRuntime(s, popup.Faithful)
	s.handleFn = func(*bridge.Bridge, []input.Event) { panic("handler bug") }
	s.drawFn = func(b *bridge.Bridge) {
		b.SetViewport(3, 3, 1, 1)
		panic("draw bug")
	}
	rt.Queue().Append(input.KeyDown("z"))
	stats := rt.Frame()
	if stats.Frame != 1 {
		t.Fatalf("expected frame to complete, got %+v", stats)
	}
	s.handleFn = nil
	s.drawFn = func(b *bridge.Bridge) { b.DrawString(0, 0, "ok", markup.Palette[7]) }
	rt.Frame()
	if got := rt.Canvas().Row(0); got[:2] != "ok" {
		t.Fatalf("expected recovery at root origin, got %q", got[:10])
	}
}

func TestResizeReachesCanvasNextFrame(t *testing.T) {
	s := &fakeScript{}
	rt, _ := newTestRuntime(s, popup.Faithful)
	rt.Resize(40, 10)
	rt.Frame()
	if w, h := rt.Canvas().Size(); w != 40 || h != 10 {
		t.Fatalf("expected 40x10 canvas, got %dx%d", w, h)
	}
	s.drawFn = func(b *bridge.Bridge) {
		w, h := b.GetScreenSize()
		if w != 40 || h != 10 {
			t.Errorf("script saw %dx%d", w, h)
		}
	}
	rt.Frame()
}

func TestPopupOpenedDuringRoutingReceivesNextBatch(t *testing.T) {
	s := &fakeScript{}
	rt, _ := newTestRuntime(s, popup.Faithful)
	s.handleFn = func(b *bridge.Bridge, batch []input.Event) {
		for _, e := range batch {
			if e.IsKeyDown("p") {
				b.OpenPopup(10, s.popupHandler)
			}
		}
	}
	rt.Queue().Append(input.KeyDown("p"))
	rt.Queue().Append(input.KeyDown("after"))
	rt.Frame()
	if len(s.mainEvents) != 2 || len(s.popupEvents) != 0 {
		t.Fatalf("batch must stay with its consumer, main=%v popup=%v", s.mainEvents, s.popupEvents)
	}
	rt.Queue().Append(input.KeyDown("next"))
	rt.Frame()
	if len(s.popupEvents) != 1 || len(s.mainEvents) != 2 {
		t.Fatalf("expected popup to own the following frame, main=%v popup=%v", s.mainEvents, s.popupEvents)
	}
}
