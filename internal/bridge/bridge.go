// Package bridge exposes the drawing and popup API that scripts call during a
// frame. Coordinates passed in are local to the current viewport; everything
// handed to the renderer is absolute.
package bridge

import (
	"github.com/atomicstack/scripthost/internal/markup"
	"github.com/atomicstack/scripthost/internal/modal"
	"github.com/atomicstack/scripthost/internal/popup"
	"github.com/atomicstack/scripthost/internal/render"
	"github.com/atomicstack/scripthost/internal/screen"
	"github.com/atomicstack/scripthost/internal/viewport"
)

// Bridge is owned by the frame goroutine.
type Bridge struct {
	renderer  render.Renderer
	screen    *screen.State
	viewports *viewport.Stack
	modals    *modal.Stack
	mode      popup.Mode
	guards    []*viewport.Guard
}

// New wires a bridge over the host's shared state.
func New(r render.Renderer, s *screen.State, v *viewport.Stack, m *modal.Stack, mode popup.Mode) *Bridge {
	return &Bridge{renderer: r, screen: s, viewports: v, modals: m, mode: mode}
}

// SetRenderer swaps the rendering collaborator, e.g. after a resize.
func (b *Bridge) SetRenderer(r render.Renderer) {
	b.renderer = r
}

// PopupMode reports the geometry policy in effect.
func (b *Bridge) PopupMode() popup.Mode {
	return b.mode
}

// GetScreenSize returns the current logical window size.
func (b *Bridge) GetScreenSize() (int, int) {
	s := b.screen.Size()
	return s.Width, s.Height
}

// SetViewport opens a viewport relative to the current one. It stays open
// until ResetViewport; the frame driver resets after every script callback.
func (b *Bridge) SetViewport(x, y, width, height int) {
	g := b.viewports.Push(viewport.Rect{X: x, Y: y, Width: width, Height: height})
	b.guards = append(b.guards, g)
}

// ResetViewport releases every viewport opened through SetViewport.
func (b *Bridge) ResetViewport() {
	for i := len(b.guards) - 1; i >= 0; i-- {
		b.guards[i].Release()
		b.guards[i] = nil
	}
	b.guards = b.guards[:0]
	b.viewports.Reset()
}

// WithViewport runs fn inside rect and restores the previous origin however
// fn returns.
func (b *Bridge) WithViewport(x, y, width, height int, fn func()) {
	b.viewports.With(viewport.Rect{X: x, Y: y, Width: width, Height: height}, fn)
}

// FillRect draws a solid rectangle at local coordinates.
func (b *Bridge) FillRect(x, y, width, height int, c markup.Color) {
	ax, ay := b.viewports.Resolve(x, y)
	b.renderer.FillRect(render.FillRect{X: ax, Y: ay, W: width, H: height, Color: c})
}

// DrawString draws markup text at local coordinates. Text before the first
// color directive uses c.
func (b *Bridge) DrawString(x, y int, text string, c markup.Color) {
	spans := markup.ComputeColorSpans(text, c)
	if len(spans) == 0 {
		return
	}
	ax, ay := b.viewports.Resolve(x, y)
	b.renderer.DrawText(render.TextRun{X: ax, Y: ay, Spans: spans})
}

// DrawStringWidth measures text in pixels, ignoring markup.
func (b *Bridge) DrawStringWidth(text string) int {
	return markup.Width(text)
}

// GetCursorIndexForOffset maps a pixel offset within text to a caret index.
func (b *Bridge) GetCursorIndexForOffset(text string, offset int) int {
	return markup.CursorIndexForOffset(text, offset)
}

// OpenPopup pushes a layer sized to contentHeight and half the screen width.
// The returned id addresses the layer in later calls.
func (b *Bridge) OpenPopup(contentHeight int, handler modal.Handler) string {
	w, _ := b.GetScreenSize()
	return b.OpenPopupSized(w/2, contentHeight, handler)
}

// OpenPopupSized pushes a layer with an explicit content size.
func (b *Bridge) OpenPopupSized(contentWidth, contentHeight int, handler modal.Handler) string {
	l := b.modals.Push(modal.Layer{
		ContentWidth:  contentWidth,
		ContentHeight: contentHeight,
		Handler:       handler,
	})
	return l.ID
}

// SetPopupContentHeight records the height a popup computed during its own
// layout pass, keeping its width.
func (b *Bridge) SetPopupContentHeight(id string, height int) bool {
	l, ok := b.modals.Lookup(id)
	if !ok {
		return false
	}
	return b.modals.SetContentSize(id, l.ContentWidth, height)
}

// ClosePopup pops the topmost layer.
func (b *Bridge) ClosePopup() bool {
	_, ok := b.modals.Pop()
	return ok
}

// PopupOpen reports whether id is still on the stack.
func (b *Bridge) PopupOpen(id string) bool {
	_, ok := b.modals.Lookup(id)
	return ok
}

// PopupGeometry resolves where layer id sits on screen this frame.
func (b *Bridge) PopupGeometry(id string) (popup.Geometry, bool) {
	l, ok := b.modals.Lookup(id)
	if !ok {
		return popup.Geometry{}, false
	}
	return popup.Compute(l.ContentWidth, l.ContentHeight, b.screen.Size(), b.mode), true
}
