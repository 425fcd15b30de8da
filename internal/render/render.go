// Package render defines the primitives the core submits to the rendering
// collaborator. All coordinates are absolute screen positions.
package render

import "github.com/atomicstack/scripthost/internal/markup"

// FillRect is a solid rectangle.
type FillRect struct {
	X, Y, W, H int
	Color      markup.Color
}

// TextRun is a line of colored spans starting at X, Y.
type TextRun struct {
	X, Y  int
	Spans []markup.ColorSpan
}

// Renderer accepts resolved primitives.
type Renderer interface {
	FillRect(FillRect)
	DrawText(TextRun)
}

// Recorder keeps every primitive in submission order.
type Recorder struct {
	Ops []interface{}
}

func (r *Recorder) FillRect(f FillRect) {
	r.Ops = append(r.Ops, f)
}

func (r *Recorder) DrawText(t TextRun) {
	spans := make([]markup.ColorSpan, len(t.Spans))
	copy(spans, t.Spans)
	t.Spans = spans
	r.Ops = append(r.Ops, t)
}

// Texts returns the recorded text runs.
func (r *Recorder) Texts() []TextRun {
	var out []TextRun
	for _, op := range r.Ops {
		if t, ok := op.(TextRun); ok {
			out = append(out, t)
		}
	}
	return out
}

// Fills returns the recorded rectangles.
func (r *Recorder) Fills() []FillRect {
	var out []FillRect
	for _, op := range r.Ops {
		if f, ok := op.(FillRect); ok {
			out = append(out, f)
		}
	}
	return out
}

// Reset forgets recorded primitives.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Tee forwards every primitive to each renderer in order.
type Tee []Renderer

func (t Tee) FillRect(f FillRect) {
	for _, r := range t {
		r.FillRect(f)
	}
}

func (t Tee) DrawText(run TextRun) {
	for _, r := range t {
		r.DrawText(run)
	}
}
