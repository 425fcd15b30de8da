// Package viewport implements nested drawing origins. Every push yields a
// Guard; releasing the guard restores the origin that was current before the
// push, so callers never pair push and pop by hand.
package viewport

// Point is a coordinate in logical pixels.
type Point struct {
	X int
	Y int
}

// Rect is a rectangular region. X and Y are relative to the origin that was
// current when the rect was pushed.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Stack tracks composed viewport frames. The zero value is a stack sitting at
// the absolute-screen root.
type Stack struct {
	frames []frame
	gen    uint64
}

type frame struct {
	origin Point
	bounds Rect
	gen    uint64
}

// Guard releases exactly one push.
type Guard struct {
	stack *Stack
	depth int
	gen   uint64
}

// Push establishes rect as the new origin, composed with the current one.
func (s *Stack) Push(rect Rect) *Guard {
	base := s.Origin()
	s.gen++
	f := frame{
		origin: Point{X: base.X + rect.X, Y: base.Y + rect.Y},
		bounds: Rect{X: base.X + rect.X, Y: base.Y + rect.Y, Width: rect.Width, Height: rect.Height},
		gen:    s.gen,
	}
	s.frames = append(s.frames, f)
	return &Guard{stack: s, depth: len(s.frames), gen: s.gen}
}

// Release restores the origin that was current before the guarded push,
// dropping any inner frames still open. Releasing twice, or after a Reset,
// is a no-op.
func (g *Guard) Release() {
	if g == nil || g.stack == nil {
		return
	}
	s := g.stack
	g.stack = nil
	if len(s.frames) < g.depth || s.frames[g.depth-1].gen != g.gen {
		return
	}
	s.frames = s.frames[:g.depth-1]
}

// With pushes rect, runs fn, and releases on every exit path.
func (s *Stack) With(rect Rect, fn func()) {
	g := s.Push(rect)
	defer g.Release()
	fn()
}

// Reset collapses the stack to the root origin.
func (s *Stack) Reset() {
	s.frames = s.frames[:0]
}

// Depth returns the number of open frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Origin returns the absolute position of the current local (0,0).
func (s *Stack) Origin() Point {
	if len(s.frames) == 0 {
		return Point{}
	}
	return s.frames[len(s.frames)-1].origin
}

// Bounds returns the absolute rect of the innermost frame and false when the
// stack is at the root.
func (s *Stack) Bounds() (Rect, bool) {
	if len(s.frames) == 0 {
		return Rect{}, false
	}
	return s.frames[len(s.frames)-1].bounds, true
}

// Resolve translates a local coordinate into absolute screen space.
func (s *Stack) Resolve(x, y int) (int, int) {
	o := s.Origin()
	return o.X + x, o.Y + y
}
