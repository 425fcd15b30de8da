// Package screen holds the process-wide logical window size.
//
// Lifecycle: a State is created once at startup with either a probed terminal
// size or DefaultSize, updated only from resize notifications, and read by the
// frame tick and the script bridge.
package screen

import "sync"

// DefaultSize is reported until the first resize notification arrives.
var DefaultSize = Size{Width: 1280, Height: 720}

// Size is a logical window size. Both dimensions are non-negative.
type Size struct {
	Width  int
	Height int
}

// State guards the current Size.
type State struct {
	mu   sync.RWMutex
	size Size
}

// NewState returns a State seeded with initial. Dimensions left at zero
// take their value from DefaultSize.
func NewState(initial Size) *State {
	initial = normalize(initial)
	if initial.Width == 0 {
		initial.Width = DefaultSize.Width
	}
	if initial.Height == 0 {
		initial.Height = DefaultSize.Height
	}
	return &State{size: initial}
}

// Size returns the last known size.
func (s *State) Size() Size {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Resize records a new client-area size and reports whether it changed.
func (s *State) Resize(width, height int) bool {
	next := normalize(Size{Width: width, Height: height})
	s.mu.Lock()
	defer s.mu.Unlock()
	if next == s.size {
		return false
	}
	s.size = next
	return true
}

func normalize(s Size) Size {
	if s.Width < 0 {
		s.Width = 0
	}
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}
