// Package popup computes the on-screen rectangle of a centered popup.
package popup

import (
	"fmt"
	"strings"

	"github.com/atomicstack/scripthost/internal/screen"
)

// Mode selects how overflowing popups are placed.
type Mode int

const (
	// Faithful centers the popup and leaves negative coordinates alone, so a
	// popup taller than the screen starts above the top edge.
	Faithful Mode = iota
	// Bounded clamps the origin to 0 and shrinks the rect to the screen.
	Bounded
)

func (m Mode) String() string {
	switch m {
	case Faithful:
		return "faithful"
	case Bounded:
		return "bounded"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "faithful" or "bounded", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "faithful":
		return Faithful, nil
	case "bounded":
		return Bounded, nil
	default:
		return Faithful, fmt.Errorf("unknown popup mode %q (want faithful or bounded)", s)
	}
}

// Geometry is the resolved popup rectangle in absolute screen coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
	// OffScreen is set when the rect extends past the screen edges.
	OffScreen bool
	// Clamped is set when Bounded mode moved or shrank the rect.
	Clamped bool
}

// Compute centers a contentW x contentH rect on size.
func Compute(contentW, contentH int, size screen.Size, mode Mode) Geometry {
	g := Geometry{
		X:      floorHalf(size.Width - contentW),
		Y:      floorHalf(size.Height - contentH),
		Width:  contentW,
		Height: contentH,
	}
	g.OffScreen = g.X < 0 || g.Y < 0
	if mode != Bounded || !g.OffScreen {
		return g
	}
	g.Clamped = true
	if g.X < 0 {
		g.X = 0
		g.Width = size.Width
	}
	if g.Y < 0 {
		g.Y = 0
		g.Height = size.Height
	}
	return g
}

// floorHalf returns floor(n/2); Go's division truncates toward zero.
func floorHalf(n int) int {
	if n >= 0 {
		return n / 2
	}
	return -((-n + 1) / 2)
}
