package input

import "fmt"

// Kind identifies the variant carried by an Event.
type Kind int

const (
	KindKeyDown Kind = iota
	KindKeyUp
	KindMouseMove
)

func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	case KindMouseMove:
		return "mouse-move"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a device-originated input event. Code is set for key events,
// X and Y for mouse motion, in logical pixels.
type Event struct {
	Kind Kind
	Code string
	X    int
	Y    int
}

func KeyDown(code string) Event { return Event{Kind: KindKeyDown, Code: code} }

func KeyUp(code string) Event { return Event{Kind: KindKeyUp, Code: code} }

func MouseMove(x, y int) Event { return Event{Kind: KindMouseMove, X: x, Y: y} }

// IsKeyDown reports whether e is a press of the given key code.
func (e Event) IsKeyDown(code string) bool {
	return e.Kind == KindKeyDown && e.Code == code
}

func (e Event) String() string {
	if e.Kind == KindMouseMove {
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.X, e.Y)
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Code)
}
