// Package demo is the built-in script used when no other script is selected.
// It touches every bridge call: markup strings, nested viewports, text
// measurement, caret hit-testing and popups, including one tall enough to
// fall off the top of the screen.
package demo

import (
	"fmt"
	"strings"

	"github.com/atomicstack/scripthost/internal/bridge"
	"github.com/atomicstack/scripthost/internal/input"
	"github.com/atomicstack/scripthost/internal/markup"
)

// Name is the registry key for this script.
const Name = "demo"

var (
	background = markup.RGB(0x1c, 0x1c, 0x1c)
	panel      = markup.RGB(0x30, 0x30, 0x30)
	popupFill  = markup.RGB(0x26, 0x26, 0x40)
	textColor  = markup.RGB(0xd0, 0xd0, 0xd0)
	dimColor   = markup.RGB(0x80, 0x80, 0x80)
)

// Script is the demo application state.
type Script struct {
	presses int
	mouseX  int
	mouseY  int
	lastKey string
	done    bool

	palette *commandPalette
	tall    *tallPopup
}

// New returns a fresh demo script.
func New() *Script {
	return &Script{mouseX: -1, mouseY: -1}
}

func (s *Script) Name() string { return Name }

func (s *Script) Init(b *bridge.Bridge) {}

func (s *Script) Done() bool { return s.done }

// Presses reports how many key presses reached the main UI.
func (s *Script) Presses() int { return s.presses }

// HandleEvents processes input routed to the main UI.
func (s *Script) HandleEvents(b *bridge.Bridge, batch []input.Event) {
	for _, evt := range batch {
		switch evt.Kind {
		case input.KindMouseMove:
			s.mouseX, s.mouseY = evt.X, evt.Y
		case input.KindKeyDown:
			s.presses++
			s.lastKey = evt.Code
			switch evt.Code {
			case "q":
				s.done = true
			case "p":
				s.openPalette(b)
			case "t":
				s.openTall(b)
			}
		}
	}
}

func (s *Script) openPalette(b *bridge.Bridge) {
	if s.palette != nil && b.PopupOpen(s.palette.id) {
		return
	}
	p := newCommandPalette(s)
	p.id = b.OpenPopupSized(p.contentWidth(b), p.contentHeight(), func(batch []input.Event) {
		p.handle(b, batch)
	})
	s.palette = p
}

func (s *Script) openTall(b *bridge.Bridge) {
	t := &tallPopup{}
	_, h := b.GetScreenSize()
	t.id = b.OpenPopup(h+h/20+1, func(batch []input.Event) {
		t.handle(b, batch)
	})
	s.tall = t
}

// Draw lays out the main screen and then any open popups, bottom first.
func (s *Script) Draw(b *bridge.Bridge) {
	w, h := b.GetScreenSize()
	b.FillRect(0, 0, w, h, background)

	b.FillRect(0, 0, w, 1, panel)
	b.DrawString(1, 0, "^7scripthost ^8demo", textColor)

	b.WithViewport(2, 2, w-4, 6, func() {
		b.DrawString(0, 0, fmt.Sprintf("Presses: ^2%d", s.presses), textColor)
		if s.lastKey != "" {
			b.DrawString(0, 1, "Last key: ^6"+escape(s.lastKey), textColor)
		}
		if s.mouseX >= 0 {
			b.DrawString(0, 2, fmt.Sprintf("Mouse: ^6%d,%d", s.mouseX, s.mouseY), textColor)
		}
		label := "Palette: "
		b.DrawString(0, 3, label, dimColor)
		x := b.DrawStringWidth(label)
		for d := 0; d <= 9; d++ {
			b.DrawString(x+d, 3, fmt.Sprintf("^%d%d", d, d), textColor)
		}
	})

	if h > 1 {
		b.DrawString(1, h-1, "^8p^7 palette  ^8t^7 tall popup  ^8q^7 quit", textColor)
	}

	if s.tall != nil {
		if b.PopupOpen(s.tall.id) {
			s.tall.draw(b)
		} else {
			s.tall = nil
		}
	}
	if s.palette != nil {
		if b.PopupOpen(s.palette.id) {
			s.palette.draw(b)
		} else {
			s.palette = nil
		}
	}
}

// escape doubles carets so user-supplied text renders literally.
func escape(text string) string {
	return strings.ReplaceAll(text, "^", "^^")
}

// tallPopup is taller than the screen on purpose. Centered without clamping
// its title row sits above the top edge, yet it still owns all input until
// closed with esc or force-popped by the host.
type tallPopup struct {
	id string
}

func (t *tallPopup) handle(b *bridge.Bridge, batch []input.Event) {
	for _, evt := range batch {
		if evt.IsKeyDown("esc") {
			b.ClosePopup()
			return
		}
	}
}

func (t *tallPopup) draw(b *bridge.Bridge) {
	g, ok := b.PopupGeometry(t.id)
	if !ok {
		return
	}
	b.FillRect(g.X, g.Y, g.Width, g.Height, popupFill)
	b.WithViewport(g.X, g.Y, g.Width, g.Height, func() {
		b.DrawString(1, 0, "^4Tall popup^7 - press esc to close", textColor)
		for row := 2; row < g.Height-1; row += 2 {
			b.DrawString(1, row, fmt.Sprintf("^8row %d", row), textColor)
		}
	})
}
