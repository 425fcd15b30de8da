package demo

import (
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/scripthost/internal/bridge"
	"github.com/atomicstack/scripthost/internal/input"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	paletteTitle  = "^3Command palette"
	filterPrompt  = "> "
	paletteChrome = 3 // title, filter row, trailing blank
)

type command struct {
	label string
	run   func(s *Script, b *bridge.Bridge)
}

var commands = []command{
	{label: "Increment counter", run: func(s *Script, b *bridge.Bridge) { s.presses++ }},
	{label: "Reset counter", run: func(s *Script, b *bridge.Bridge) { s.presses = 0 }},
	{label: "Open tall popup", run: func(s *Script, b *bridge.Bridge) { s.openTall(b) }},
	{label: "Close palette", run: func(s *Script, b *bridge.Bridge) {}},
	{label: "Quit", run: func(s *Script, b *bridge.Bridge) { s.done = true }},
}

// commandPalette is a filterable popup whose height follows the number of
// matching commands.
type commandPalette struct {
	id      string
	owner   *Script
	filter  []rune
	caret   int
	cursor  int
	matches []int
}

func newCommandPalette(owner *Script) *commandPalette {
	p := &commandPalette{owner: owner}
	p.refilter()
	return p
}

func (p *commandPalette) contentHeight() int {
	return len(p.matches) + paletteChrome
}

func (p *commandPalette) contentWidth(b *bridge.Bridge) int {
	w := b.DrawStringWidth(paletteTitle)
	for _, c := range commands {
		if cw := b.DrawStringWidth(c.label) + 4; cw > w {
			w = cw
		}
	}
	return w + 2
}

func (p *commandPalette) refilter() {
	query := strings.TrimSpace(string(p.filter))
	p.matches = p.matches[:0]
	if query == "" {
		for i := range commands {
			p.matches = append(p.matches, i)
		}
	} else {
		labels := make([]string, len(commands))
		for i, c := range commands {
			labels[i] = c.label
		}
		hit := map[int]bool{}
		for _, rank := range fuzzy.RankFindNormalizedFold(query, labels) {
			hit[rank.OriginalIndex] = true
		}
		for i := range commands {
			if hit[i] {
				p.matches = append(p.matches, i)
			}
		}
	}
	if p.cursor >= len(p.matches) {
		p.cursor = len(p.matches) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *commandPalette) handle(b *bridge.Bridge, batch []input.Event) {
	for _, evt := range batch {
		switch evt.Kind {
		case input.KindMouseMove:
			p.hover(b, evt.X, evt.Y)
		case input.KindKeyDown:
			if closed := p.key(b, evt.Code); closed {
				return
			}
		}
	}
	b.SetPopupContentHeight(p.id, p.contentHeight())
}

// key applies one key press and reports whether the palette closed.
func (p *commandPalette) key(b *bridge.Bridge, code string) bool {
	switch code {
	case "esc":
		b.ClosePopup()
		return true
	case "enter":
		if len(p.matches) == 0 {
			return false
		}
		cmd := commands[p.matches[p.cursor]]
		b.ClosePopup()
		cmd.run(p.owner, b)
		return true
	case "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down":
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
	case "left":
		if p.caret > 0 {
			p.caret--
		}
	case "right":
		if p.caret < len(p.filter) {
			p.caret++
		}
	case "backspace":
		if p.caret > 0 {
			p.filter = append(p.filter[:p.caret-1], p.filter[p.caret:]...)
			p.caret--
			p.refilter()
		}
	case "space":
		p.insert(' ')
	default:
		if utf8.RuneCountInString(code) == 1 {
			r, _ := utf8.DecodeRuneInString(code)
			p.insert(r)
		}
	}
	return false
}

func (p *commandPalette) insert(r rune) {
	p.filter = append(p.filter, 0)
	copy(p.filter[p.caret+1:], p.filter[p.caret:])
	p.filter[p.caret] = r
	p.caret++
	p.refilter()
}

// hover moves the selection under the pointer, or the caret when the pointer
// is over the filter text.
func (p *commandPalette) hover(b *bridge.Bridge, x, y int) {
	g, ok := b.PopupGeometry(p.id)
	if !ok {
		return
	}
	row := y - g.Y
	col := x - g.X - 1
	switch {
	case row == 1:
		promptW := b.DrawStringWidth(filterPrompt)
		p.caret = b.GetCursorIndexForOffset(escape(string(p.filter)), col-promptW)
	case row >= 2 && row-2 < len(p.matches):
		p.cursor = row - 2
	}
}

func (p *commandPalette) draw(b *bridge.Bridge) {
	g, ok := b.PopupGeometry(p.id)
	if !ok {
		return
	}
	b.FillRect(g.X, g.Y, g.Width, g.Height, popupFill)
	b.WithViewport(g.X+1, g.Y, g.Width-2, g.Height, func() {
		b.DrawString(0, 0, paletteTitle, textColor)
		b.DrawString(0, 1, filterPrompt+escape(string(p.filter)), textColor)
		caretX := b.DrawStringWidth(filterPrompt) + b.DrawStringWidth(escape(string(p.filter[:p.caret])))
		b.FillRect(caretX, 1, 1, 1, textColor.WithAlpha(0x60))
		if len(p.matches) == 0 {
			b.DrawString(0, 2, "^9no matches", textColor)
			return
		}
		for i, idx := range p.matches {
			prefix := "  "
			if i == p.cursor {
				prefix = "^4> ^7"
			}
			b.DrawString(0, 2+i, prefix+commands[idx].label, textColor)
		}
	})
}
