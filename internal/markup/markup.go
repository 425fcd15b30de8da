// Package markup parses the inline color grammar used by drawable strings.
//
// A caret introduces a directive:
//
//	^xRRGGBB  explicit color, ^X is accepted too
//	^0 .. ^9  palette color
//	^c        any other character: the caret is dropped and c is kept
//
// Directive colors take their alpha from the caller's default color.
// Parsing never fails. A trailing caret is dropped.
package markup

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Marker is the escape character that introduces a color directive.
const Marker = '^'

// ColorSpan is a run of visible text drawn in a single color.
type ColorSpan struct {
	Text  string
	Color Color
}

// token is either a literal slice of the source or a color switch.
type token struct {
	text     string
	color    Color
	setColor bool
}

// scan walks text once, left to right, handing each literal run or color
// directive to emit. Literal runs are substrings of text.
func scan(text string, def Color, emit func(token)) {
	start := 0
	i := 0
	for i < len(text) {
		if text[i] != Marker {
			i++
			continue
		}
		if start < i {
			emit(token{text: text[start:i]})
		}
		next := i + 1
		if next >= len(text) {
			start = len(text)
			i = len(text)
			break
		}
		switch c := text[next]; {
		case c >= '0' && c <= '9':
			col, _ := PaletteColor(c)
			emit(token{color: col.WithAlpha(def.A), setColor: true})
			i = next + 1
		case (c == 'x' || c == 'X') && next+7 <= len(text) && allHex(text[next+1:next+7]):
			col, _ := ParseHex(text[next+1 : next+7])
			emit(token{color: col.WithAlpha(def.A), setColor: true})
			i = next + 7
		default:
			_, size := utf8.DecodeRuneInString(text[next:])
			emit(token{text: text[next : next+size]})
			i = next + size
		}
		start = i
	}
	if start < len(text) {
		emit(token{text: text[start:]})
	}
}

// ComputeColorSpans splits text into colored runs. Text before the first
// directive uses def. Empty runs are skipped and neighbouring runs sharing a
// color are merged, so joining every span's Text yields Strip(text).
func ComputeColorSpans(text string, def Color) []ColorSpan {
	var spans []ColorSpan
	current := def
	var pending strings.Builder
	flush := func() {
		if pending.Len() == 0 {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].Color == current {
			spans[n-1].Text += pending.String()
		} else {
			spans = append(spans, ColorSpan{Text: pending.String(), Color: current})
		}
		pending.Reset()
	}
	scan(text, def, func(tok token) {
		if tok.setColor {
			if tok.color != current {
				flush()
				current = tok.color
			}
			return
		}
		pending.WriteString(tok.text)
	})
	flush()
	return spans
}

// Strip removes every directive, leaving the visible characters in order.
// Use it for measurement only; colors must come from the unstripped source.
func Strip(text string) string {
	if strings.IndexByte(text, Marker) < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	scan(text, Color{}, func(tok token) {
		b.WriteString(tok.text)
	})
	return b.String()
}

// Width returns the display width of text in cells, ignoring directives.
func Width(text string) int {
	return runewidth.StringWidth(Strip(text))
}

// CursorIndexForOffset maps a horizontal pixel offset within text to the
// caret position (in runes of the stripped text) closest to it.
func CursorIndexForOffset(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	plain := Strip(text)
	idx := 0
	x := 0
	for _, r := range plain {
		w := runewidth.RuneWidth(r)
		if offset*2 < x*2+w {
			return idx
		}
		x += w
		idx++
	}
	return idx
}
