package render

import (
	"strings"

	"github.com/atomicstack/scripthost/internal/markup"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r    rune
	fg   markup.Color
	bg   markup.Color
	cont bool // second column of a wide rune
}

// Canvas rasterises primitives onto a terminal cell grid. One logical pixel
// is one cell; anything outside the grid is clipped.
type Canvas struct {
	width  int
	height int
	bg     markup.Color
	cells  []cell
}

// NewCanvas allocates a width x height grid cleared to bg.
func NewCanvas(width, height int, bg markup.Color) *Canvas {
	c := &Canvas{bg: bg}
	c.Resize(width, height)
	return c
}

// Size returns the grid dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Resize reallocates the grid when the dimensions change and clears it.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width != c.width || height != c.height || c.cells == nil {
		c.width, c.height = width, height
		c.cells = make([]cell, width*height)
	}
	c.Clear()
}

// Clear resets every cell to a blank on the background color.
func (c *Canvas) Clear() {
	blank := cell{r: ' ', fg: markup.Palette[7], bg: c.bg}
	for i := range c.cells {
		c.cells[i] = blank
	}
}

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// FillRect paints the rect's background. Opaque fills erase text beneath;
// translucent fills tint it.
func (c *Canvas) FillRect(f FillRect) {
	if f.Color.A == 0 || f.W <= 0 || f.H <= 0 {
		return
	}
	x0, y0 := max(f.X, 0), max(f.Y, 0)
	x1, y1 := min(f.X+f.W, c.width), min(f.Y+f.H, c.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cl := c.at(x, y)
			if f.Color.A == 0xff {
				*cl = cell{r: ' ', fg: cl.fg, bg: f.Color}
				continue
			}
			cl.bg = blend(cl.bg, f.Color)
		}
	}
}

// DrawText writes the run's spans left to right starting at X, Y.
func (c *Canvas) DrawText(t TextRun) {
	if t.Y < 0 || t.Y >= c.height {
		return
	}
	x := t.X
	for _, span := range t.Spans {
		for _, r := range span.Text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if span.Color.A != 0 {
				c.putRune(x, t.Y, r, w, span.Color)
			}
			x += w
		}
	}
}

func (c *Canvas) putRune(x, y int, r rune, w int, col markup.Color) {
	head := c.at(x, y)
	if head == nil {
		return
	}
	if w == 2 && c.at(x+1, y) == nil {
		// a wide rune cut by the right edge renders as nothing
		return
	}
	if head.cont {
		if prev := c.at(x-1, y); prev != nil {
			prev.r = ' '
		}
	}
	if next := c.at(x+1, y); next != nil && next.cont && w == 1 {
		next.r = ' '
		next.cont = false
	}
	if w == 2 {
		if next := c.at(x+1, y); next != nil && !next.cont {
			if orphan := c.at(x+2, y); orphan != nil && orphan.cont {
				orphan.r = ' '
				orphan.cont = false
			}
		}
	}
	head.r = r
	head.fg = blend(head.bg, col)
	head.cont = false
	if w == 2 {
		tail := c.at(x+1, y)
		tail.cont = true
		tail.fg = head.fg
		tail.bg = head.bg
	}
}

// blend composites src over dst using src's alpha.
func blend(dst, src markup.Color) markup.Color {
	if src.A == 0xff {
		return src
	}
	t := float64(src.A) / 255
	return markup.FromColorful(dst.Colorful().BlendRgb(src.Colorful(), t), 0xff)
}

// Row returns the visible characters of row y without styling.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		cl := c.cells[y*c.width+x]
		if !cl.cont {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}

// CellColors returns the foreground and background colors at x, y.
func (c *Canvas) CellColors(x, y int) (fg, bg markup.Color, ok bool) {
	cl := c.at(x, y)
	if cl == nil {
		return markup.Color{}, markup.Color{}, false
	}
	return cl.fg, cl.bg, true
}

// Render serialises the grid into styled lines, grouping runs of cells that
// share colors into a single Lip Gloss style.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	styles := map[[2]markup.Color]lipgloss.Style{}
	for y := 0; y < c.height; y++ {
		var b strings.Builder
		var run strings.Builder
		var key [2]markup.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().
					Foreground(lipgloss.Color(key[0].Hex())).
					Background(lipgloss.Color(key[1].Hex()))
				styles[key] = st
			}
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.cont {
				continue
			}
			k := [2]markup.Color{cl.fg, cl.bg}
			if k != key {
				flush()
				key = k
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
