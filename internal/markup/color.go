package markup

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Hex renders the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colorful converts to a go-colorful value for blending.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// FromColorful converts back from go-colorful, clamping out-of-gamut values.
func FromColorful(cc colorful.Color, alpha uint8) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

// Palette holds the ten colors selected by ^0 through ^9. Directives take
// the RGB from here and the alpha from the caller's default color.
var Palette = [10]Color{
	RGB(0x00, 0x00, 0x00), // 0 black
	RGB(0xff, 0x00, 0x00), // 1 red
	RGB(0x00, 0xff, 0x00), // 2 green
	RGB(0x00, 0x00, 0xff), // 3 blue
	RGB(0xff, 0xff, 0x00), // 4 yellow
	RGB(0xff, 0x00, 0xff), // 5 magenta
	RGB(0x00, 0xff, 0xff), // 6 cyan
	RGB(0xff, 0xff, 0xff), // 7 white
	RGB(0xbf, 0xbf, 0xbf), // 8 light grey
	RGB(0x4c, 0x4c, 0x4c), // 9 dark grey
}

// PaletteColor returns the palette entry for an ASCII digit.
func PaletteColor(digit byte) (Color, bool) {
	if digit < '0' || digit > '9' {
		return Color{}, false
	}
	return Palette[digit-'0'], true
}

// ParseHex parses a six-digit rrggbb string (no leading #).
func ParseHex(s string) (Color, bool) {
	if len(s) != 6 || !allHex(s) {
		return Color{}, false
	}
	cc, err := colorful.Hex("#" + s)
	if err != nil {
		return Color{}, false
	}
	return FromColorful(cc, 0xff), true
}

func allHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHex(s[i]) {
			return false
		}
	}
	return true
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
