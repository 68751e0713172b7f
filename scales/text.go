package scales

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-plotz/plotz/colorscheme"
)

// face is the built-in bitmap font used for all labels.
var face = basicfont.Face7x13

// TextHeight is the line height of the label font, in pixels.
const TextHeight = 13

// textAscent is the baseline offset from the top of a glyph row.
const textAscent = 11

// TextWidth returns the rendered advance of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawText renders s onto buf, a width*height*4 RGBA buffer, with the text
// baseline starting at (x, y). Glyphs outside the image are clipped.
func DrawText(buf []byte, width, height uint32, s string, x, y int, c colorscheme.RGBA) {
	d := font.Drawer{
		Dst: &image.RGBA{
			Pix:    buf,
			Stride: int(width) * 4,
			Rect:   image.Rect(0, 0, int(width), int(height)),
		},
		Src:  image.NewUniform(color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawTextCentered puts the center of s at x with the glyph row centered on
// y, clamped into the image.
func (s *Scales) drawTextCentered(buf []byte, text string, x, y int, c colorscheme.RGBA) {
	tw := TextWidth(text)
	tx := clampInt(x-tw/2, 0, int(s.width)-tw)
	ty := clampInt(y+textAscent/2, textAscent, int(s.height))
	DrawText(buf, s.width, s.height, text, tx, ty, c)
}

// drawTextRightAligned puts the right edge of s at x with the glyph row
// centered on y, clamped into the image.
func (s *Scales) drawTextRightAligned(buf []byte, text string, x, y int, c colorscheme.RGBA) {
	tw := TextWidth(text)
	tx := clampInt(x-tw, 0, int(s.width)-tw)
	ty := clampInt(y+textAscent/2, textAscent, int(s.height))
	DrawText(buf, s.width, s.height, text, tx, ty, c)
}

// drawTextVertical stacks the characters of s top to bottom at x.
func (s *Scales) drawTextVertical(buf []byte, text string, x, y int, c colorscheme.RGBA) {
	for i, r := range text {
		DrawText(buf, s.width, s.height, string(r), x, y+textAscent+i*(TextHeight+2), c)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
