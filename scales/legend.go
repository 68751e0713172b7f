package scales

import (
	"github.com/go-faster/errors"

	"github.com/go-plotz/plotz/colorscheme"
)

// Legend margins around the color bar, in pixels.
const (
	legendMarginTop    = 20
	legendMarginBottom = 20
	legendMarginLeft   = 10
	legendMarginRight  = 10
)

// DrawLegend fills the area right of plotWidth with a white background, a
// vertical color bar running from the scheme's hottest color at the top to
// its coldest at the bottom, and Max/Min labels. buf is the combined
// imgWidth x imgHeight RGBA image whose left plotWidth columns hold the
// plot.
func DrawLegend(buf []byte, imgWidth, imgHeight, plotWidth uint32, scheme []byte) error {
	if len(buf) != int(imgWidth)*int(imgHeight)*4 {
		return errors.Errorf("buffer size %d, want %d (%dx%dx4)",
			len(buf), int(imgWidth)*int(imgHeight)*4, imgWidth, imgHeight)
	}
	if plotWidth >= imgWidth {
		return errors.Errorf("no legend area: plot width %d, image width %d", plotWidth, imgWidth)
	}
	ncolors := colorscheme.Colors(scheme)
	if ncolors == 0 {
		return errors.New("empty color scheme")
	}

	for y := 0; y < int(imgHeight); y++ {
		for x := int(plotWidth); x < int(imgWidth); x++ {
			idx := (y*int(imgWidth) + x) * 4
			buf[idx] = 255
			buf[idx+1] = 255
			buf[idx+2] = 255
			buf[idx+3] = 255
		}
	}

	barLeft := int(plotWidth) + legendMarginLeft
	barRight := int(imgWidth) - legendMarginRight
	barTop := legendMarginTop
	barBottom := int(imgHeight) - legendMarginBottom
	barHeight := barBottom - barTop
	if barRight <= barLeft || barHeight < 2 {
		return errors.Errorf("legend area %dx%d too small for the color bar",
			int(imgWidth)-int(plotWidth), imgHeight)
	}

	for y := 0; y < barHeight; y++ {
		value := float32(barHeight-y-1) / float32(barHeight-1)
		ci := int(value*float32(ncolors-1) + 0.5)
		if ci > ncolors-1 {
			ci = ncolors - 1
		}
		color := scheme[ci*4 : ci*4+4]

		for x := barLeft; x < barRight; x++ {
			idx := ((barTop+y)*int(imgWidth) + x) * 4
			copy(buf[idx:], color)
		}
	}

	legendWidth := int(imgWidth) - int(plotWidth)
	labelX := int(plotWidth) + legendWidth/2
	black := colorscheme.Black
	DrawText(buf, imgWidth, imgHeight, "Max", labelX-TextWidth("Max")/2, barTop-5, black)
	DrawText(buf, imgWidth, imgHeight, "Min", labelX-TextWidth("Min")/2, barBottom+textAscent+5, black)
	return nil
}
