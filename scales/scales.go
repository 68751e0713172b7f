// Package scales draws axes, tick marks, grid lines and labels over a
// rendered RGBA plot buffer.
//
// The plot area is the image minus the configured margins. Labels use a
// built-in bitmap font, so no font files are needed.
package scales

import (
	"math"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/go-plotz/plotz/colorscheme"
)

// ScaleType selects how tick values are spaced along an axis.
type ScaleType byte

const (
	ScaleLinear ScaleType = iota
	ScaleLogarithmic
)

// Mapper converts an axis value before it is formatted, e.g. bin index to
// frequency.
type Mapper func(float64) float64

// Options configures axis rendering. DefaultOptions returns the usual
// starting point; the zero value hides everything.
type Options struct {
	// Color of axis and tick lines.
	Color colorscheme.RGBA
	// LineWidth of axis lines, in pixels.
	LineWidth int
	// DrawGridLines extends ticks across the plot area.
	DrawGridLines bool
	// GridLineAlpha is the grid line opacity in [0, 1].
	GridLineAlpha float32

	ShowXAxis bool
	ShowYAxis bool
	XScale    ScaleType
	YScale    ScaleType

	XTickCount int
	YTickCount int
	// TickLength in pixels, drawn outward from the axis.
	TickLength int

	// ShowLabels draws a numeric label at every tick.
	ShowLabels bool
	TextColor  colorscheme.RGBA
	// LabelPrecision is the number of decimals in tick labels.
	LabelPrecision int
	// ScientificNotation formats tick labels as exponents.
	ScientificNotation bool

	// Axis value ranges. A max at or below its min is pushed to min+1.
	XMin, XMax float64
	YMin, YMax float64

	XMapper Mapper
	YMapper Mapper

	XLabel         string
	YLabel         string
	ShowAxisLabels bool

	LeftMargin   int
	RightMargin  int
	BottomMargin int
	TopMargin    int
}

// DefaultOptions returns white linear axes with five ticks and labels on
// both axes over a 0..1 range.
func DefaultOptions() Options {
	return Options{
		Color:          colorscheme.White,
		LineWidth:      1,
		GridLineAlpha:  0.3,
		ShowXAxis:      true,
		ShowYAxis:      true,
		XTickCount:     5,
		YTickCount:     5,
		TickLength:     5,
		ShowLabels:     true,
		TextColor:      colorscheme.White,
		LabelPrecision: 2,
		XMax:           1,
		YMax:           1,
		XLabel:         "X",
		YLabel:         "Y",
		LeftMargin:     50,
		RightMargin:    20,
		BottomMargin:   30,
		TopMargin:      20,
	}
}

// Rect is a plot-area rectangle in pixel coordinates.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width of the rectangle.
func (r Rect) Width() int { return r.Right - r.Left }

// Height of the rectangle.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Scales renders axes onto width x height RGBA buffers.
type Scales struct {
	width  uint32
	height uint32
	area   Rect
}

// New returns a Scales for a width x height image.
func New(width, height uint32) *Scales {
	return &Scales{width: width, height: height}
}

// ContentArea is the plot rectangle inside the margins, valid after Render.
func (s *Scales) ContentArea() Rect { return s.area }

// Render draws the configured axes over buf, a width*height*4 RGBA buffer.
func (s *Scales) Render(buf []byte, opt Options) error {
	if len(buf) != int(s.width)*int(s.height)*4 {
		return errors.Errorf("buffer size %d, want %d (%dx%dx4)",
			len(buf), int(s.width)*int(s.height)*4, s.width, s.height)
	}
	opt = validate(opt)

	s.area = Rect{
		Left:   opt.LeftMargin,
		Top:    opt.TopMargin,
		Right:  int(s.width) - opt.RightMargin,
		Bottom: int(s.height) - opt.BottomMargin,
	}
	if s.area.Width() <= 0 || s.area.Height() <= 0 {
		return errors.Errorf("margins leave no plot area in %dx%d image", s.width, s.height)
	}

	if opt.DrawGridLines {
		s.drawGrid(buf, opt)
	}
	if opt.ShowXAxis {
		s.drawXAxis(buf, opt)
	}
	if opt.ShowYAxis {
		s.drawYAxis(buf, opt)
	}
	if opt.ShowAxisLabels {
		s.drawAxisLabels(buf, opt)
	}
	return nil
}

// validate fixes degenerate ranges and zeroed tuning fields.
func validate(opt Options) Options {
	if opt.XMax <= opt.XMin {
		opt.XMax = opt.XMin + 1
	}
	if opt.YMax <= opt.YMin {
		opt.YMax = opt.YMin + 1
	}
	if opt.XScale == ScaleLogarithmic && opt.XMin <= 0 {
		opt.XMin = 1
		if opt.XMax <= opt.XMin {
			opt.XMax = opt.XMin + 1
		}
	}
	if opt.YScale == ScaleLogarithmic && opt.YMin <= 0 {
		opt.YMin = 1
		if opt.YMax <= opt.YMin {
			opt.YMax = opt.YMin + 1
		}
	}
	if opt.LineWidth < 1 {
		opt.LineWidth = 1
	}
	if opt.XTickCount < 1 {
		opt.XTickCount = 1
	}
	if opt.YTickCount < 1 {
		opt.YTickCount = 1
	}
	return opt
}

// blend writes one pixel with simple alpha blending, forcing the result
// opaque.
func (s *Scales) blend(buf []byte, x, y int, c colorscheme.RGBA) {
	if x < 0 || x >= int(s.width) || y < 0 || y >= int(s.height) {
		return
	}
	idx := (y*int(s.width) + x) * 4
	alpha := float32(c[3]) / 255
	inv := 1 - alpha
	buf[idx] = byte(float32(buf[idx])*inv + float32(c[0])*alpha)
	buf[idx+1] = byte(float32(buf[idx+1])*inv + float32(c[1])*alpha)
	buf[idx+2] = byte(float32(buf[idx+2])*inv + float32(c[2])*alpha)
	buf[idx+3] = 255
}

func (s *Scales) drawHorizontalLine(buf []byte, y, x1, x2 int, c colorscheme.RGBA, lineWidth int) {
	for ly := 0; ly < lineWidth; ly++ {
		py := y - ly/2
		if ly%2 != 0 {
			py++
		}
		for x := x1; x <= x2; x++ {
			s.blend(buf, x, py, c)
		}
	}
}

func (s *Scales) drawVerticalLine(buf []byte, x, y1, y2 int, c colorscheme.RGBA, lineWidth int) {
	for lx := 0; lx < lineWidth; lx++ {
		px := x - lx/2
		if lx%2 != 0 {
			px++
		}
		for y := y1; y <= y2; y++ {
			s.blend(buf, px, y, c)
		}
	}
}

// tickValue computes the axis value at ratio along [min, max] under the
// scale type, then runs the mapper.
func tickValue(ratio, min, max float64, scale ScaleType, m Mapper) float64 {
	value := min + ratio*(max-min)
	if scale == ScaleLogarithmic {
		logMin := math.Log10(min)
		logMax := math.Log10(max)
		value = math.Pow(10, logMin+ratio*(logMax-logMin))
	}
	if m != nil {
		value = m(value)
	}
	return value
}

func formatLabel(v float64, opt Options) string {
	if opt.ScientificNotation {
		return strconv.FormatFloat(v, 'e', opt.LabelPrecision, 64)
	}
	return strconv.FormatFloat(v, 'f', opt.LabelPrecision, 64)
}

func (s *Scales) drawXAxis(buf []byte, opt Options) {
	yPos := s.area.Bottom
	s.drawHorizontalLine(buf, yPos, s.area.Left, s.area.Right, opt.Color, opt.LineWidth)

	for i := 0; i <= opt.XTickCount; i++ {
		ratio := float64(i) / float64(opt.XTickCount)
		xPos := s.area.Left + int(ratio*float64(s.area.Width()))

		s.drawVerticalLine(buf, xPos, yPos, yPos+opt.TickLength, opt.Color, opt.LineWidth)

		if opt.ShowLabels {
			label := formatLabel(tickValue(ratio, opt.XMin, opt.XMax, opt.XScale, opt.XMapper), opt)
			s.drawTextCentered(buf, label, xPos, yPos+opt.TickLength+10, opt.TextColor)
		}
	}
}

func (s *Scales) drawYAxis(buf []byte, opt Options) {
	xPos := s.area.Left
	s.drawVerticalLine(buf, xPos, s.area.Top, s.area.Bottom, opt.Color, opt.LineWidth)

	for i := 0; i <= opt.YTickCount; i++ {
		ratio := float64(i) / float64(opt.YTickCount)
		yPos := s.area.Bottom - int(ratio*float64(s.area.Height()))

		s.drawHorizontalLine(buf, yPos, xPos-opt.TickLength, xPos, opt.Color, opt.LineWidth)

		if opt.ShowLabels {
			label := formatLabel(tickValue(ratio, opt.YMin, opt.YMax, opt.YScale, opt.YMapper), opt)
			s.drawTextRightAligned(buf, label, xPos-opt.TickLength-5, yPos, opt.TextColor)
		}
	}
}

func (s *Scales) drawAxisLabels(buf []byte, opt Options) {
	if opt.XLabel != "" && opt.ShowXAxis {
		xPos := s.area.Left + s.area.Width()/2
		yPos := int(s.height) - opt.BottomMargin/2
		s.drawTextCentered(buf, opt.XLabel, xPos, yPos, opt.TextColor)
	}
	if opt.YLabel != "" && opt.ShowYAxis {
		// Stacked vertically to the left of the axis.
		xPos := opt.LeftMargin / 3
		yPos := s.area.Top + s.area.Height()/2 - len(opt.YLabel)*TextHeight/2
		s.drawTextVertical(buf, opt.YLabel, xPos, yPos, opt.TextColor)
	}
}

func (s *Scales) drawGrid(buf []byte, opt Options) {
	gridColor := opt.Color
	gridColor[3] = byte(opt.GridLineAlpha * 255)

	for i := 1; i < opt.XTickCount; i++ {
		ratio := float64(i) / float64(opt.XTickCount)
		xPos := s.area.Left + int(ratio*float64(s.area.Width()))
		s.drawVerticalLine(buf, xPos, s.area.Top, s.area.Bottom, gridColor, 1)
	}
	for i := 1; i < opt.YTickCount; i++ {
		ratio := float64(i) / float64(opt.YTickCount)
		yPos := s.area.Bottom - int(ratio*float64(s.area.Height()))
		s.drawHorizontalLine(buf, yPos, s.area.Left, s.area.Right, gridColor, 1)
	}
}
