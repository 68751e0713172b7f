// Package magnitude renders per-pixel scalar fields as colored plots.
//
// A Plot holds one float value per output pixel. Rendering shifts negative
// values up to zero, normalizes by the largest magnitude (or an explicit
// saturation) and maps each value through a colorscheme table to RGBA.
package magnitude

import (
	"math"

	"github.com/go-plotz/plotz/colorscheme"
)

// Plot is a width x height magnitude field.
type Plot struct {
	width  uint32
	height uint32
	maxMag float32
	minMag float32
	buf    []float32
}

// New returns an empty Plot.
func New(width, height uint32) *Plot {
	return &Plot{
		width:  width,
		height: height,
		maxMag: -math.MaxFloat32,
		minMag: math.MaxFloat32,
		buf:    make([]float32, int(width)*int(height)),
	}
}

// Width of the plot.
func (p *Plot) Width() uint32 { return p.width }

// Height of the plot.
func (p *Plot) Height() uint32 { return p.height }

// Max is the largest magnitude seen so far.
func (p *Plot) Max() float32 { return p.maxMag }

// Min is the smallest magnitude seen so far.
func (p *Plot) Min() float32 { return p.minMag }

// AddPoint sets the magnitude at (x, y). Out-of-plot points are ignored.
func (p *Plot) AddPoint(x, y uint32, value float32) {
	if x >= p.width || y >= p.height {
		return
	}
	p.buf[int(y)*int(p.width)+int(x)] = value
	if value > p.maxMag {
		p.maxMag = value
	}
	if value < p.minMag {
		p.minMag = value
	}
}

// shiftNonNegative lifts the whole buffer so the smallest value becomes
// zero. No-op when nothing is negative.
func (p *Plot) shiftNonNegative() {
	if len(p.buf) == 0 || p.minMag >= 0 {
		return
	}
	shift := -p.minMag
	for i := range p.buf {
		p.buf[i] += shift
	}
	p.maxMag += shift
	p.minMag = 0
}

// Render maps the field through the default color scheme.
func (p *Plot) Render() []byte {
	return p.RenderScheme(colorscheme.Default)
}

// RenderScheme maps the field through scheme, saturating at the largest
// magnitude.
func (p *Plot) RenderScheme(scheme []byte) []byte {
	p.shiftNonNegative()
	saturation := p.maxMag
	if saturation <= 0 {
		saturation = 1
	}
	return p.RenderSaturated(scheme, saturation)
}

// RenderSaturated maps the field through scheme with an explicit saturation
// ceiling, returning a width*height*4 RGBA buffer.
func (p *Plot) RenderSaturated(scheme []byte, saturation float32) []byte {
	return colorize(p.buf, scheme, saturation)
}

// Reset clears the field and the tracked extrema.
func (p *Plot) Reset() {
	for i := range p.buf {
		p.buf[i] = 0
	}
	p.maxMag = -math.MaxFloat32
	p.minMag = math.MaxFloat32
}

// colorize maps magnitudes through a scheme table. Values clamp to
// [0, saturation]; an empty scheme yields a transparent buffer.
func colorize(buf []float32, scheme []byte, saturation float32) []byte {
	out := make([]byte, len(buf)*4)
	ncolors := colorscheme.Colors(scheme)
	if ncolors == 0 {
		return out
	}
	for i, v := range buf {
		val := v / saturation
		if val < 0 {
			val = 0
		}
		if val > 1 {
			val = 1
		}
		ci := int(float32(ncolors-1)*val + 0.5)
		if ci > ncolors-1 {
			ci = ncolors - 1
		}
		copy(out[i*4:], scheme[ci*4:ci*4+4])
	}
	return out
}
