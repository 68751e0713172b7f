// Package heatmap accumulates point intensities into a float grid and
// renders it through a color scheme.
//
// Points are splatted with a stamp, a small weight kernel clipped at the
// grid edges. Rendering normalizes by the hottest cell (or an explicit
// saturation) and looks colors up in a colorscheme table.
package heatmap

import (
	"math"

	"github.com/go-faster/errors"

	"github.com/go-plotz/plotz/colorscheme"
)

// Stamp is an immutable weight kernel.
type Stamp struct {
	w, h uint32
	buf  []float32
}

// NewStamp wraps an explicit kernel. data must hold w*h weights.
func NewStamp(w, h uint32, data []float32) (*Stamp, error) {
	if len(data) != int(w)*int(h) {
		return nil, errors.Errorf("stamp buffer size %d, want %d", len(data), int(w)*int(h))
	}
	buf := make([]float32, len(data))
	copy(buf, data)
	return &Stamp{w: w, h: h, buf: buf}, nil
}

// NewRoundStamp builds a (2r+1)-square kernel falling off linearly with
// distance from the center.
func NewRoundStamp(radius uint32) *Stamp {
	d := 2*radius + 1
	s := &Stamp{w: d, h: d, buf: make([]float32, d*d)}
	for y := uint32(0); y < d; y++ {
		for x := uint32(0); x < d; x++ {
			dx := float64(x) - float64(radius)
			dy := float64(y) - float64(radius)
			dist := math.Sqrt(dx*dx+dy*dy) / float64(radius+1)
			if dist > 1 {
				dist = 1
			}
			s.buf[y*d+x] = float32(1 - dist)
		}
	}
	return s
}

// Width of the kernel.
func (s *Stamp) Width() uint32 { return s.w }

// Height of the kernel.
func (s *Stamp) Height() uint32 { return s.h }

// defaultStamp is the 9x9 kernel used when no stamp is given.
var defaultStamp = NewRoundStamp(4)

// Heatmap is a width x height accumulation grid.
type Heatmap struct {
	width   uint32
	height  uint32
	maxHeat float32
	buf     []float32
}

// New returns an empty Heatmap.
func New(width, height uint32) *Heatmap {
	return &Heatmap{
		width:  width,
		height: height,
		buf:    make([]float32, int(width)*int(height)),
	}
}

// Width of the grid.
func (h *Heatmap) Width() uint32 { return h.width }

// Height of the grid.
func (h *Heatmap) Height() uint32 { return h.height }

// MaxHeat is the hottest accumulated cell value.
func (h *Heatmap) MaxHeat() float32 { return h.maxHeat }

// AddPoint splats the default stamp at (x, y). Out-of-grid points are
// ignored.
func (h *Heatmap) AddPoint(x, y uint32) {
	h.AddWeightedPointStamp(x, y, 1, defaultStamp)
}

// AddPointStamp splats stamp at (x, y).
func (h *Heatmap) AddPointStamp(x, y uint32, stamp *Stamp) {
	h.AddWeightedPointStamp(x, y, 1, stamp)
}

// AddWeightedPoint splats the default stamp scaled by weight. Negative
// weights are ignored.
func (h *Heatmap) AddWeightedPoint(x, y uint32, weight float32) {
	h.AddWeightedPointStamp(x, y, weight, defaultStamp)
}

// AddWeightedPointStamp splats stamp scaled by weight at (x, y), clipping
// the kernel at the grid edges.
func (h *Heatmap) AddWeightedPointStamp(x, y uint32, weight float32, stamp *Stamp) {
	if x >= h.width || y >= h.height || weight < 0 {
		return
	}

	sw, sh := stamp.w, stamp.h

	x0 := uint32(0)
	if x < sw/2 {
		x0 = sw/2 - x
	}
	y0 := uint32(0)
	if y < sh/2 {
		y0 = sh/2 - y
	}
	x1 := sw
	if x+sw/2 >= h.width {
		x1 = sw/2 + (h.width - x)
	}
	y1 := sh
	if y+sh/2 >= h.height {
		y1 = sh/2 + (h.height - y)
	}

	for iy := y0; iy < y1; iy++ {
		gy := y + iy - sh/2
		gi := gy*h.width + x + x0 - sw/2
		si := iy*sw + x0
		for ix := x0; ix < x1; ix, gi, si = ix+1, gi+1, si+1 {
			h.buf[gi] += stamp.buf[si] * weight
			if h.buf[gi] > h.maxHeat {
				h.maxHeat = h.buf[gi]
			}
		}
	}
}

// Render maps the grid through the default color scheme, saturating at the
// hottest cell.
func (h *Heatmap) Render() []byte {
	return h.RenderScheme(colorscheme.Default)
}

// RenderScheme maps the grid through scheme, saturating at the hottest cell.
func (h *Heatmap) RenderScheme(scheme []byte) []byte {
	saturation := h.maxHeat
	if saturation <= 0 {
		saturation = 1
	}
	return h.RenderSaturated(scheme, saturation)
}

// RenderSaturated maps the grid through scheme with an explicit saturation
// ceiling, returning a width*height*4 RGBA buffer.
func (h *Heatmap) RenderSaturated(scheme []byte, saturation float32) []byte {
	total := int(h.width) * int(h.height)
	out := make([]byte, total*4)
	ncolors := colorscheme.Colors(scheme)

	for i := 0; i < total; i++ {
		val := h.buf[i] / saturation
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
