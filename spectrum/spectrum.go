// Package spectrum renders magnitude bins as a vertical bar display, the
// kind an audio analyzer shows.
//
// Bars grow from the bottom of the image. When there are fewer bins than
// pixel columns each bin widens to a run of columns; with more bins than
// columns, bins aggregate per column by maximum. Optional peak markers hold
// the highest recent value per bin and decay over time.
package spectrum

import (
	"math"

	"github.com/go-plotz/plotz/colorscheme"
)

//go:generate go run github.com/dmarkham/enumer -type BarStyle -trimprefix Bar -output barstyle_enum.go

// BarStyle selects how a bar is filled.
type BarStyle byte

const (
	BarSolid BarStyle = iota
	BarGradient
	BarSegmented
)

// segmentCount is the number of LED-style segments for BarSegmented.
const segmentCount = 16

// Spectrum holds the current magnitude of each bin plus display settings.
// The exported fields may be adjusted between updates.
type Spectrum struct {
	numBins uint32
	width   uint32
	height  uint32
	maxMag  float32
	minMag  float32
	buf     []float32
	peaks   []float32

	// Style selects the bar fill.
	Style BarStyle
	// PeakDecay is subtracted from a bin's peak on every update that does
	// not raise it. Zero keeps peaks forever.
	PeakDecay float32
	// ShowPeaks draws a marker at each bin's held peak.
	ShowPeaks bool
	// BarWidthFactor in (0, 1] narrows bars to leave gaps between them.
	BarWidthFactor float32
	// Background fills the image before bars are drawn. The zero value is
	// fully transparent.
	Background colorscheme.RGBA
}

// New returns a Spectrum of numBins bins rendered onto a width x height
// image.
func New(numBins, width, height uint32) *Spectrum {
	return &Spectrum{
		numBins:        numBins,
		width:          width,
		height:         height,
		maxMag:         -math.MaxFloat32,
		minMag:         math.MaxFloat32,
		buf:            make([]float32, numBins),
		peaks:          make([]float32, numBins),
		Style:          BarSolid,
		BarWidthFactor: 0.8,
	}
}

// NumBins of the display.
func (s *Spectrum) NumBins() uint32 { return s.numBins }

// Width of the rendered image.
func (s *Spectrum) Width() uint32 { return s.width }

// Height of the rendered image.
func (s *Spectrum) Height() uint32 { return s.height }

// Max is the largest magnitude seen so far.
func (s *Spectrum) Max() float32 { return s.maxMag }

// Min is the smallest magnitude seen so far.
func (s *Spectrum) Min() float32 { return s.minMag }

// Update replaces bin magnitudes from the front of magnitudes. Extra values
// beyond numBins are ignored.
func (s *Spectrum) Update(magnitudes []float32) {
	n := int(s.numBins)
	if len(magnitudes) < n {
		n = len(magnitudes)
	}
	for i := 0; i < n; i++ {
		s.setBin(uint32(i), magnitudes[i])
	}
}

// UpdateBin replaces a single bin's magnitude. Out-of-range bins are
// ignored.
func (s *Spectrum) UpdateBin(bin uint32, value float32) {
	if bin >= s.numBins {
		return
	}
	s.setBin(bin, value)
}

func (s *Spectrum) setBin(bin uint32, value float32) {
	s.buf[bin] = value
	if value > s.maxMag {
		s.maxMag = value
	}
	if value < s.minMag {
		s.minMag = value
	}

	if value > s.peaks[bin] {
		s.peaks[bin] = value
	} else if s.PeakDecay > 0 {
		s.peaks[bin] -= s.PeakDecay
		if s.peaks[bin] < value {
			s.peaks[bin] = value
		}
	}
}

// shiftNonNegative lifts bins and peaks so the smallest magnitude becomes
// zero.
func (s *Spectrum) shiftNonNegative() {
	if len(s.buf) == 0 || s.minMag >= 0 {
		return
	}
	shift := -s.minMag
	for i := range s.buf {
		s.buf[i] += shift
	}
	for i := range s.peaks {
		s.peaks[i] += shift
	}
	s.maxMag += shift
	s.minMag = 0
}

// Render draws the display through the default color scheme.
func (s *Spectrum) Render() []byte {
	return s.RenderScheme(colorscheme.Default)
}

// RenderScheme draws the display through scheme, saturating at the largest
// magnitude.
func (s *Spectrum) RenderScheme(scheme []byte) []byte {
	s.shiftNonNegative()
	saturation := s.maxMag
	if saturation <= 0 {
		saturation = 1
	}
	return s.RenderSaturated(scheme, saturation)
}

// RenderSaturated draws the display through scheme with an explicit
// saturation ceiling, returning a width*height*4 RGBA buffer.
func (s *Spectrum) RenderSaturated(scheme []byte, saturation float32) []byte {
	total := int(s.width) * int(s.height)
	out := make([]byte, total*4)

	if s.Background != (colorscheme.RGBA{}) {
		for i := 0; i < total; i++ {
			copy(out[i*4:], s.Background[:])
		}
	}

	ncolors := colorscheme.Colors(scheme)
	if ncolors == 0 {
		return out
	}

	if s.numBins <= s.width {
		s.renderBinsToPixels(scheme, saturation, out, ncolors)
	} else {
		s.renderPixelsFromBins(scheme, saturation, out, ncolors)
	}
	return out
}

// Reset clears bins, peaks and extrema.
func (s *Spectrum) Reset() {
	for i := range s.buf {
		s.buf[i] = 0
	}
	for i := range s.peaks {
		s.peaks[i] = 0
	}
	s.maxMag = -math.MaxFloat32
	s.minMag = math.MaxFloat32
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func schemeIndex(ncolors int, pos float32) int {
	ci := int(float32(ncolors-1)*pos + 0.5)
	if ci > ncolors-1 {
		ci = ncolors - 1
	}
	return ci
}

// gradientIndices precomputes a per-row color index so gradient bars share
// one lookup table.
func gradientIndices(height uint32, ncolors int) []int {
	idx := make([]int, height)
	for y := uint32(0); y < height; y++ {
		idx[y] = schemeIndex(ncolors, float32(y)/float32(height))
	}
	return idx
}

// segmentIndices precomputes one color index per LED segment.
func segmentIndices(ncolors int) []int {
	idx := make([]int, segmentCount)
	for seg := 0; seg < segmentCount; seg++ {
		idx[seg] = schemeIndex(ncolors, float32(seg)/float32(segmentCount-1))
	}
	return idx
}

// drawBar fills one pixel column according to the configured style.
func (s *Spectrum) drawBar(out []byte, scheme []byte, x uint32, normalized float32,
	gradIdx, segIdx []int, solidIdx int) {
	barHeight := uint32(normalized * float32(s.height))

	switch s.Style {
	case BarSolid:
		for y := uint32(0); y < barHeight; y++ {
			posY := s.height - y - 1
			idx := int(posY)*int(s.width) + int(x)
			copy(out[idx*4:], scheme[solidIdx*4:solidIdx*4+4])
		}
	case BarGradient:
		for y := uint32(0); y < barHeight; y++ {
			posY := s.height - y - 1
			idx := int(posY)*int(s.width) + int(x)
			ci := gradIdx[y]
			copy(out[idx*4:], scheme[ci*4:ci*4+4])
		}
	case BarSegmented:
		segmentHeight := s.height / segmentCount
		segmentValue := float32(1) / segmentCount
		for seg := uint32(0); seg < segmentCount; seg++ {
			if normalized < float32(seg)*segmentValue {
				continue
			}
			startY := s.height - (seg+1)*segmentHeight
			endY := s.height - seg*segmentHeight
			ci := segIdx[seg]
			// Leave a one-pixel gap between segments.
			for y := startY + 1; y+1 < endY; y++ {
				idx := int(y)*int(s.width) + int(x)
				copy(out[idx*4:], scheme[ci*4:ci*4+4])
			}
		}
	}
}

// drawPeak marks the held peak for one pixel column with the scheme's
// hottest color.
func (s *Spectrum) drawPeak(out []byte, scheme []byte, x uint32, peakNormalized float32, ncolors int) {
	if !s.ShowPeaks || peakNormalized <= 0 {
		return
	}
	peakRow := uint32(peakNormalized * float32(s.height))
	if peakRow >= s.height {
		return
	}
	posY := s.height - peakRow - 1
	idx := int(posY)*int(s.width) + int(x)
	ci := ncolors - 1
	copy(out[idx*4:], scheme[ci*4:ci*4+4])
}

// renderBinsToPixels handles numBins <= width: each bin expands to a run of
// pixel columns.
func (s *Spectrum) renderBinsToPixels(scheme []byte, saturation float32, out []byte, ncolors int) {
	var gradIdx, segIdx []int
	if s.Style == BarGradient {
		gradIdx = gradientIndices(s.height, ncolors)
	}
	if s.Style == BarSegmented {
		segIdx = segmentIndices(ncolors)
	}

	binToPixel := float32(s.width) / float32(s.numBins)

	for bin := uint32(0); bin < s.numBins; bin++ {
		normalized := clamp01(s.buf[bin] / saturation)
		peakNormalized := clamp01(s.peaks[bin] / saturation)

		startX := uint32(float32(bin) * binToPixel)
		endX := uint32(float32(bin+1) * binToPixel)
		if startX == endX && endX < s.width {
			endX = startX + 1
		}

		if s.BarWidthFactor < 1 {
			fullWidth := endX - startX
			barWidth := uint32(float32(fullWidth) * s.BarWidthFactor)
			if barWidth == 0 && fullWidth > 0 {
				barWidth = 1
			}
			padding := (fullWidth - barWidth) / 2
			startX += padding
			endX = startX + barWidth
		}
		if endX > s.width {
			endX = s.width
		}

		solidIdx := 0
		if s.Style == BarSolid {
			solidIdx = schemeIndex(ncolors, normalized)
		}

		for x := startX; x < endX; x++ {
			s.drawBar(out, scheme, x, normalized, gradIdx, segIdx, solidIdx)
		}
		for x := startX; x < endX; x++ {
			s.drawPeak(out, scheme, x, peakNormalized, ncolors)
		}
	}
}

// renderPixelsFromBins handles numBins > width: each pixel column takes the
// maximum of the bins that map onto it.
func (s *Spectrum) renderPixelsFromBins(scheme []byte, saturation float32, out []byte, ncolors int) {
	var gradIdx, segIdx []int
	if s.Style == BarGradient {
		gradIdx = gradientIndices(s.height, ncolors)
	}
	if s.Style == BarSegmented {
		segIdx = segmentIndices(ncolors)
	}

	pixelValues := make([]float32, s.width)
	pixelPeaks := make([]float32, s.width)
	pixelToBin := float32(s.numBins) / float32(s.width)

	for x := uint32(0); x < s.width; x++ {
		startBin := uint32(float32(x) * pixelToBin)
		endBin := uint32(float32(x+1) * pixelToBin)
		if endBin > s.numBins {
			endBin = s.numBins
		}
		for bin := startBin; bin < endBin; bin++ {
			if s.buf[bin] > pixelValues[x] {
				pixelValues[x] = s.buf[bin]
			}
			if s.peaks[bin] > pixelPeaks[x] {
				pixelPeaks[x] = s.peaks[bin]
			}
		}
	}

	// Narrow bars by zeroing alternating columns past the width factor.
	if s.BarWidthFactor < 1 {
		for x := uint32(0); x < s.width; x++ {
			if float32(x%2)/2 > s.BarWidthFactor {
				pixelValues[x] = 0
				pixelPeaks[x] = 0
			}
		}
	}

	for x := uint32(0); x < s.width; x++ {
		normalized := clamp01(pixelValues[x] / saturation)
		peakNormalized := clamp01(pixelPeaks[x] / saturation)

		solidIdx := 0
		if s.Style == BarSolid {
			solidIdx = schemeIndex(ncolors, normalized)
		}

		s.drawBar(out, scheme, x, normalized, gradIdx, segIdx, solidIdx)
		s.drawPeak(out, scheme, x, peakNormalized, ncolors)
	}
}
