package magnitude

import (
	"math"

	"github.com/go-plotz/plotz/colorscheme"
)

// Mapped accumulates magnitudes over an input coordinate grid that is
// scaled onto a larger (or smaller) output image. Each input cell covers a
// block of output pixels; repeated points accumulate instead of overwrite.
type Mapped struct {
	inputWidth  uint32
	inputHeight uint32
	imageWidth  uint32
	imageHeight uint32
	maxMag      float32
	minMag      float32
	buf         []float32
}

// NewMapped returns an empty Mapped plot translating inputWidth x
// inputHeight coordinates onto an imageWidth x imageHeight buffer.
func NewMapped(inputWidth, inputHeight, imageWidth, imageHeight uint32) *Mapped {
	return &Mapped{
		inputWidth:  inputWidth,
		inputHeight: inputHeight,
		imageWidth:  imageWidth,
		imageHeight: imageHeight,
		maxMag:      -math.MaxFloat32,
		minMag:      math.MaxFloat32,
		buf:         make([]float32, int(imageWidth)*int(imageHeight)),
	}
}

// ImageWidth of the output buffer.
func (m *Mapped) ImageWidth() uint32 { return m.imageWidth }

// ImageHeight of the output buffer.
func (m *Mapped) ImageHeight() uint32 { return m.imageHeight }

// Max is the largest accumulated magnitude.
func (m *Mapped) Max() float32 { return m.maxMag }

// Min is the smallest accumulated magnitude.
func (m *Mapped) Min() float32 { return m.minMag }

// MapCoordinates translates an input coordinate to the output pixel it
// lands on. Reports false when the input grid is degenerate.
func (m *Mapped) MapCoordinates(inputX, inputY uint32) (imageX, imageY uint32, ok bool) {
	if m.inputWidth == 0 || m.inputHeight == 0 {
		return 0, 0, false
	}

	scaleX := float32(m.imageWidth) / float32(m.inputWidth)
	scaleY := float32(m.imageHeight) / float32(m.inputHeight)

	imageX = uint32(float32(inputX) * scaleX)
	imageY = uint32(float32(inputY) * scaleY)

	if imageX >= m.imageWidth {
		imageX = m.imageWidth - 1
	}
	if imageY >= m.imageHeight {
		imageY = m.imageHeight - 1
	}
	return imageX, imageY, true
}

// AddPoint accumulates value over the block of output pixels covered by the
// input cell (inputX, inputY).
func (m *Mapped) AddPoint(inputX, inputY uint32, value float32) {
	if m.inputWidth == 0 || m.inputHeight == 0 {
		return
	}

	scaleX := float32(m.imageWidth) / float32(m.inputWidth)
	scaleY := float32(m.imageHeight) / float32(m.inputHeight)

	startX := uint32(float32(inputX) * scaleX)
	startY := uint32(float32(inputY) * scaleY)
	endX := uint32(float32(inputX+1) * scaleX)
	endY := uint32(float32(inputY+1) * scaleY)

	if endX > m.imageWidth {
		endX = m.imageWidth
	}
	if endY > m.imageHeight {
		endY = m.imageHeight
	}

	for imgY := startY; imgY < endY; imgY++ {
		for imgX := startX; imgX < endX; imgX++ {
			idx := int(imgY)*int(m.imageWidth) + int(imgX)
			m.buf[idx] += value
			if m.buf[idx] > m.maxMag {
				m.maxMag = m.buf[idx]
			}
			if m.buf[idx] < m.minMag {
				m.minMag = m.buf[idx]
			}
		}
	}
}

func (m *Mapped) shiftNonNegative() {
	if len(m.buf) == 0 || m.minMag >= 0 {
		return
	}
	shift := -m.minMag
	for i := range m.buf {
		m.buf[i] += shift
	}
	m.maxMag += shift
	m.minMag = 0
}

// Render maps the field through the default color scheme.
func (m *Mapped) Render() []byte {
	return m.RenderScheme(colorscheme.Default)
}

// RenderScheme maps the field through scheme, saturating at the largest
// magnitude.
func (m *Mapped) RenderScheme(scheme []byte) []byte {
	m.shiftNonNegative()
	saturation := m.maxMag
	if saturation <= 0 {
		saturation = 1
	}
	return m.RenderSaturated(scheme, saturation)
}

// RenderSaturated maps the field through scheme with an explicit saturation
// ceiling, returning an imageWidth*imageHeight*4 RGBA buffer.
func (m *Mapped) RenderSaturated(scheme []byte, saturation float32) []byte {
	return colorize(m.buf, scheme, saturation)
}

// Reset clears the field and the tracked extrema.
func (m *Mapped) Reset() {
	for i := range m.buf {
		m.buf[i] = 0
	}
	m.maxMag = -math.MaxFloat32
	m.minMag = math.MaxFloat32
}
