package magnitude

import (
	"math"

	"github.com/go-faster/errors"

	"github.com/go-plotz/plotz/png"
)

// Grid is a square arrangement of Mapped plots rendered side by side with a
// shared color scale, so magnitudes are comparable across cells.
type Grid struct {
	gridSize    int
	inputWidth  uint32
	inputHeight uint32
	plotWidth   uint32
	plotHeight  uint32
	globalMax   float32
	globalMin   float32
	plots       []*Mapped
}

// NewGrid returns a gridSize x gridSize grid of empty Mapped plots.
func NewGrid(gridSize int, inputWidth, inputHeight, plotWidth, plotHeight uint32) (*Grid, error) {
	if gridSize < 1 {
		return nil, errors.Errorf("grid size %d, want >= 1", gridSize)
	}
	g := &Grid{
		gridSize:    gridSize,
		inputWidth:  inputWidth,
		inputHeight: inputHeight,
		plotWidth:   plotWidth,
		plotHeight:  plotHeight,
		globalMax:   -math.MaxFloat32,
		globalMin:   math.MaxFloat32,
		plots:       make([]*Mapped, gridSize*gridSize),
	}
	for i := range g.plots {
		g.plots[i] = NewMapped(inputWidth, inputHeight, plotWidth, plotHeight)
	}
	return g, nil
}

// Size is the grid dimension (cells per side).
func (g *Grid) Size() int { return g.gridSize }

// Plot returns the cell at (row, col).
func (g *Grid) Plot(row, col int) (*Mapped, error) {
	if row < 0 || row >= g.gridSize || col < 0 || col >= g.gridSize {
		return nil, errors.Errorf("cell (%d,%d) outside %dx%d grid", row, col, g.gridSize, g.gridSize)
	}
	return g.plots[row*g.gridSize+col], nil
}

// SetPlot replaces the cell at (row, col) and refreshes the shared extrema.
func (g *Grid) SetPlot(row, col int, plot *Mapped) error {
	if row < 0 || row >= g.gridSize || col < 0 || col >= g.gridSize {
		return errors.Errorf("cell (%d,%d) outside %dx%d grid", row, col, g.gridSize, g.gridSize)
	}
	g.plots[row*g.gridSize+col] = plot
	g.updateGlobalExtrema()
	return nil
}

// AddPoint accumulates value in the cell at (row, col).
func (g *Grid) AddPoint(row, col int, inputX, inputY uint32, value float32) error {
	if row < 0 || row >= g.gridSize || col < 0 || col >= g.gridSize {
		return errors.Errorf("cell (%d,%d) outside %dx%d grid", row, col, g.gridSize, g.gridSize)
	}
	plot := g.plots[row*g.gridSize+col]
	plot.AddPoint(inputX, inputY, value)

	if plot.maxMag > g.globalMax {
		g.globalMax = plot.maxMag
	}
	if plot.minMag < g.globalMin {
		g.globalMin = plot.minMag
	}
	return nil
}

func (g *Grid) updateGlobalExtrema() {
	g.globalMax = -math.MaxFloat32
	g.globalMin = math.MaxFloat32
	for _, plot := range g.plots {
		if plot.maxMag > g.globalMax {
			g.globalMax = plot.maxMag
		}
		if plot.minMag < g.globalMin {
			g.globalMin = plot.minMag
		}
	}
}

// shiftAllNonNegative lifts every cell by the shared minimum so the grid
// keeps a single zero point.
func (g *Grid) shiftAllNonNegative() {
	if g.globalMin >= 0 {
		return
	}
	shift := -g.globalMin
	for _, plot := range g.plots {
		for i := range plot.buf {
			plot.buf[i] += shift
		}
		plot.maxMag += shift
		plot.minMag = 0
	}
	g.globalMax += shift
	g.globalMin = 0
}

// RenderScheme renders all cells with the shared saturation into one
// combined (plotWidth*gridSize) x (plotHeight*gridSize) RGBA buffer.
func (g *Grid) RenderScheme(scheme []byte) []byte {
	g.updateGlobalExtrema()
	g.shiftAllNonNegative()

	totalWidth := int(g.plotWidth) * g.gridSize
	totalHeight := int(g.plotHeight) * g.gridSize
	combined := make([]byte, totalWidth*totalHeight*4)

	saturation := g.globalMax
	if saturation <= 0 {
		saturation = 1
	}

	for row := 0; row < g.gridSize; row++ {
		for col := 0; col < g.gridSize; col++ {
			cell := g.plots[row*g.gridSize+col].RenderSaturated(scheme, saturation)

			startX := col * int(g.plotWidth)
			startY := row * int(g.plotHeight)
			for y := 0; y < int(g.plotHeight); y++ {
				src := cell[y*int(g.plotWidth)*4 : (y+1)*int(g.plotWidth)*4]
				dst := ((startY+y)*totalWidth + startX) * 4
				copy(combined[dst:], src)
			}
		}
	}
	return combined
}

// WritePNG renders the grid through scheme and encodes it to path.
func (g *Grid) WritePNG(path string, scheme []byte) error {
	buf := g.RenderScheme(scheme)
	totalWidth := uint32(int(g.plotWidth) * g.gridSize)
	totalHeight := uint32(int(g.plotHeight) * g.gridSize)

	img, err := png.NewImage(totalWidth, totalHeight, 4, buf)
	if err != nil {
		return errors.Wrap(err, "image")
	}
	return png.EncodeFile(path, img)
}

// Reset clears every cell and the shared extrema.
func (g *Grid) Reset() {
	for _, plot := range g.plots {
		plot.Reset()
	}
	g.globalMax = -math.MaxFloat32
	g.globalMin = math.MaxFloat32
}
