package magnitude

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// twoColors is a minimal scheme: index 0 black, index 1 white.
var twoColors = []byte{
	0, 0, 0, 255,
	255, 255, 255, 255,
}

func TestPlot_AddPoint(t *testing.T) {
	p := New(3, 2)
	p.AddPoint(0, 0, 2.5)
	p.AddPoint(2, 1, -1.5)
	require.Equal(t, float32(2.5), p.Max())
	require.Equal(t, float32(-1.5), p.Min())

	// Outside the plot: ignored, extrema untouched.
	p.AddPoint(3, 0, 100)
	p.AddPoint(0, 2, -100)
	require.Equal(t, float32(2.5), p.Max())
	require.Equal(t, float32(-1.5), p.Min())
}

func TestPlot_RenderScheme(t *testing.T) {
	p := New(2, 1)
	p.AddPoint(0, 0, 0)
	p.AddPoint(1, 0, 1)

	out := p.RenderScheme(twoColors)
	require.Len(t, out, 2*4)
	require.Equal(t, []byte{0, 0, 0, 255}, out[0:4])
	require.Equal(t, []byte{255, 255, 255, 255}, out[4:8])
}

func TestPlot_RenderShiftsNegatives(t *testing.T) {
	p := New(2, 1)
	p.AddPoint(0, 0, -1)
	p.AddPoint(1, 0, 1)

	// Shifted to [0, 2], saturated at 2: the low end maps to the first
	// color, the high end to the last.
	out := p.RenderScheme(twoColors)
	require.Equal(t, []byte{0, 0, 0, 255}, out[0:4])
	require.Equal(t, []byte{255, 255, 255, 255}, out[4:8])
	require.Equal(t, float32(0), p.Min())
	require.Equal(t, float32(2), p.Max())
}

func TestPlot_RenderSaturated(t *testing.T) {
	p := New(2, 1)
	p.AddPoint(0, 0, 5) // clamps to the last color
	p.AddPoint(1, 0, 0.2)

	out := p.RenderSaturated(twoColors, 1)
	require.Equal(t, []byte{255, 255, 255, 255}, out[0:4])
	require.Equal(t, []byte{0, 0, 0, 255}, out[4:8])
}

func TestPlot_RenderEmptyScheme(t *testing.T) {
	p := New(2, 2)
	p.AddPoint(0, 0, 1)
	out := p.RenderSaturated(nil, 1)
	require.Equal(t, make([]byte, 2*2*4), out)
}

func TestPlot_Reset(t *testing.T) {
	p := New(2, 2)
	p.AddPoint(1, 1, 3)
	p.Reset()

	require.Less(t, p.Max(), float32(0))
	require.Greater(t, p.Min(), float32(0))
	out := p.RenderSaturated(twoColors, 1)
	for i := 0; i < len(out); i += 4 {
		require.Equal(t, []byte{0, 0, 0, 255}, out[i:i+4])
	}
}
