package heatmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-plotz/plotz/colorscheme"
)

func TestNewStamp(t *testing.T) {
	t.Run("SizeMismatch", func(t *testing.T) {
		_, err := NewStamp(3, 3, make([]float32, 8))
		require.Error(t, err)
	})
	t.Run("Copies", func(t *testing.T) {
		data := []float32{1}
		s, err := NewStamp(1, 1, data)
		require.NoError(t, err)
		data[0] = 0
		require.Equal(t, float32(1), s.buf[0])
	})
}

func TestNewRoundStamp(t *testing.T) {
	s := NewRoundStamp(4)
	require.Equal(t, uint32(9), s.Width())
	require.Equal(t, uint32(9), s.Height())

	// Center is full weight, corners fall outside the radius.
	require.Equal(t, float32(1), s.buf[4*9+4])
	require.Equal(t, float32(0), s.buf[0])
	// Axis falloff is linear: 1 - d/(r+1).
	require.InDelta(t, 0.2, s.buf[4*9], 1e-6)
	require.InDelta(t, 0.8, s.buf[4*9+3], 1e-6)
	// Matches the classic 9x9 default kernel values.
	require.InDelta(t, 0.1055728, s.buf[2], 1e-6)
	require.InDelta(t, 0.5527864, s.buf[2*9+3], 1e-6)
}

func TestHeatmap_AddPoint(t *testing.T) {
	t.Run("CenterHit", func(t *testing.T) {
		h := New(32, 32)
		h.AddPoint(16, 16)
		require.Equal(t, float32(1), h.MaxHeat())
		require.Equal(t, float32(1), h.buf[16*32+16])
	})
	t.Run("EdgeClipped", func(t *testing.T) {
		h := New(8, 8)
		h.AddPoint(0, 0)
		require.Equal(t, float32(1), h.buf[0])
	})
	t.Run("OutOfGrid", func(t *testing.T) {
		h := New(8, 8)
		h.AddPoint(8, 0)
		h.AddPoint(0, 100)
		require.Zero(t, h.MaxHeat())
	})
	t.Run("NegativeWeightIgnored", func(t *testing.T) {
		h := New(8, 8)
		h.AddWeightedPoint(4, 4, -1)
		require.Zero(t, h.MaxHeat())
	})
	t.Run("Accumulates", func(t *testing.T) {
		h := New(16, 16)
		h.AddWeightedPoint(8, 8, 2)
		h.AddWeightedPoint(8, 8, 3)
		require.InDelta(t, 5, h.MaxHeat(), 1e-6)
	})
	t.Run("SinglePixelStamp", func(t *testing.T) {
		s, err := NewStamp(1, 1, []float32{1})
		require.NoError(t, err)

		h := New(4, 4)
		h.AddPointStamp(2, 1, s)
		for i, v := range h.buf {
			if i == 1*4+2 {
				require.Equal(t, float32(1), v)
			} else {
				require.Zero(t, v, "cell %d", i)
			}
		}
	})
}

func TestHeatmap_Render(t *testing.T) {
	scheme, err := colorscheme.Make([]colorscheme.RGBA{colorscheme.Black, colorscheme.White}, 64)
	require.NoError(t, err)

	t.Run("Empty", func(t *testing.T) {
		h := New(2, 2)
		out := h.RenderScheme(scheme)
		require.Len(t, out, 2*2*4)
		require.Equal(t, colorscheme.Black, colorscheme.At(out, 0))
	})
	t.Run("HottestSaturates", func(t *testing.T) {
		s, err := NewStamp(1, 1, []float32{1})
		require.NoError(t, err)

		h := New(2, 1)
		h.AddWeightedPointStamp(0, 0, 4, s)
		out := h.RenderScheme(scheme)
		require.Equal(t, colorscheme.White, colorscheme.At(out, 0))
		require.Equal(t, colorscheme.Black, colorscheme.At(out, 1))
	})
	t.Run("ExplicitSaturation", func(t *testing.T) {
		s, err := NewStamp(1, 1, []float32{1})
		require.NoError(t, err)

		h := New(1, 1)
		h.AddWeightedPointStamp(0, 0, 1, s)
		out := h.RenderSaturated(scheme, 2)
		// Half intensity lands mid-table.
		mid := colorscheme.At(out, 0)
		require.InDelta(t, 127, float64(mid[0]), 6)
	})
	t.Run("RenderDefaultScheme", func(t *testing.T) {
		h := New(4, 4)
		h.AddPoint(2, 2)
		out := h.Render()
		require.Len(t, out, 4*4*4)
	})
}

func TestStampKernelSymmetry(t *testing.T) {
	s := NewRoundStamp(3)
	d := int(s.Width())
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			v := s.buf[y*d+x]
			require.InDelta(t, float64(s.buf[x*d+y]), float64(v), 1e-6)
			require.False(t, math.IsNaN(float64(v)))
		}
	}
}
