package png

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-plotz/plotz/internal/bitbuf"
)

func TestChunkType(t *testing.T) {
	require.Equal(t, "IHDR", chunkIHDR.String())
	require.Equal(t, "IDAT", chunkIDAT.String())
	require.Equal(t, "IEND", chunkIEND.String())
}

func TestIENDChunk(t *testing.T) {
	c := iendChunk()
	require.Empty(t, c.data)
	require.Equal(t, uint32(0xAE426082), c.crc)

	var b bitbuf.Buffer
	c.encode(&b)
	require.Equal(t, []byte{
		0, 0, 0, 0, // length
		'I', 'E', 'N', 'D',
		0xAE, 0x42, 0x60, 0x82,
	}, b.Buf)
}

func TestIHDRChunk(t *testing.T) {
	img, err := NewImage(1, 1, 4, []byte{255, 0, 0, 255})
	require.NoError(t, err)

	c := ihdrChunk(img)
	require.Len(t, c.data, 13)
	require.Equal(t, uint32(1), binary.BigEndian.Uint32(c.data[0:4]))
	require.Equal(t, uint32(1), binary.BigEndian.Uint32(c.data[4:8]))
	require.Equal(t, byte(BitDepth), c.data[8])
	require.Equal(t, byte(ColorTypeRGBA), c.data[9])
	require.Equal(t, byte(0), c.data[10], "compression method")
	require.Equal(t, byte(0), c.data[11], "filter method")
	require.Equal(t, byte(0), c.data[12], "interlace method")
}

func TestChunkEncodeLayout(t *testing.T) {
	c := newChunk(chunkIDAT, []byte{1, 2, 3})

	var b bitbuf.Buffer
	b.WriteBits(1, 1) // pending bits must not leak into the chunk
	c.encode(&b)

	buf := b.Buf[1:] // flushed bit byte
	require.Equal(t, uint32(3), binary.BigEndian.Uint32(buf[0:4]))
	require.Equal(t, "IDAT", string(buf[4:8]))
	require.Equal(t, []byte{1, 2, 3}, buf[8:11])
	require.Equal(t, c.crc, binary.BigEndian.Uint32(buf[11:15]))
}

func TestNewImage(t *testing.T) {
	t.Run("UnsupportedChannels", func(t *testing.T) {
		for _, ch := range []int{0, 1, 2, 5} {
			_, err := NewImage(1, 1, ch, nil)
			require.Error(t, err)
		}
	})
	t.Run("ZeroDimensions", func(t *testing.T) {
		// A zero-dimension header is rejected by compliant decoders, so it
		// must never reach the encoder.
		for _, wh := range [][2]uint32{{0, 0}, {0, 1}, {1, 0}} {
			_, err := NewImage(wh[0], wh[1], 3, nil)
			require.Error(t, err, "%dx%d", wh[0], wh[1])
		}
	})
	t.Run("SizeMismatch", func(t *testing.T) {
		_, err := NewImage(2, 2, 3, make([]byte, 11))
		require.Error(t, err)
	})
	t.Run("CopiesPixels", func(t *testing.T) {
		pix := []byte{1, 2, 3}
		img, err := NewImage(1, 1, 3, pix)
		require.NoError(t, err)
		pix[0] = 99
		require.Equal(t, byte(1), img.row(0)[0])
	})
	t.Run("ColorType", func(t *testing.T) {
		img, err := NewImage(1, 1, 3, make([]byte, 3))
		require.NoError(t, err)
		require.Equal(t, ColorTypeRGB, img.ColorType())
		require.Equal(t, 3, img.ColorType().Channels())
		require.Equal(t, "RGB", img.ColorType().String())
	})
}
