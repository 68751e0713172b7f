package flate

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	kflate "github.com/klauspost/compress/flate"
	kzlib "github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

func inflate(t *testing.T, stream []byte) []byte {
	t.Helper()

	r, err := kzlib.NewReader(bytes.NewReader(stream))
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return out
}

func TestWriter_Compress(t *testing.T) {
	w := NewWriter()

	t.Run("Empty", func(t *testing.T) {
		require.NoError(t, w.Compress(nil))
		require.Empty(t, inflate(t, w.Data))
	})
	t.Run("Literals", func(t *testing.T) {
		data := []byte("no repeats here!")
		require.NoError(t, w.Compress(data))
		require.Equal(t, data, inflate(t, w.Data))
	})
	t.Run("HighLiterals", func(t *testing.T) {
		// Symbols 144-255 take the 9-bit codes.
		data := []byte{0x90, 0xA0, 0xFF, 0xFE, 0x91, 0xCC}
		require.NoError(t, w.Compress(data))
		require.Equal(t, data, inflate(t, w.Data))
	})
	t.Run("Run", func(t *testing.T) {
		data := bytes.Repeat([]byte{7}, 1000)
		require.NoError(t, w.Compress(data))
		require.Equal(t, data, inflate(t, w.Data))
		require.Less(t, len(w.Data), 64, "a run must compress")
	})
	t.Run("Random", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for _, n := range []int{1, 2, 255, 4096, 8192} {
			data := make([]byte, n)
			_, err := r.Read(data)
			require.NoError(t, err)
			require.NoError(t, w.Compress(data))
			require.Equal(t, data, inflate(t, w.Data))
		}
	})
	t.Run("FarBackReference", func(t *testing.T) {
		// Repeat separated by more than the window, forcing the search to
		// clamp at the window boundary.
		data := make([]byte, windowSize+100)
		copy(data, "marker")
		copy(data[windowSize+50:], "marker")
		require.NoError(t, w.Compress(data))
		require.Equal(t, data, inflate(t, w.Data))
	})
}

func TestWriter_Header(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Compress([]byte("x")))

	require.Equal(t, byte(0x78), w.Data[0], "method 8, window 7")
	pair := uint16(w.Data[0])<<8 | uint16(w.Data[1])
	require.Zero(t, pair%31, "header pair must be a multiple of 31")
	require.Zero(t, w.Data[1]&0x20, "no preset dictionary")
}

func TestWriter_BlockHeader(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Compress(nil))

	// First deflate byte: BFINAL=1, BTYPE=01, LSB-first.
	require.Equal(t, byte(1), w.Data[2]&1)
	require.Equal(t, byte(1), w.Data[2]>>1&3)
}

func TestWriter_RawDeflate(t *testing.T) {
	// Strip the zlib frame and decode the inner stream alone.
	w := NewWriter()
	data := []byte("abcabcabcabc, and then some literal tail")
	require.NoError(t, w.Compress(data))

	raw := w.Data[2 : len(w.Data)-4]
	r := kflate.NewReader(bytes.NewReader(raw))
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Equal(t, data, out)
}
