package flate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBestMatch(t *testing.T) {
	t.Run("RepeatedRun", func(t *testing.T) {
		data := bytes.Repeat([]byte{0xAA}, 10)
		dist, length, ok := bestMatch(data, 1)
		require.True(t, ok)
		require.Equal(t, 1, dist)
		require.GreaterOrEqual(t, length, minMatch)
	})
	t.Run("NoMatch", func(t *testing.T) {
		data := []byte{1, 2, 3, 4, 5, 6}
		_, _, ok := bestMatch(data, 3)
		require.False(t, ok)
	})
	t.Run("TooShortTail", func(t *testing.T) {
		data := []byte{7, 7, 7, 7, 7}
		_, _, ok := bestMatch(data, 3)
		require.True(t, ok)
		_, _, ok = bestMatch(data, 4)
		require.False(t, ok, "fewer than three bytes left")
	})
	t.Run("BelowMinLength", func(t *testing.T) {
		data := []byte{1, 2, 1, 2, 9, 9, 9}
		_, _, ok := bestMatch(data, 2)
		require.False(t, ok, "two-byte repeat must not match")
	})
	t.Run("EqualLengthPrefersFartherCandidate", func(t *testing.T) {
		// "abc" at 0 and at 4, searched again at 8: both candidates reach
		// length 3, the ascending scan keeps the first (distance 8).
		data := []byte("abc0abc1abc")
		dist, length, ok := bestMatch(data, 8)
		require.True(t, ok)
		require.Equal(t, 3, length)
		require.Equal(t, 8, dist)
	})
	t.Run("StrictlyLongerWins", func(t *testing.T) {
		// Length 3 at distance 8, length 4 at distance 4.
		data := []byte("abcXabcdabcd")
		dist, length, ok := bestMatch(data, 8)
		require.True(t, ok)
		require.Equal(t, 4, length)
		require.Equal(t, 4, dist)
	})
	t.Run("OverlappingRun", func(t *testing.T) {
		// A match may extend into its own output (RLE via distance 1).
		data := bytes.Repeat([]byte{0x42}, 300)
		dist, length, ok := bestMatch(data, 1)
		require.True(t, ok)
		require.Equal(t, 1, dist)
		require.Equal(t, maxMatch, length)
	})
}

func TestSymbolTables(t *testing.T) {
	t.Run("LengthBounds", func(t *testing.T) {
		sym, extra, nextra := lengthSymbol(3)
		require.Equal(t, 257, sym)
		require.Zero(t, extra)
		require.Zero(t, nextra)

		sym, extra, nextra = lengthSymbol(258)
		require.Equal(t, 285, sym)
		require.Zero(t, extra)
		require.Zero(t, nextra)

		sym, extra, nextra = lengthSymbol(12)
		require.Equal(t, 265, sym) // range base 11, one extra bit
		require.Equal(t, uint32(1), extra)
		require.Equal(t, uint8(1), nextra)
	})
	t.Run("DistanceBounds", func(t *testing.T) {
		sym, extra, nextra := distanceSymbol(1)
		require.Equal(t, 0, sym)
		require.Zero(t, extra)
		require.Zero(t, nextra)

		sym, extra, nextra = distanceSymbol(32768)
		require.Equal(t, 29, sym)
		require.Equal(t, uint32(32768-24577), extra)
		require.Equal(t, uint8(13), nextra)
	})
	t.Run("ReverseBits", func(t *testing.T) {
		require.Equal(t, uint32(0b011), reverseBits(0b110, 3))
		require.Equal(t, uint32(0b10000000), reverseBits(0b00000001, 8))
		require.Equal(t, uint32(0), reverseBits(0, 9))
	})
}
