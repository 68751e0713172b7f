package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_WriteBits(t *testing.T) {
	t.Run("LSBFirst", func(t *testing.T) {
		var b Buffer
		b.WriteBits(0b1, 1)
		b.WriteBits(0b01, 2) // stream so far: 1, 1, 0
		b.WriteBits(0b10110, 5)
		require.Equal(t, []byte{0b10110_01_1}, b.Buf)
	})
	t.Run("CrossByte", func(t *testing.T) {
		var b Buffer
		b.WriteBits(0x1FF, 9)
		b.WriteBits(0x00, 7)
		require.Equal(t, []byte{0xFF, 0x01}, b.Buf)
	})
	t.Run("FlushPadsWithZeros", func(t *testing.T) {
		var b Buffer
		b.WriteBits(0b101, 3)
		b.FlushBits()
		require.Equal(t, []byte{0b00000101}, b.Buf)

		// Flushing an empty accumulator appends nothing.
		b.FlushBits()
		require.Equal(t, 1, b.Len())
	})
}

func TestBuffer_PutRaw(t *testing.T) {
	var b Buffer
	b.WriteBits(0b1, 1)
	b.PutRaw([]byte{0xAB, 0xCD})
	require.Equal(t, []byte{0b00000001, 0xAB, 0xCD}, b.Buf)
}

func TestBuffer_PutUInt32BE(t *testing.T) {
	var b Buffer
	b.PutUInt32BE(0xDEADBEEF)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, b.Buf)
}

func TestBuffer_Reset(t *testing.T) {
	b := New(16)
	b.WriteBits(0x7F, 7)
	b.Reset()
	require.Zero(t, b.Len())
	b.FlushBits()
	require.Zero(t, b.Len(), "reset must drop pending bits")
}

func TestBuffer_Growth(t *testing.T) {
	var b Buffer
	for i := 0; i < 10000; i++ {
		b.WriteBits(uint32(i)&0xFF, 8)
	}
	require.Equal(t, 10000, b.Len())
	for i := 0; i < 100; i++ {
		require.Equal(t, byte(i), b.Buf[i])
	}
}
