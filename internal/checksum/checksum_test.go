package checksum

import (
	"hash/adler32"
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRC32(t *testing.T) {
	t.Run("IEND", func(t *testing.T) {
		// CRC over the terminator chunk tag with empty payload.
		require.Equal(t, uint32(0xAE426082), CRC32([]byte("IEND")))
	})
	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, uint32(0), CRC32(nil))
	})
	t.Run("Reference", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))
		for _, n := range []int{1, 2, 16, 255, 4096} {
			buf := make([]byte, n)
			_, err := r.Read(buf)
			require.NoError(t, err)
			require.Equal(t, crc32.ChecksumIEEE(buf), CRC32(buf))
		}
	})
	t.Run("Update", func(t *testing.T) {
		data := []byte("IHDR and some payload bytes")
		crc := CRC32Update(0xFFFFFFFF, data[:4])
		crc = CRC32Update(crc, data[4:])
		require.Equal(t, CRC32(data), crc^0xFFFFFFFF)
	})
}

func TestAdler32(t *testing.T) {
	t.Run("Wikipedia", func(t *testing.T) {
		require.Equal(t, uint32(0x11E60398), Adler32([]byte("Wikipedia")))
	})
	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, uint32(1), Adler32(nil))
	})
	t.Run("Reference", func(t *testing.T) {
		r := rand.New(rand.NewSource(2))
		for _, n := range []int{1, 3, 64, 1000, 70000} {
			buf := make([]byte, n)
			_, err := r.Read(buf)
			require.NoError(t, err)
			require.Equal(t, adler32.Checksum(buf), Adler32(buf))
		}
	})
}
