// Package checksum implements the two integrity checks of the PNG container:
// CRC-32 over chunk contents and Adler-32 over the zlib payload.
//
// Both are written out from first principles so the encoder stays
// self-contained; tests verify them against the standard library.
package checksum

// Reflected CRC-32 polynomial (ISO-3309).
const crcPoly = 0xEDB88320

// adlerMod is the largest prime smaller than 65536.
const adlerMod = 65521

var crcTable [256]uint32

func init() {
	for i := uint32(0); i < 256; i++ {
		c := i
		for j := 0; j < 8; j++ {
			if c&1 != 0 {
				c = crcPoly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		crcTable[i] = c
	}
}

// CRC32 returns the CRC-32/ISO-3309 checksum of data.
func CRC32(data []byte) uint32 {
	return CRC32Update(0xFFFFFFFF, data) ^ 0xFFFFFFFF
}

// CRC32Update folds data into a running pre-finalization CRC value.
// Start from 0xFFFFFFFF and xor the final result with 0xFFFFFFFF.
func CRC32Update(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc = crcTable[(crc^uint32(b))&0xFF] ^ (crc >> 8)
	}
	return crc
}

// Adler32 returns the Adler-32 checksum of data.
func Adler32(data []byte) uint32 {
	a, b := uint32(1), uint32(0)
	for _, v := range data {
		a = (a + uint32(v)) % adlerMod
		b = (b + a) % adlerMod
	}
	return b<<16 | a
}
