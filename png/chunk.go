package png

import (
	"github.com/go-plotz/plotz/internal/bitbuf"
	"github.com/go-plotz/plotz/internal/checksum"
)

// chunkType is a 4-byte PNG chunk tag.
type chunkType uint32

const (
	chunkIHDR chunkType = 0x49484452 // "IHDR"
	chunkIDAT chunkType = 0x49444154 // "IDAT"
	chunkIEND chunkType = 0x49454E44 // "IEND"
)

func (t chunkType) tag() [4]byte {
	return [4]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
}

func (t chunkType) String() string {
	tag := t.tag()
	return string(tag[:])
}

// chunk is a write-once container record. CRC covers tag and payload and is
// fixed at construction.
type chunk struct {
	typ  chunkType
	data []byte
	crc  uint32
}

func newChunk(typ chunkType, data []byte) chunk {
	tag := typ.tag()
	crc := checksum.CRC32Update(0xFFFFFFFF, tag[:])
	crc = checksum.CRC32Update(crc, data)
	return chunk{typ: typ, data: data, crc: crc ^ 0xFFFFFFFF}
}

// encode appends the chunk wire form: BE32 length, tag, payload, BE32 CRC.
func (c chunk) encode(b *bitbuf.Buffer) {
	tag := c.typ.tag()
	b.PutUInt32BE(uint32(len(c.data)))
	b.PutRaw(tag[:])
	b.PutRaw(c.data)
	b.PutUInt32BE(c.crc)
}

// ihdrChunk builds the 13-byte metadata record.
func ihdrChunk(img *Image) chunk {
	var b bitbuf.Buffer
	b.PutUInt32BE(img.width)
	b.PutUInt32BE(img.height)
	b.PutByte(BitDepth)
	b.PutByte(byte(img.color))
	b.PutByte(0) // compression method: DEFLATE
	b.PutByte(0) // filter method: adaptive
	b.PutByte(0) // interlace: none
	return newChunk(chunkIHDR, b.Buf)
}

// idatChunk wraps the compressed stream. The payload is copied so it does
// not alias the compressor's reusable buffer.
func idatChunk(stream []byte) chunk {
	data := make([]byte, len(stream))
	copy(data, stream)
	return newChunk(chunkIDAT, data)
}

// iendChunk builds the zero-payload terminator record.
func iendChunk() chunk {
	return newChunk(chunkIEND, nil)
}
