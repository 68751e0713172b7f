// Package flate implements the compression side of the encoder: a greedy
// LZ77 match finder feeding fixed-Huffman DEFLATE, framed by a zlib wrapper.
//
// Exactly one block type is produced (final block, fixed codes). That keeps
// the code table out of the stream and the output deterministic; dynamic
// Huffman and stored blocks are deliberately out of scope.
package flate

import (
	"github.com/go-faster/errors"

	"github.com/go-plotz/plotz/internal/bitbuf"
	"github.com/go-plotz/plotz/internal/checksum"
)

// maxDataSize bounds a single encode. The single-block stream has no length
// framing, so this is a sanity limit, not a format one.
const maxDataSize = 1 << 30

// Writer encodes zlib-wrapped DEFLATE streams.
type Writer struct {
	Data []byte

	bb bitbuf.Buffer
}

// NewWriter returns a Writer ready for Compress.
func NewWriter() *Writer {
	return &Writer{}
}

// putCode emits a canonical code LSB-first.
func (w *Writer) putCode(c hcode) {
	w.bb.WriteBits(reverseBits(uint32(c.code), c.bits), c.bits)
}

// deflate emits buf as one final fixed-Huffman block into w.bb.
func (w *Writer) deflate(buf []byte) {
	// BFINAL=1, BTYPE=01, packed LSB-first.
	w.bb.WriteBits(0b011, 3)

	pos := 0
	for pos < len(buf) {
		dist, length, ok := bestMatch(buf, pos)
		if !ok {
			w.putCode(llCodes[buf[pos]])
			pos++
			continue
		}

		sym, extra, nextra := lengthSymbol(length)
		w.putCode(llCodes[sym])
		if nextra > 0 {
			w.bb.WriteBits(extra, nextra)
		}

		sym, extra, nextra = distanceSymbol(dist)
		w.putCode(distCodes[sym])
		if nextra > 0 {
			w.bb.WriteBits(extra, nextra)
		}

		pos += length
	}

	w.putCode(llCodes[endOfBlock])
	w.bb.FlushBits()
}

const endOfBlock = 256

// Compress encodes buf as a complete zlib stream into w.Data.
func (w *Writer) Compress(buf []byte) error {
	if len(buf) > maxDataSize {
		return errors.Errorf("buf size %d > %d", len(buf), maxDataSize)
	}

	w.bb.Reset()
	w.writeHeader()
	w.deflate(buf)
	w.bb.PutUInt32BE(checksum.Adler32(buf))

	w.Data = w.bb.Buf
	return nil
}
