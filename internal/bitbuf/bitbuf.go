// Package bitbuf implements a growable byte buffer with sub-byte bit writes.
//
// DEFLATE packs Huffman codes LSB-first, so WriteBits fills bytes from the
// low bit up. Whole-byte writes are only valid on a byte boundary; PutRaw and
// PutUInt32BE flush pending bits first.
package bitbuf

// Buffer accumulates bits and bytes of encoded output.
type Buffer struct {
	Buf []byte

	bits  uint32 // pending bits, low bits first
	nbits uint8  // number of valid pending bits (0-31)
}

// New returns a Buffer with capacity for n bytes.
func New(n int) *Buffer {
	return &Buffer{Buf: make([]byte, 0, n)}
}

// grow ensures room for n more bytes, doubling capacity or growing to the
// exact requirement, whichever is larger.
func (b *Buffer) grow(n int) {
	if len(b.Buf)+n <= cap(b.Buf) {
		return
	}
	c := 2 * cap(b.Buf)
	if c < len(b.Buf)+n {
		c = len(b.Buf) + n
	}
	buf := make([]byte, len(b.Buf), c)
	copy(buf, b.Buf)
	b.Buf = buf
}

// WriteBits appends the n low bits of v, LSB-first.
func (b *Buffer) WriteBits(v uint32, n uint8) {
	b.bits |= v << b.nbits
	b.nbits += n
	for b.nbits >= 8 {
		b.grow(1)
		b.Buf = append(b.Buf, byte(b.bits))
		b.bits >>= 8
		b.nbits -= 8
	}
}

// FlushBits forces out any partial byte, zero-padding the unused high bits.
func (b *Buffer) FlushBits() {
	if b.nbits > 0 {
		b.grow(1)
		b.Buf = append(b.Buf, byte(b.bits))
		b.bits = 0
		b.nbits = 0
	}
}

// PutRaw appends v byte-for-byte, flushing pending bits first.
func (b *Buffer) PutRaw(v []byte) {
	b.FlushBits()
	b.grow(len(v))
	b.Buf = append(b.Buf, v...)
}

// PutByte appends a single byte, flushing pending bits first.
func (b *Buffer) PutByte(v byte) {
	b.FlushBits()
	b.grow(1)
	b.Buf = append(b.Buf, v)
}

// PutUInt32BE appends x most-significant byte first.
func (b *Buffer) PutUInt32BE(x uint32) {
	b.FlushBits()
	b.grow(4)
	b.Buf = append(b.Buf,
		byte(x>>24),
		byte(x>>16),
		byte(x>>8),
		byte(x),
	)
}

// Len returns the number of complete bytes written.
func (b *Buffer) Len() int { return len(b.Buf) }

// Reset drops buffered bytes and pending bits.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
	b.bits = 0
	b.nbits = 0
}
