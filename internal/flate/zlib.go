package flate

// zlib framing per RFC 1950: CMF packs method 8 (DEFLATE) with window
// log2-8=7, FLG packs level 2 (default) with a check value making the
// big-endian CMF|FLG pair divisible by 31. The trailer is the big-endian
// Adler-32 of the uncompressed input.

const (
	zlibMethod = 8
	zlibWindow = 7
	zlibLevel  = 2
)

// writeHeader emits the two zlib header bytes.
func (w *Writer) writeHeader() {
	cmf := byte(zlibWindow<<4 | zlibMethod)
	flg := byte(zlibLevel << 6)

	v := uint16(cmf)<<8 | uint16(flg)
	flg |= byte(31 - v%31)

	w.bb.PutByte(cmf)
	w.bb.PutByte(flg)
}
