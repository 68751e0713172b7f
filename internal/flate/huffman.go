package flate

// Fixed Huffman code assignment per RFC 1951 §3.2.6:
//
//	0-143:   8 bits, codes 48-191
//	144-255: 9 bits, codes 400-511
//	256-279: 7 bits, codes 0-23
//	280-287: 8 bits, codes 192-199
//
// Distance codes are all 5 bits, numbered 0-29. The tables are built once at
// package init and never mutated.

type hcode struct {
	code uint16 // canonical code, MSB-first
	bits uint8
}

var (
	llCodes   [288]hcode
	distCodes [30]hcode
)

func init() {
	for i := 0; i <= 143; i++ {
		llCodes[i] = hcode{code: uint16(i) + 48, bits: 8}
	}
	for i := 144; i <= 255; i++ {
		llCodes[i] = hcode{code: uint16(i-144) + 400, bits: 9}
	}
	for i := 256; i <= 279; i++ {
		llCodes[i] = hcode{code: uint16(i - 256), bits: 7}
	}
	for i := 280; i <= 287; i++ {
		llCodes[i] = hcode{code: uint16(i-280) + 192, bits: 8}
	}
	for i := 0; i < 30; i++ {
		distCodes[i] = hcode{code: uint16(i), bits: 5}
	}
}

// rangeCode maps a contiguous value range onto a symbol: base value plus a
// count of extra low-order bits encoding the offset within the range.
type rangeCode struct {
	base  uint16
	extra uint8
}

// Match lengths 3-258 onto length symbols 257-285.
var lengthRanges = [29]rangeCode{
	{3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {8, 0}, {9, 0}, {10, 0},
	{11, 1}, {13, 1}, {15, 1}, {17, 1}, {19, 2}, {23, 2}, {27, 2}, {31, 2},
	{35, 3}, {43, 3}, {51, 3}, {59, 3}, {67, 4}, {83, 4}, {99, 4}, {115, 4},
	{131, 5}, {163, 5}, {195, 5}, {227, 5}, {258, 0},
}

// Match distances 1-32768 onto distance symbols 0-29.
var distanceRanges = [30]rangeCode{
	{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 1}, {7, 1}, {9, 2}, {13, 2},
	{17, 3}, {25, 3}, {33, 4}, {49, 4}, {65, 5}, {97, 5}, {129, 6}, {193, 6},
	{257, 7}, {385, 7}, {513, 8}, {769, 8}, {1025, 9}, {1537, 9}, {2049, 10},
	{3073, 10}, {4097, 11}, {6145, 11}, {8193, 12}, {12289, 12}, {16385, 13}, {24577, 13},
}

// reverseBits mirrors the n low bits of v. Canonical codes are defined
// MSB-first while the stream is packed LSB-first.
func reverseBits(v uint32, n uint8) uint32 {
	var r uint32
	for i := uint8(0); i < n; i++ {
		r = r<<1 | v&1
		v >>= 1
	}
	return r
}

// lengthSymbol maps a match length to its symbol index into llCodes and the
// extra bits encoding the offset from the range base.
func lengthSymbol(length int) (sym int, extra uint32, nextra uint8) {
	for i, rc := range lengthRanges {
		lo := int(rc.base)
		hi := lo + (1 << rc.extra) - 1
		if length >= lo && length <= hi {
			return 257 + i, uint32(length - lo), rc.extra
		}
	}
	// Unreachable for 3 <= length <= 258.
	return 285, 0, 0
}

// distanceSymbol maps a match distance to its symbol index into distCodes and
// the extra bits encoding the offset from the range base.
func distanceSymbol(distance int) (sym int, extra uint32, nextra uint8) {
	for i, rc := range distanceRanges {
		lo := int(rc.base)
		hi := lo + (1 << rc.extra) - 1
		if distance >= lo && distance <= hi {
			return i, uint32(distance - lo), rc.extra
		}
	}
	// Unreachable for 1 <= distance <= 32768.
	return 29, 0, 0
}
