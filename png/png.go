// Package png implements a self-contained PNG encoder for 8-bit RGB and
// RGBA pixel buffers.
//
// The output is a standard PNG: signature, IHDR, one IDAT holding a
// zlib-wrapped fixed-Huffman DEFLATE stream of adaptively filtered
// scanlines, and IEND. Compression and checksums are implemented from first
// principles in internal packages; any compliant PNG decoder can read the
// result.
//
// Decoding, interlacing and color-space conversion are out of scope.
package png

// Signature is the 8-byte magic prefix of every PNG file.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// BitDepth is the only sample depth the encoder produces.
const BitDepth = 8
