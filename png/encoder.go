package png

import (
	"io"
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/go-plotz/plotz/internal/bitbuf"
	"github.com/go-plotz/plotz/internal/flate"
)

// Options for Encoder.
type Options struct {
	Logger *zap.Logger
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Encoder writes Images as PNG files. An Encoder is reusable but not
// safe for concurrent use; every Encode call owns its buffers.
type Encoder struct {
	lg *zap.Logger

	compressor *flate.Writer
}

// NewEncoder returns an Encoder with opt applied.
func NewEncoder(opt Options) *Encoder {
	opt.setDefaults()
	return &Encoder{
		lg:         opt.Logger,
		compressor: flate.NewWriter(),
	}
}

// filtered runs the scanline filter bank over every row and returns the
// concatenated chosen rows, each prefixed by its filter tag.
func (e *Encoder) filtered(img *Image) []byte {
	bpp := img.color.Channels()
	rowWidth := int(img.width) * bpp

	var scratch [5][]byte
	for i := range scratch {
		scratch[i] = make([]byte, 1+rowWidth)
	}

	out := make([]byte, 0, int(img.height)*(1+rowWidth))
	var prev []byte
	for y := uint32(0); y < img.height; y++ {
		row := img.row(y)
		best := chooseFilter(&scratch, row, prev, bpp)
		out = append(out, scratch[best]...)
		prev = row
	}
	return out
}

// Encode writes img to w as a complete PNG byte stream.
//
// The file is assembled in memory first, so a failed encode never emits a
// truncated chunk sequence.
func (e *Encoder) Encode(w io.Writer, img *Image) error {
	filtered := e.filtered(img)

	if err := e.compressor.Compress(filtered); err != nil {
		return errors.Wrap(err, "compress")
	}

	var b bitbuf.Buffer
	b.PutRaw(Signature[:])
	ihdrChunk(img).encode(&b)
	idatChunk(e.compressor.Data).encode(&b)
	iendChunk().encode(&b)

	if ce := e.lg.Check(zap.DebugLevel, "Encode"); ce != nil {
		ce.Write(
			zap.Uint32("width", img.width),
			zap.Uint32("height", img.height),
			zap.Stringer("color_type", img.color),
			zap.Int("filtered_bytes", len(filtered)),
			zap.Int("compressed_bytes", len(e.compressor.Data)),
			zap.Int("file_bytes", b.Len()),
		)
	}

	if _, err := w.Write(b.Buf); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}

// EncodeFile writes img to a new file at path.
func (e *Encoder) EncodeFile(path string, img *Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if err := e.Encode(f, img); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}

// Encode writes img to w with default options.
func Encode(w io.Writer, img *Image) error {
	return NewEncoder(Options{}).Encode(w, img)
}

// EncodeFile writes img to path with default options.
func EncodeFile(path string, img *Image) error {
	return NewEncoder(Options{}).EncodeFile(path, img)
}
