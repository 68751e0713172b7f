package png

import "github.com/go-faster/errors"

//go:generate go run github.com/dmarkham/enumer -type ColorType -trimprefix ColorType -output color_enum.go

// ColorType is the PNG color model of an Image.
type ColorType byte

const (
	ColorTypeRGB  ColorType = 2
	ColorTypeRGBA ColorType = 6
)

// Channels returns bytes per pixel for the color type.
func (c ColorType) Channels() int {
	if c == ColorTypeRGB {
		return 3
	}
	return 4
}

// Image is an owned 8-bit interleaved pixel buffer, row-major and
// top-to-bottom. It is immutable once constructed.
type Image struct {
	width  uint32
	height uint32
	color  ColorType
	pix    []byte
}

// NewImage copies pix into a new Image. Channels selects the color model:
// 3 for RGB, 4 for RGBA; anything else is rejected. The buffer must hold
// exactly width*height*channels bytes, and both dimensions must be at
// least one pixel: the container format has no valid zero-dimension form.
func NewImage(width, height uint32, channels int, pix []byte) (*Image, error) {
	if width == 0 || height == 0 {
		return nil, errors.Errorf("empty image %dx%d", width, height)
	}
	var color ColorType
	switch channels {
	case 3:
		color = ColorTypeRGB
	case 4:
		color = ColorTypeRGBA
	default:
		return nil, errors.Errorf("unsupported channel count %d", channels)
	}
	want := int(width) * int(height) * channels
	if len(pix) != want {
		return nil, errors.Errorf("pixel buffer size %d, want %d (%dx%dx%d)",
			len(pix), want, width, height, channels)
	}

	img := &Image{
		width:  width,
		height: height,
		color:  color,
		pix:    make([]byte, len(pix)),
	}
	copy(img.pix, pix)

	return img, nil
}

// Width in pixels.
func (img *Image) Width() uint32 { return img.width }

// Height in pixels.
func (img *Image) Height() uint32 { return img.height }

// ColorType of the pixel data.
func (img *Image) ColorType() ColorType { return img.color }

// row returns the y-th scanline of the raw pixel data.
func (img *Image) row(y uint32) []byte {
	w := int(img.width) * img.color.Channels()
	off := int(y) * w
	return img.pix[off : off+w]
}
