// Package colorscheme builds RGBA gradient tables for mapping scalar values
// to colors.
//
// A scheme is a flat []byte of 4-byte RGBA entries, produced by linearly
// interpolating between key colors. The named schemes mirror common plotting
// palettes.
package colorscheme

import "github.com/go-faster/errors"

// RGBA is a single 8-bit color.
type RGBA [4]byte

var (
	White = RGBA{255, 255, 255, 255}
	Black = RGBA{0, 0, 0, 255}
)

// DefaultSteps is the interpolation resolution between two key colors.
const DefaultSteps = 128

// Interpolate fills dst with steps colors blended linearly from c1 to c2.
// dst must hold steps*4 bytes.
func Interpolate(dst []byte, c1, c2 RGBA, steps int) {
	for i := 0; i < steps; i++ {
		ratio := float64(i) / float64(steps-1)
		for ch := 0; ch < 4; ch++ {
			v := float64(c1[ch]) + ratio*(float64(c2[ch])-float64(c1[ch]))
			dst[i*4+ch] = byte(v)
		}
	}
}

// Make builds a gradient table from key colors with steps entries per
// segment. At least two key colors are required.
func Make(keys []RGBA, steps int) ([]byte, error) {
	if len(keys) < 2 {
		return nil, errors.Errorf("need at least 2 key colors, got %d", len(keys))
	}
	if steps < 2 {
		return nil, errors.Errorf("need at least 2 steps per segment, got %d", steps)
	}

	segments := len(keys) - 1
	data := make([]byte, segments*steps*4)
	for i := 0; i < segments; i++ {
		Interpolate(data[i*steps*4:], keys[i], keys[i+1], steps)
	}
	return data, nil
}

// Colors returns the number of entries in a scheme table.
func Colors(scheme []byte) int { return len(scheme) / 4 }

// At returns the i-th color of a scheme table.
func At(scheme []byte, i int) RGBA {
	var c RGBA
	copy(c[:], scheme[i*4:])
	return c
}

// Key colors of the named schemes.
var (
	RainbowKeys = []RGBA{
		{148, 0, 211, 255}, // violet
		{75, 0, 130, 255},  // indigo
		{0, 0, 255, 255},   // blue
		{0, 255, 0, 255},   // green
		{255, 255, 0, 255}, // yellow
		{255, 127, 0, 255}, // orange
		{255, 0, 0, 255},   // red
	}
	ViridisKeys = []RGBA{
		{68, 1, 84, 255},
		{72, 35, 116, 255},
		{64, 67, 135, 255},
		{52, 94, 141, 255},
		{33, 145, 140, 255},
		{94, 201, 98, 255},
		{253, 231, 37, 255},
	}
	JetKeys = []RGBA{
		{0, 0, 131, 255},
		{0, 60, 170, 255},
		{5, 255, 255, 255},
		{255, 255, 0, 255},
		{250, 0, 0, 255},
		{128, 0, 0, 255},
	}
	SoftKeys = []RGBA{
		{30, 30, 150, 255},
		{50, 50, 200, 255},
		{50, 120, 220, 255},
		{180, 180, 180, 255},
		{220, 140, 80, 255},
		{200, 80, 80, 255},
		{150, 50, 50, 255},
	}
	InfernoKeys = []RGBA{
		{0, 0, 4, 255},
		{68, 1, 84, 255},
		{148, 64, 161, 255},
		{236, 112, 199, 255},
		{253, 181, 98, 255},
		{253, 231, 37, 255},
		{252, 255, 164, 255},
	}
	TurboKeys = []RGBA{
		{48, 18, 59, 255},
		{49, 54, 149, 255},
		{33, 113, 181, 255},
		{94, 201, 98, 255},
		{253, 231, 37, 255},
		{224, 163, 0, 255},
		{136, 0, 0, 255},
	}
	PastelKeys = []RGBA{
		{151, 136, 157, 255},
		{152, 154, 202, 255},
		{144, 184, 218, 255},
		{174, 228, 176, 255},
		{254, 243, 146, 255},
		{239, 209, 128, 255},
		{195, 127, 127, 255},
	}
	TemperatureKeys = []RGBA{
		{48, 18, 59, 255},
		{49, 54, 149, 255},
		{253, 231, 37, 255},
		{224, 163, 0, 255},
		{136, 0, 0, 255},
	}
)

// Default is the temperature scheme at DefaultSteps resolution.
var Default = mustMake(TemperatureKeys)

func mustMake(keys []RGBA) []byte {
	data, err := Make(keys, DefaultSteps)
	if err != nil {
		panic(err)
	}
	return data
}

// Named returns a scheme table by name.
func Named(name string) ([]byte, error) {
	keys, ok := map[string][]RGBA{
		"rainbow":     RainbowKeys,
		"viridis":     ViridisKeys,
		"jet":         JetKeys,
		"soft":        SoftKeys,
		"inferno":     InfernoKeys,
		"turbo":       TurboKeys,
		"pastel":      PastelKeys,
		"temperature": TemperatureKeys,
	}[name]
	if !ok {
		return nil, errors.Errorf("unknown color scheme %q", name)
	}
	return Make(keys, DefaultSteps)
}
