// Command plotz renders demo plots and writes them as PNG files using the
// built-in encoder.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/go-plotz/plotz/colorscheme"
	"github.com/go-plotz/plotz/heatmap"
	"github.com/go-plotz/plotz/internal/version"
	"github.com/go-plotz/plotz/magnitude"
	"github.com/go-plotz/plotz/png"
	"github.com/go-plotz/plotz/scales"
	"github.com/go-plotz/plotz/spectrum"
)

func main() {
	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	app := cli.App{
		Name:    "plotz",
		Usage:   "Render demo plots as PNG files",
		Version: version.Get().Raw,
		Commands: []*cli.Command{
			{
				Name:   "heatmap",
				Usage:  "Render a random-point heatmap",
				Action: renderHeatmap(lg),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "heatmap.png"},
					&cli.UintFlag{Name: "width", Value: 1024},
					&cli.UintFlag{Name: "height", Value: 1024},
					&cli.IntFlag{Name: "points", Value: 2000},
					&cli.StringFlag{Name: "scheme", Value: "temperature"},
					&cli.Int64Flag{Name: "seed", Value: 1},
				},
			},
			{
				Name:   "gradient",
				Usage:  "Render a color scheme as a horizontal gradient strip",
				Action: renderGradient(lg),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "gradient.png"},
					&cli.UintFlag{Name: "width", Value: 1024},
					&cli.UintFlag{Name: "height", Value: 64},
					&cli.StringFlag{Name: "scheme", Value: "temperature"},
				},
			},
			{
				Name:   "magnitude",
				Usage:  "Render a concentric-ripple magnitude plot",
				Action: renderMagnitude(lg),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "magnitude.png"},
					&cli.UintFlag{Name: "width", Value: 1024},
					&cli.UintFlag{Name: "height", Value: 1024},
					&cli.Float64Flag{Name: "frequency", Value: 20, Usage: "ring count factor"},
					&cli.IntFlag{Name: "grid", Value: 1, Usage: "render an NxN grid of plots"},
					&cli.BoolFlag{Name: "legend", Usage: "append a color scale legend"},
					&cli.StringFlag{Name: "scheme", Value: "temperature"},
				},
			},
			{
				Name:   "spectrum",
				Usage:  "Render a spectrum analyzer bar display",
				Action: renderSpectrum(lg),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "spectrum.png"},
					&cli.UintFlag{Name: "width", Value: 1024},
					&cli.UintFlag{Name: "height", Value: 512},
					&cli.UintFlag{Name: "bins", Value: 64},
					&cli.StringFlag{Name: "style", Value: "gradient", Usage: "solid, gradient or segmented"},
					&cli.BoolFlag{Name: "peaks", Usage: "draw peak markers"},
					&cli.BoolFlag{Name: "axes", Usage: "overlay axis scales"},
					&cli.StringFlag{Name: "scheme", Value: "temperature"},
					&cli.Int64Flag{Name: "seed", Value: 1},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}

func writeImage(lg *zap.Logger, path string, w, h uint32, channels int, pix []byte) error {
	img, err := png.NewImage(w, h, channels, pix)
	if err != nil {
		return errors.Wrap(err, "image")
	}

	e := png.NewEncoder(png.Options{Logger: lg})
	if err := e.EncodeFile(path, img); err != nil {
		return errors.Wrap(err, "encode")
	}

	st, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "stat")
	}
	lg.Info("Wrote PNG",
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(st.Size()))),
	)
	return nil
}

func renderHeatmap(lg *zap.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		w := uint32(c.Uint("width"))
		h := uint32(c.Uint("height"))

		scheme, err := colorscheme.Named(c.String("scheme"))
		if err != nil {
			return err
		}

		hm := heatmap.New(w, h)
		stamp := heatmap.NewRoundStamp(w / 32)
		r := rand.New(rand.NewSource(c.Int64("seed")))
		for i := 0; i < c.Int("points"); i++ {
			// Cluster around the center.
			x := (r.NormFloat64()/6 + 0.5) * float64(w)
			y := (r.NormFloat64()/6 + 0.5) * float64(h)
			if x < 0 || y < 0 {
				continue
			}
			hm.AddPointStamp(uint32(x), uint32(y), stamp)
		}

		return writeImage(lg, c.String("out"), w, h, 4, hm.RenderScheme(scheme))
	}
}

// ripple fills plot with concentric rings around the center, magnitudes in
// [0, 1].
func ripple(plot *magnitude.Plot, frequency float64) {
	w, h := plot.Width(), plot.Height()
	centerX := float64(w) / 2
	centerY := float64(h) / 2
	maxDist := math.Sqrt(centerX*centerX + centerY*centerY)

	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			dx := float64(x) - centerX
			dy := float64(y) - centerY
			dist := math.Sqrt(dx*dx+dy*dy) / maxDist
			plot.AddPoint(x, y, float32((math.Sin(dist*frequency)+1)/2))
		}
	}
}

func renderMagnitude(lg *zap.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		w := uint32(c.Uint("width"))
		h := uint32(c.Uint("height"))

		scheme, err := colorscheme.Named(c.String("scheme"))
		if err != nil {
			return err
		}

		if n := c.Int("grid"); n > 1 {
			// Grid cells share one color scale; vary the ring frequency
			// per cell so the shared normalization is visible.
			g, err := magnitude.NewGrid(n, w, h, w, h)
			if err != nil {
				return errors.Wrap(err, "grid")
			}
			for row := 0; row < n; row++ {
				for col := 0; col < n; col++ {
					cell, err := g.Plot(row, col)
					if err != nil {
						return errors.Wrap(err, "cell")
					}
					freq := c.Float64("frequency") * float64(row*n+col+1)
					rippleMapped(cell, freq)
				}
			}
			if err := g.WritePNG(c.String("out"), scheme); err != nil {
				return errors.Wrap(err, "encode")
			}
			return logWritten(lg, c.String("out"))
		}

		plot := magnitude.New(w, h)
		ripple(plot, c.Float64("frequency"))
		pix := plot.RenderScheme(scheme)

		if c.Bool("legend") {
			const legendWidth = 124
			newW := w + legendWidth
			combined := make([]byte, int(newW)*int(h)*4)
			for y := uint32(0); y < h; y++ {
				copy(combined[int(y)*int(newW)*4:], pix[int(y)*int(w)*4:int(y+1)*int(w)*4])
			}
			if err := scales.DrawLegend(combined, newW, h, w, scheme); err != nil {
				return errors.Wrap(err, "legend")
			}
			return writeImage(lg, c.String("out"), newW, h, 4, combined)
		}

		return writeImage(lg, c.String("out"), w, h, 4, pix)
	}
}

// rippleMapped is ripple for a coordinate-mapped cell with matching input
// and image dimensions.
func rippleMapped(plot *magnitude.Mapped, frequency float64) {
	w, h := plot.ImageWidth(), plot.ImageHeight()
	centerX := float64(w) / 2
	centerY := float64(h) / 2
	maxDist := math.Sqrt(centerX*centerX + centerY*centerY)

	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			dx := float64(x) - centerX
			dy := float64(y) - centerY
			dist := math.Sqrt(dx*dx+dy*dy) / maxDist
			plot.AddPoint(x, y, float32((math.Sin(dist*frequency)+1)/2))
		}
	}
}

func renderSpectrum(lg *zap.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		w := uint32(c.Uint("width"))
		h := uint32(c.Uint("height"))
		bins := uint32(c.Uint("bins"))

		scheme, err := colorscheme.Named(c.String("scheme"))
		if err != nil {
			return err
		}
		style, err := spectrum.BarStyleString(c.String("style"))
		if err != nil {
			return err
		}

		sp := spectrum.New(bins, w, h)
		sp.Style = style
		sp.ShowPeaks = c.Bool("peaks")
		sp.PeakDecay = 0.02

		// A few frames of a decaying random spectrum, so peak markers sit
		// above the final bars.
		r := rand.New(rand.NewSource(c.Int64("seed")))
		frame := make([]float32, bins)
		for step := 0; step < 8; step++ {
			for i := range frame {
				envelope := math.Exp(-3 * float64(i) / float64(bins))
				frame[i] = float32(envelope * (0.4 + 0.6*r.Float64()) * float64(8-step) / 8)
			}
			sp.Update(frame)
		}
		pix := sp.RenderScheme(scheme)

		if c.Bool("axes") {
			opt := scales.DefaultOptions()
			opt.XMax = float64(bins)
			opt.YMax = float64(sp.Max())
			opt.XLabel = "bin"
			opt.YLabel = "magnitude"
			opt.ShowAxisLabels = true
			opt.LabelPrecision = 0
			if err := scales.New(w, h).Render(pix, opt); err != nil {
				return errors.Wrap(err, "scales")
			}
		}

		return writeImage(lg, c.String("out"), w, h, 4, pix)
	}
}

// logWritten reports the size of a file another writer produced.
func logWritten(lg *zap.Logger, path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "stat")
	}
	lg.Info("Wrote PNG",
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(st.Size()))),
	)
	return nil
}

func renderGradient(lg *zap.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		w := uint32(c.Uint("width"))
		h := uint32(c.Uint("height"))
		if w < 2 || h < 1 {
			return errors.Errorf("gradient needs width >= 2 and height >= 1, got %dx%d", w, h)
		}

		scheme, err := colorscheme.Named(c.String("scheme"))
		if err != nil {
			return err
		}
		ncolors := colorscheme.Colors(scheme)

		pix := make([]byte, 0, int(w)*int(h)*3)
		for y := uint32(0); y < h; y++ {
			for x := uint32(0); x < w; x++ {
				ci := int(x) * (ncolors - 1) / int(w-1)
				col := colorscheme.At(scheme, ci)
				pix = append(pix, col[0], col[1], col[2])
			}
		}

		return writeImage(lg, c.String("out"), w, h, 3, pix)
	}
}
