// Command raytracer renders the built-in Cornell Box scene and writes
// the result to a PNG file. Grounded in the teacher's main.go flag
// parsing and console-progress conventions, with fmt.Printf progress
// lines replaced by structured log/slog records.
package main

import (
	"flag"
	"image"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/brightforge/pathtracer/pkg/brdf"
	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/renderer"
	"github.com/brightforge/pathtracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 640, "output image width in pixels")
	height := flag.Int("height", 480, "output image height in pixels")
	spp := flag.Int("spp", 64, "samples per pixel")
	bounces := flag.Int("bounces", 8, "maximum ray bounces")
	exposure := flag.Float64("exposure", 1.0, "tone-mapping exposure")
	gamma := flag.Float64("gamma", 2.2, "gamma correction factor")
	workers := flag.Int("workers", 0, "number of render workers (0 = auto-detect CPU count)")
	seed := flag.Uint64("seed", 1, "base seed for the per-pixel RNG streams")
	out := flag.String("out", "render.png", "output PNG file path")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	opts := renderer.Options{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *spp,
		MaxRayBounces:   *bounces,
		Exposure:        *exposure,
		Gamma:           *gamma,
		Workers:         *workers,
		Seed:            *seed,
	}
	if err := opts.Validate(); err != nil {
		logger.Error("invalid render options", slog.Any("err", err))
		os.Exit(1)
	}

	sc := scene.BuildCornellBox()
	cam := renderer.NewCamera(core.NewVec3(0, 0, 3.25), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 60)
	b := brdf.Disney{}

	logger.Info("starting render",
		slog.Int("width", opts.Width), slog.Int("height", opts.Height),
		slog.Int("spp", opts.SamplesPerPixel), slog.Int("bounces", opts.MaxRayBounces),
		slog.Int("workers", opts.Workers), slog.Uint64("seed", opts.Seed))

	start := time.Now()
	pixels := renderer.Render(sc, cam, b, opts)
	elapsed := time.Since(start)

	logger.Info("render complete", slog.Duration("elapsed", elapsed))

	if err := writePNG(*out, opts.Width, opts.Height, pixels); err != nil {
		logger.Error("failed to write PNG", slog.String("path", *out), slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("wrote image", slog.String("path", *out))
}

// writePNG packs a row-major RGBA byte buffer into an image.RGBA and
// encodes it, matching the teacher's image/png usage in main.go.
func writePNG(path string, width, height int, pixels []byte) error {
	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
