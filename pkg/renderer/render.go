package renderer

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/brightforge/pathtracer/pkg/brdf"
	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/integrator"
	"github.com/brightforge/pathtracer/pkg/scene"
)

// Render drives the path tracer over every pixel of the frame and
// returns a tightly packed, row-major RGBA byte buffer (alpha always
// 255). Rebuilt from the teacher's tile-based, progressive
// Raytracer/WorkerPool pair into a single row-parallel pass: the
// engine is offline and non-interactive, so there is no intermediate
// frame to display and no adaptive sample budget to track.
func Render(sc *scene.Scene, cam *Camera, b brdf.BRDF, opts Options) []byte {
	if err := opts.Validate(); err != nil {
		panic(err)
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	aspectRatio := float64(opts.Width) / float64(opts.Height)
	pt := integrator.NewPathTracingIntegrator(opts.MaxRayBounces, nil)

	radiance := make([]core.Vec3, opts.Width*opts.Height)
	rows := make(chan int)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for y := range rows {
				renderRow(sc, cam, b, pt, opts, aspectRatio, y, radiance)
			}
			return nil
		})
	}
	for y := 0; y < opts.Height; y++ {
		rows <- y
	}
	close(rows)
	_ = g.Wait()

	return toneMapToRGBA(radiance, opts)
}

// renderRow accumulates the averaged radiance for every pixel in row
// y. Each pixel's RNG stream is seeded from (base_seed, pixel_index),
// so the result does not depend on which worker processes the row or
// in what order rows are scheduled.
func renderRow(sc *scene.Scene, cam *Camera, b brdf.BRDF, pt *integrator.PathTracingIntegrator, opts Options, aspectRatio float64, y int, radiance []core.Vec3) {
	for x := 0; x < opts.Width; x++ {
		pixelIndex := y*opts.Width + x
		rng := core.NewRNG(opts.Seed, pixelIndex)

		var sum core.Vec3
		for s := 0; s < opts.SamplesPerPixel; s++ {
			jx, jy := rng.Float64Pair()
			u := (float64(x) + jx) / float64(opts.Width)
			v := (float64(y) + jy) / float64(opts.Height)

			ray := cam.Ray(u, v, aspectRatio)
			sum = sum.Add(pt.RayColor(ray, sc, b, rng))
		}

		radiance[pixelIndex] = sum.Multiply(1.0 / float64(opts.SamplesPerPixel))
	}
}

// toneMapToRGBA applies Reinhard-style exposure tone mapping followed
// by gamma correction, matching the teacher's vec3ToColor gamma/clamp
// convention in pkg/renderer/raytracer.go with an exposure step
// inserted ahead of it.
func toneMapToRGBA(radiance []core.Vec3, opts Options) []byte {
	buf := make([]byte, len(radiance)*4)

	for i, c := range radiance {
		mapped := core.NewVec3(
			reinhard(c.X, opts.Exposure),
			reinhard(c.Y, opts.Exposure),
			reinhard(c.Z, opts.Exposure),
		)
		mapped = mapped.GammaCorrect(opts.Gamma).Clamp(0, 1)

		o := i * 4
		buf[o+0] = toByte(mapped.X)
		buf[o+1] = toByte(mapped.Y)
		buf[o+2] = toByte(mapped.Z)
		buf[o+3] = 255
	}

	return buf
}

func reinhard(c, exposure float64) float64 {
	ce := c * exposure
	return ce / (ce + 1)
}

func toByte(c float64) byte {
	return byte(math.Round(math.Max(0, math.Min(1, c)) * 255))
}
