package renderer

import (
	"bytes"
	"testing"

	"github.com/brightforge/pathtracer/pkg/brdf"
	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/geometry"
	"github.com/brightforge/pathtracer/pkg/material"
	"github.com/brightforge/pathtracer/pkg/scene"
)

func testOptions(width, height, spp, bounces int, workers int) Options {
	return Options{
		Width:           width,
		Height:          height,
		SamplesPerPixel: spp,
		MaxRayBounces:   bounces,
		Exposure:        1.0,
		Gamma:           2.0,
		Workers:         workers,
		Seed:            1234,
	}
}

func TestOptions_Validate(t *testing.T) {
	good := testOptions(4, 4, 1, 1, 1)
	if err := good.Validate(); err != nil {
		t.Errorf("expected valid options to pass, got %v", err)
	}

	bad := good
	bad.Width = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected zero width to be rejected")
	}

	bad = good
	bad.Exposure = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected zero exposure to be rejected")
	}
}

func TestRender_Determinism_AcrossWorkerCounts(t *testing.T) {
	sc := scene.BuildCornellBox()
	cam := NewCamera(core.NewVec3(0, 0, 3.25), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 60)
	b := brdf.Disney{}
	opts := testOptions(24, 24, 2, 3, 0)

	var reference []byte
	for _, workers := range []int{1, 2, 8} {
		opts.Workers = workers
		buf := Render(sc, cam, b, opts)
		if reference == nil {
			reference = buf
			continue
		}
		if !bytes.Equal(reference, buf) {
			t.Errorf("render with workers=%d diverged from workers=1 baseline", workers)
		}
	}
}

func TestRender_PrimaryRaySanity_EmitterOnly(t *testing.T) {
	sc := scene.New("emitter-only")
	sc.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.3, material.NewEmissive(core.NewVec3(5, 5, 5))))

	cam := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 40)
	b := brdf.Lambertian{}
	opts := testOptions(32, 32, 1, 1, 1)

	buf := Render(sc, cam, b, opts)

	centerIndex := (16*opts.Width + 16) * 4
	if buf[centerIndex] == 0 && buf[centerIndex+1] == 0 && buf[centerIndex+2] == 0 {
		t.Error("expected center pixel hitting the emitter to be non-black")
	}

	cornerIndex := 0
	if buf[cornerIndex] != 0 || buf[cornerIndex+1] != 0 || buf[cornerIndex+2] != 0 {
		t.Error("expected corner pixel missing the emitter to be exactly black")
	}
	if buf[cornerIndex+3] != 255 {
		t.Error("expected alpha channel to always be 255")
	}
}

func TestRender_MirrorReflectsEmission(t *testing.T) {
	sc := scene.New("mirror-scene")
	sc.Add(geometry.NewSphere(core.NewVec3(0, 0, 5), 1.0, material.NewEmissive(core.NewVec3(4, 4, 4))))
	mirror := material.Material{Albedo: core.NewVec3(1, 1, 1), Metallic: 1, Roughness: 0}
	sc.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mirror))

	cam := NewCamera(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 40)
	b := brdf.Disney{}
	opts := testOptions(16, 16, 4, 4, 1)

	buf := Render(sc, cam, b, opts)

	var anyNonBlack bool
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 0 || buf[i+1] != 0 || buf[i+2] != 0 {
			anyNonBlack = true
			break
		}
	}
	if !anyNonBlack {
		t.Error("expected at least one pixel to carry reflected emission through the mirror")
	}
}

func TestRender_ShadowedFloorIsDarkerThanLit(t *testing.T) {
	sc := scene.New("shadow-scene")
	floor := material.Material{Albedo: core.NewVec3(0.8, 0.8, 0.8), Roughness: 1}
	sc.Add(geometry.NewRect(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec2(6, 6), floor))
	sc.Add(geometry.NewRect(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), core.NewVec2(1, 1), material.NewEmissive(core.NewVec3(8, 8, 8))))
	blocker := material.Material{Albedo: core.NewVec3(0.1, 0.1, 0.1), Roughness: 1}
	sc.Add(geometry.NewAxisAlignedBox(core.NewVec3(0, 0.5, 0), core.NewVec3(0.5, 0.5, 0.5), blocker))

	cam := NewCamera(core.NewVec3(0, 3, 5), core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), 50)
	b := brdf.Disney{}
	opts := testOptions(24, 24, 8, 3, 1)

	buf := Render(sc, cam, b, opts)
	if len(buf) != opts.Width*opts.Height*4 {
		t.Fatalf("expected buffer of length %d, got %d", opts.Width*opts.Height*4, len(buf))
	}

	// Pixel (12,12) sees the floor directly under the blocker; pixel
	// (12,20) sees the floor well outside its shadow.
	shadowed := (12*opts.Width + 12) * 4
	lit := (20*opts.Width + 12) * 4
	if buf[shadowed] >= buf[lit] {
		t.Errorf("expected shadowed floor pixel (%d) to be darker than lit floor pixel (%d)", buf[shadowed], buf[lit])
	}
}
