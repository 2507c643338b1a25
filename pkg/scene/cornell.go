package scene

import (
	"math"

	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/geometry"
	"github.com/brightforge/pathtracer/pkg/material"
)

// cornellHalfSize is the half-extent of the Cornell box along each
// axis; walls sit at ±cornellHalfSize, matching the emitter at
// y=+1.25 and the camera at z=3.25 looking in from outside the box.
const cornellHalfSize = 1.25

// BuildCornellBox builds the reference Cornell Box scene: unit-albedo
// white walls on the floor/ceiling/back wall, a red left wall, a green
// right wall, a downward-facing area emitter in the ceiling, and two
// interior boxes (one metallic, one dielectric). Adapted from the
// teacher's pkg/scene/cornell.go, rebuilt around geometry.Rect/Box and
// Disney material parameters instead of quads and Lambertian structs.
func BuildCornellBox() *Scene {
	s := New("cornell-box")

	white := material.NewLambertianLike(core.NewVec3(1, 1, 1))
	red := material.NewLambertianLike(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertianLike(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec3(10, 10, 10))

	full := core.NewVec2(2*cornellHalfSize, 2*cornellHalfSize)

	s.Add(geometry.NewRect(core.NewVec3(0, -cornellHalfSize, 0), core.NewVec3(0, 1, 0), full, white))
	s.Add(geometry.NewRect(core.NewVec3(0, cornellHalfSize, 0), core.NewVec3(0, -1, 0), full, white))
	s.Add(geometry.NewRect(core.NewVec3(0, 0, -cornellHalfSize), core.NewVec3(0, 0, 1), full, white))
	s.Add(geometry.NewRect(core.NewVec3(-cornellHalfSize, 0, 0), core.NewVec3(1, 0, 0), full, red))
	s.Add(geometry.NewRect(core.NewVec3(cornellHalfSize, 0, 0), core.NewVec3(-1, 0, 0), full, green))

	s.Add(geometry.NewRect(
		core.NewVec3(0, cornellHalfSize-1e-3, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec2(0.5, 0.5),
		light,
	))

	metal := material.Material{Albedo: core.NewVec3(1, 1, 1), Metallic: 0.8, Roughness: 0.1}
	metalRotation := core.QuaternionFromAxisAngle(core.NewVec3(0, 1, 0), math.Pi/10)
	s.Add(geometry.NewBox(
		core.NewVec3(-0.45, -0.65, -0.3),
		core.NewVec3(0.3, 0.6, 0.3),
		metalRotation,
		metal,
	))

	dielectric := material.Material{Albedo: core.NewVec3(0.9, 0.9, 0.9), Specular: 0.2, Roughness: 0.1}
	dielectricRotation := core.QuaternionFromAxisAngle(core.NewVec3(0, 1, 0), -math.Pi/12)
	s.Add(geometry.NewBox(
		core.NewVec3(0.45, -0.9, 0.3),
		core.NewVec3(0.3, 0.35, 0.3),
		dielectricRotation,
		dielectric,
	))

	return s
}

// BuildFurnaceTest builds the furnace-test scene: a diffuse, unit-
// albedo sphere nested inside a much larger emissive sphere whose
// normal convention is flipped (negative radius) so it radiates
// inward uniformly from every direction. A correct, unbiased
// integrator observes the diffuse sphere converging to the emitter's
// radiance regardless of its albedo's angular distribution.
func BuildFurnaceTest() *Scene {
	s := New("furnace-test")

	innerMat := material.NewLambertianLike(core.NewVec3(1, 1, 1))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, innerMat))

	enclosureMat := material.NewEmissive(core.NewVec3(1, 1, 1))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), -50.0, enclosureMat))

	return s
}

// BuildFrozenEmitters builds the Cornell Box with every emissive
// surface forced to a uniform radiance-1 diffuse white emitter,
// letting the energy-conservation test (§8 scenario 2) assert the
// rendered average never exceeds unity.
func BuildFrozenEmitters() *Scene {
	s := BuildCornellBox()
	frozen := material.NewEmissive(core.NewVec3(1, 1, 1))
	for _, p := range s.Primitives {
		if p.Material().IsEmissive {
			*p.Material() = frozen
		}
	}
	return s
}
