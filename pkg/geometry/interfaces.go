// Package geometry implements the primitives the scene is built from:
// sphere, axis-aligned rectangle, and quaternion-rotated box. Each
// primitive is a capability interface rather than a closed variant
// type, following the teacher repo's Shape-interface-over-slice
// convention, so the scene's closest-hit query stays free of
// per-variant branching.
package geometry

import (
	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/material"
)

// HitRecord describes where a ray hit a primitive. Normal is always
// flipped to oppose the ray (normal·ray.Direction < 0). PrimitiveIndex
// names the primitive by position in the scene's primitive slice
// rather than by pointer, keeping HitRecord trivially copyable across
// goroutines.
type HitRecord struct {
	Point          core.Vec3
	Normal         core.Vec3
	T              float64
	FrontFace      bool
	PrimitiveIndex int
}

// SetFaceNormal orients Normal to oppose the ray and records whether
// the hit landed on the primitive's outward-facing side.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// PointOnSurface is a point drawn from a primitive's uniform area
// measure, together with the outward normal at that point.
type PointOnSurface struct {
	Point  core.Vec3
	Normal core.Vec3
}

// Primitive is the capability set every scene object implements:
// material lookup, surface area, uniform area sampling, bounding-box
// query, and ray intersection.
type Primitive interface {
	Material() *material.Material
	Area() float64
	SamplePoint(rng *core.RNG) PointOnSurface
	BoundingBox() core.AABB
	Intersect(ray core.Ray, tMin, tMax float64, index int) (HitRecord, bool)
}
