package geometry

import (
	"math"

	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/material"
)

// Rect is a finite planar rectangle defined by its center, unit
// normal, and 2-D extent measured along two in-plane axes derived from
// the normal.
type Rect struct {
	Center core.Vec3
	Normal core.Vec3
	Size   core.Vec2 // full extent along the two in-plane axes
	Mat    material.Material

	u, v core.Vec3 // cached in-plane axes
}

// NewRect creates a new rectangle. Normal need not be pre-normalized.
func NewRect(center, normal core.Vec3, size core.Vec2, mat material.Material) *Rect {
	n := normal.Normalize()
	u, v := core.OrthonormalBasis(n)
	return &Rect{Center: center, Normal: n, Size: size, Mat: mat, u: u, v: v}
}

// Material returns the rectangle's material.
func (r *Rect) Material() *material.Material { return &r.Mat }

// Area returns size.x * size.y.
func (r *Rect) Area() float64 { return r.Size.X * r.Size.Y }

// SamplePoint draws a point uniformly within the rectangle by sampling
// two uniforms in [-size/2, size/2] along the plane's in-plane axes.
func (r *Rect) SamplePoint(rng *core.RNG) PointOnSurface {
	u1, u2 := rng.Float64Pair()
	du := (u1 - 0.5) * r.Size.X
	dv := (u2 - 0.5) * r.Size.Y
	point := r.Center.Add(r.u.Multiply(du)).Add(r.v.Multiply(dv))
	return PointOnSurface{Point: point, Normal: r.Normal}
}

// Intersect performs an infinite-plane ray test, then accepts the hit
// iff its projection onto the plane's local axes lies within ±size/2.
func (r *Rect) Intersect(ray core.Ray, tMin, tMax float64, index int) (HitRecord, bool) {
	denom := ray.Direction.Dot(r.Normal)
	if math.Abs(denom) < 1e-5 {
		return HitRecord{}, false
	}

	t := r.Center.Subtract(ray.Origin).Dot(r.Normal) / denom
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}

	point := ray.At(t)
	offset := point.Subtract(r.Center)
	localU := offset.Dot(r.u)
	localV := offset.Dot(r.v)

	if math.Abs(localU) > r.Size.X/2 || math.Abs(localV) > r.Size.Y/2 {
		return HitRecord{}, false
	}

	hit := HitRecord{T: t, Point: point, PrimitiveIndex: index}
	hit.SetFaceNormal(ray, r.Normal)
	return hit, true
}

// BoundingBox returns an axis-aligned bounding box around the
// rectangle's four corners, thickened by a small epsilon along the
// normal so degenerate (zero-thickness) planes still pass the AABB
// slab test.
func (r *Rect) BoundingBox() core.AABB {
	halfU := r.u.Multiply(r.Size.X / 2)
	halfV := r.v.Multiply(r.Size.Y / 2)

	corners := []core.Vec3{
		r.Center.Add(halfU).Add(halfV),
		r.Center.Add(halfU).Subtract(halfV),
		r.Center.Subtract(halfU).Add(halfV),
		r.Center.Subtract(halfU).Subtract(halfV),
	}

	const epsilon = 1e-4
	pad := r.Normal.Abs().Multiply(epsilon)
	box := core.NewAABBFromPoints(corners...)
	return core.NewAABB(box.Min.Subtract(pad), box.Max.Add(pad))
}
