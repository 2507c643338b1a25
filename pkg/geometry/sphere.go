package geometry

import (
	"math"

	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/material"
)

// Sphere is a sphere primitive defined by center and radius. A
// negative radius keeps the same geometric sphere but flips the
// outward-normal convention (the classic "hollow sphere" trick): the
// 1/Radius scale in Intersect's outward-normal computation changes
// sign, so a negative-radius sphere can enclose a scene and still
// present its normal toward the interior for front-face NEE/MIS hits.
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Material returns the sphere's material.
func (s *Sphere) Material() *material.Material { return &s.Mat }

// Area returns the sphere's surface area, 4πr².
func (s *Sphere) Area() float64 { return 4 * math.Pi * s.Radius * s.Radius }

// SamplePoint draws a point uniformly over the sphere's surface using
// uniform spherical coordinates: φ uniform in [0,2π), cosθ uniform in
// [-1,1].
func (s *Sphere) SamplePoint(rng *core.RNG) PointOnSurface {
	u1, u2 := rng.Float64Pair()
	cosTheta := 1 - 2*u1
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u2

	localNormal := core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return PointOnSurface{
		Point:  s.Center.Add(localNormal.Multiply(s.Radius)),
		Normal: localNormal,
	}
}

// Intersect solves the ray-sphere quadratic and returns the nearest
// root inside [tMin, tMax], trying the far root when the near root is
// clipped by tMin.
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64, index int) (HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	hit := HitRecord{T: root, Point: point, PrimitiveIndex: index}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s *Sphere) BoundingBox() core.AABB {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}
