package geometry

import (
	"math"

	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/material"
)

// Box is an axis-aligned-in-local-space box with an arbitrary
// quaternion rotation, stored as center, half-extent, and orientation.
// Unlike the teacher's six-quad box, intersection here is a single
// local-frame slab test against the half-extent, with the ray
// transformed into local space by the quaternion's inverse rotation.
type Box struct {
	Center   core.Vec3
	HalfSize core.Vec3 // half-extent along each local axis
	Rotation core.Quaternion
	Mat      material.Material

	bbox core.AABB
}

// NewBox creates a new box with the given center, half-extent, unit
// quaternion rotation, and material.
func NewBox(center, halfSize core.Vec3, rotation core.Quaternion, mat material.Material) *Box {
	b := &Box{Center: center, HalfSize: halfSize, Rotation: rotation, Mat: mat}
	extent := rotation.RotatedExtent(halfSize)
	b.bbox = core.NewAABB(center.Subtract(extent), center.Add(extent))
	return b
}

// NewAxisAlignedBox creates a box with no rotation.
func NewAxisAlignedBox(center, halfSize core.Vec3, mat material.Material) *Box {
	return NewBox(center, halfSize, core.QuaternionIdentity(), mat)
}

// Material returns the box's material.
func (b *Box) Material() *material.Material { return &b.Mat }

// Area returns the box's surface area, 2(xy+yz+zx) computed from the
// full extents (2·HalfSize).
func (b *Box) Area() float64 {
	x, y, z := 2*b.HalfSize.X, 2*b.HalfSize.Y, 2*b.HalfSize.Z
	return 2 * (x*y + y*z + z*x)
}

// faceAreas returns the area of each of the six local faces, in the
// fixed order -X, +X, -Y, +Y, -Z, +Z.
func (b *Box) faceAreas() [6]float64 {
	yz := 4 * b.HalfSize.Y * b.HalfSize.Z
	xz := 4 * b.HalfSize.X * b.HalfSize.Z
	xy := 4 * b.HalfSize.X * b.HalfSize.Y
	return [6]float64{yz, yz, xz, xz, xy, xy}
}

// SamplePoint picks a face with probability proportional to its area,
// samples uniformly within that face in local space, then transforms
// the result to world space.
func (b *Box) SamplePoint(rng *core.RNG) PointOnSurface {
	areas := b.faceAreas()
	total := areas[0] + areas[1] + areas[2] + areas[3] + areas[4] + areas[5]

	target := rng.Float64() * total
	face := 0
	for i, a := range areas {
		if target < a {
			face = i
			break
		}
		target -= a
		face = i
	}

	u1, u2 := rng.Float64Pair()
	s1 := (u1 - 0.5) * 2
	s2 := (u2 - 0.5) * 2

	var localPoint, localNormal core.Vec3
	switch face {
	case 0: // -X
		localPoint = core.NewVec3(-b.HalfSize.X, s1*b.HalfSize.Y, s2*b.HalfSize.Z)
		localNormal = core.NewVec3(-1, 0, 0)
	case 1: // +X
		localPoint = core.NewVec3(b.HalfSize.X, s1*b.HalfSize.Y, s2*b.HalfSize.Z)
		localNormal = core.NewVec3(1, 0, 0)
	case 2: // -Y
		localPoint = core.NewVec3(s1*b.HalfSize.X, -b.HalfSize.Y, s2*b.HalfSize.Z)
		localNormal = core.NewVec3(0, -1, 0)
	case 3: // +Y
		localPoint = core.NewVec3(s1*b.HalfSize.X, b.HalfSize.Y, s2*b.HalfSize.Z)
		localNormal = core.NewVec3(0, 1, 0)
	case 4: // -Z
		localPoint = core.NewVec3(s1*b.HalfSize.X, s2*b.HalfSize.Y, -b.HalfSize.Z)
		localNormal = core.NewVec3(0, 0, -1)
	default: // +Z
		localPoint = core.NewVec3(s1*b.HalfSize.X, s2*b.HalfSize.Y, b.HalfSize.Z)
		localNormal = core.NewVec3(0, 0, 1)
	}

	return PointOnSurface{
		Point:  b.Center.Add(b.Rotation.RotateVector(localPoint)),
		Normal: b.Rotation.RotateVector(localNormal),
	}
}

// Intersect transforms the ray into the box's local frame via the
// inverse rotation, performs a slab intersection over the three local
// axes while tracking the entry face (or the exit face when the entry
// lies before tMin, i.e. the ray starts inside the box), and rotates the
// resulting local normal back to world space.
func (b *Box) Intersect(ray core.Ray, tMin, tMax float64, index int) (HitRecord, bool) {
	localOrigin := b.Rotation.InverseRotateVector(ray.Origin.Subtract(b.Center))
	localDir := b.Rotation.InverseRotateVector(ray.Direction)

	tNear, tFar := math.Inf(-1), math.Inf(1)
	var enterAxis, exitAxis int
	var enterSign, exitSign float64

	axesOrigin := [3]float64{localOrigin.X, localOrigin.Y, localOrigin.Z}
	axesDir := [3]float64{localDir.X, localDir.Y, localDir.Z}
	axesHalf := [3]float64{b.HalfSize.X, b.HalfSize.Y, b.HalfSize.Z}

	for axis := 0; axis < 3; axis++ {
		origin, dir, half := axesOrigin[axis], axesDir[axis], axesHalf[axis]

		if math.Abs(dir) < 1e-9 {
			if origin < -half || origin > half {
				return HitRecord{}, false
			}
			continue
		}

		invDir := 1.0 / dir
		t1 := (-half - origin) * invDir
		t2 := (half - origin) * invDir
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}

		if t1 > tNear {
			tNear = t1
			enterAxis = axis
			enterSign = sign
		}
		if t2 < tFar {
			tFar = t2
			exitAxis = axis
			exitSign = -sign
		}
		if tNear > tFar {
			return HitRecord{}, false
		}
	}

	t, hitAxis, hitSign := tNear, enterAxis, enterSign
	if t < tMin {
		t, hitAxis, hitSign = tFar, exitAxis, exitSign
	}
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}

	var localNormal core.Vec3
	switch hitAxis {
	case 0:
		localNormal = core.NewVec3(hitSign, 0, 0)
	case 1:
		localNormal = core.NewVec3(0, hitSign, 0)
	default:
		localNormal = core.NewVec3(0, 0, hitSign)
	}

	worldNormal := b.Rotation.RotateVector(localNormal)
	point := ray.At(t)

	hit := HitRecord{T: t, Point: point, PrimitiveIndex: index}
	hit.SetFaceNormal(ray, worldNormal)
	return hit, true
}

// BoundingBox returns the cached world-space axis-aligned bounding box.
func (b *Box) BoundingBox() core.AABB { return b.bbox }
