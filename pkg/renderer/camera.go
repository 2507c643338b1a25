package renderer

import (
	"math"

	"github.com/brightforge/pathtracer/pkg/core"
)

// Camera generates primary rays from a position, forward direction,
// up hint, and vertical field of view. Rebuilt from the teacher's
// simple lowerLeftCorner/horizontal/vertical camera into the
// forward/right/up basis the spec's primary-ray formula calls for.
type Camera struct {
	origin  core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	vfovRad float64
}

// NewCamera creates a camera at position looking toward lookAt, with
// the given up hint and vertical field of view in degrees.
func NewCamera(position, lookAt, upHint core.Vec3, vfovDegrees float64) *Camera {
	forward := lookAt.Subtract(position).Normalize()
	right := forward.Cross(upHint).Normalize()
	up := right.Cross(forward).Normalize()

	return &Camera{
		origin:  position,
		forward: forward,
		right:   right,
		up:      up,
		vfovRad: vfovDegrees * math.Pi / 180,
	}
}

// Ray builds the primary ray for normalized pixel coordinates
// (u, v) ∈ [0,1]² and the given aspect ratio (width/height).
func (c *Camera) Ray(u, v, aspectRatio float64) core.Ray {
	ndcX := 2*u - 1
	ndcY := 1 - 2*v

	s := math.Tan(c.vfovRad / 2)
	localX := ndcX * aspectRatio * s
	localY := ndcY * s

	direction := c.forward.
		Add(c.right.Multiply(localX)).
		Add(c.up.Multiply(localY)).
		Normalize()

	return core.NewRay(c.origin, direction)
}
