package renderer

import (
	"math"
	"testing"

	"github.com/brightforge/pathtracer/pkg/core"
)

func TestCamera_CenterRayPointsAtLookAt(t *testing.T) {
	position := core.NewVec3(0, 0, 3.25)
	lookAt := core.NewVec3(0, 0, 0)
	cam := NewCamera(position, lookAt, core.NewVec3(0, 1, 0), 60)

	ray := cam.Ray(0.5, 0.5, 1.0)
	expectedDir := lookAt.Subtract(position).Normalize()

	if ray.Direction.Subtract(expectedDir).Length() > 1e-9 {
		t.Errorf("expected center ray direction %v, got %v", expectedDir, ray.Direction)
	}
}

func TestCamera_RayDirectionIsNormalized(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 90)

	for _, uv := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.25, 0.75}} {
		ray := cam.Ray(uv[0], uv[1], 1.6)
		if math.Abs(ray.Direction.Length()-1) > 1e-9 {
			t.Errorf("expected unit-length direction for uv=%v, got length %f", uv, ray.Direction.Length())
		}
	}
}

func TestCamera_CornersDivergeSymmetrically(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 60)

	topLeft := cam.Ray(0, 0, 1.0)
	bottomRight := cam.Ray(1, 1, 1.0)

	// Opposite corners should be roughly mirrored around the center ray.
	center := cam.Ray(0.5, 0.5, 1.0)
	dTL := topLeft.Direction.Subtract(center.Direction)
	dBR := bottomRight.Direction.Subtract(center.Direction)

	// Both corners deviate equally along the center ray itself, so only the
	// part of the sum perpendicular to the center ray must cancel.
	sum := dTL.Add(dBR)
	perpendicular := sum.Subtract(center.Direction.Multiply(sum.Dot(center.Direction)))
	if perpendicular.Length() > 1e-6 {
		t.Errorf("expected symmetric corner divergence, got %v and %v", dTL, dBR)
	}
}

func TestCamera_OriginMatchesPosition(t *testing.T) {
	position := core.NewVec3(1, 2, 3)
	cam := NewCamera(position, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 45)
	ray := cam.Ray(0.5, 0.5, 1.0)

	if !ray.Origin.Equals(position) {
		t.Errorf("expected ray origin %v, got %v", position, ray.Origin)
	}
}
