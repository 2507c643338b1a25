// Package scene holds the primitive registry the integrator queries:
// a flat, insertion-ordered list of geometry.Primitive plus a cached
// emissive sub-index for light sampling. Grounded on the teacher's
// pkg/scene/scene.go Scene type, stripped of its BVH/lights-package/
// camera-config fields (those are non-goals here — see DESIGN.md) and
// rebuilt around the flat primitive-list query §4.3 calls for.
package scene

import (
	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/geometry"
)

// Scene is an ordered collection of primitives. Index order is the
// insertion order; closest-hit ties are broken in favor of the
// earlier-added primitive.
type Scene struct {
	Name       string
	Primitives []geometry.Primitive

	// emissiveIndices caches the index of every primitive whose
	// material is emissive, so SampleLight doesn't rescan Primitives.
	emissiveIndices []int
}

// New creates an empty, named scene.
func New(name string) *Scene {
	return &Scene{Name: name}
}

// Add appends a primitive to the scene, updating the emissive cache
// if its material emits light.
func (s *Scene) Add(p geometry.Primitive) {
	index := len(s.Primitives)
	s.Primitives = append(s.Primitives, p)
	if p.Material().IsEmissive {
		s.emissiveIndices = append(s.emissiveIndices, index)
	}
}

// Hit performs closest-hit over the primitive list: for each
// primitive whose AABB is intersected by the ray, test the exact
// intersection and tighten the valid range on success. Ties at equal
// t are broken by insertion order (earlier primitive wins): a later
// candidate replaces the current hit only when it is strictly closer.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (geometry.HitRecord, bool) {
	var closest geometry.HitRecord
	found := false
	closestT := tMax

	for i, p := range s.Primitives {
		if !p.BoundingBox().Hit(ray, tMin, closestT) {
			continue
		}
		if hit, ok := p.Intersect(ray, tMin, closestT, i); ok && (!found || hit.T < closestT) {
			closest = hit
			closestT = hit.T
			found = true
		}
	}

	return closest, found
}

// LightCount returns the number of emissive primitives in the scene.
func (s *Scene) LightCount() int {
	return len(s.emissiveIndices)
}

// SampleLight selects one emissive primitive uniformly at random. ok
// is false when the scene has no emitters.
func (s *Scene) SampleLight(rng *core.RNG) (primitive geometry.Primitive, index int, ok bool) {
	if len(s.emissiveIndices) == 0 {
		return nil, 0, false
	}
	choice := s.emissiveIndices[rng.IntN(len(s.emissiveIndices))]
	return s.Primitives[choice], choice, true
}
