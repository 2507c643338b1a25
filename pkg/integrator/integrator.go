// Package integrator implements the rendering-equation estimator: an
// iterative, throughput-accumulating unidirectional path tracer with
// next-event estimation and balance-heuristic multiple importance
// sampling. Grounded on the teacher's pkg/integrator, generalized from
// its recursive, Russian-roulette-enabled form to the fixed-bounce,
// iterative form this engine requires (see path_tracing.go).
package integrator

import (
	"github.com/brightforge/pathtracer/pkg/brdf"
	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/scene"
)

// Integrator estimates the outgoing radiance along a primary ray.
type Integrator interface {
	RayColor(ray core.Ray, sc *scene.Scene, b brdf.BRDF, rng *core.RNG) core.Vec3
}
