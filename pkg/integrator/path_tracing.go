package integrator

import (
	"math"

	"github.com/brightforge/pathtracer/pkg/brdf"
	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/geometry"
	"github.com/brightforge/pathtracer/pkg/material"
	"github.com/brightforge/pathtracer/pkg/scene"
)

const (
	hitEpsilon = 1e-5
	pdfFloor   = 1e-5
)

// PathTracingIntegrator implements unidirectional path tracing with
// next-event estimation and MIS. Unlike the teacher's
// rayColorRecursive, this integrator runs an iterative loop with
// explicit throughput accumulation rather than recursion, and carries
// no Russian roulette: the bounce budget is fixed at MaxDepth.
type PathTracingIntegrator struct {
	MaxDepth int
	Logger   core.Logger
}

// NewPathTracingIntegrator creates a new path tracing integrator with
// the given maximum bounce depth. A nil logger is replaced with a
// no-op logger so callers never need a nil check.
func NewPathTracingIntegrator(maxDepth int, logger core.Logger) *PathTracingIntegrator {
	if logger == nil {
		logger = core.NewNoopLogger()
	}
	return &PathTracingIntegrator{MaxDepth: maxDepth, Logger: logger}
}

// RayColor estimates the outgoing radiance along ray by iterating the
// rendering equation up to MaxDepth bounces.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, b brdf.BRDF, rng *core.RNG) core.Vec3 {
	result := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	hit, hasHit := sc.Hit(ray, hitEpsilon, math.Inf(1))

	for i := 0; i < pt.MaxDepth; i++ {
		if !hasHit || !hit.FrontFace {
			break
		}

		mat := sc.Primitives[hit.PrimitiveIndex].Material()

		if mat.IsEmissive {
			result = result.Add(throughput.MultiplyVec(mat.Emission))
			break
		}

		isDelta := b.IsDelta(mat)
		view := ray.Direction.Negate()

		if !isDelta {
			result = result.Add(throughput.MultiplyVec(pt.nextEventEstimation(hit, sc, b, view, mat, rng)))
		}

		sample := b.Sample(view, hit.Normal, mat, rng)
		if sample.Attenuation.LengthSquared() < pdfFloor || sample.PDF < pdfFloor {
			break
		}

		nextOrigin := hit.Point.Add(hit.Normal.Multiply(hitEpsilon))
		nextRay := core.NewRay(nextOrigin, sample.Direction)
		nextHit, nextHasHit := sc.Hit(nextRay, hitEpsilon, math.Inf(1))

		if nextHasHit && nextHit.FrontFace {
			nextMat := sc.Primitives[nextHit.PrimitiveIndex].Material()
			if nextMat.IsEmissive {
				if isDelta {
					result = result.Add(throughput.MultiplyVec(nextMat.Emission).MultiplyVec(sample.Attenuation))
				} else {
					weight := pt.brdfSampleMISWeight(sc, nextHit, nextRay, sample.PDF)
					contribution := throughput.MultiplyVec(nextMat.Emission).MultiplyVec(sample.Attenuation).Multiply(weight)
					result = result.Add(contribution)
				}
				break
			}

			throughput = throughput.MultiplyVec(sample.Attenuation)
			ray = nextRay
			hit = nextHit
			hasHit = true
			continue
		}

		break
	}

	return result
}

// nextEventEstimation implements §4.5.1: select one emissive
// primitive uniformly, sample a surface point on it by area, cast a
// shadow ray, and weight the geometric contribution by the balance-
// heuristic MIS weight against the BRDF's own sampling density.
func (pt *PathTracingIntegrator) nextEventEstimation(hit geometry.HitRecord, sc *scene.Scene, b brdf.BRDF, view core.Vec3, mat *material.Material, rng *core.RNG) core.Vec3 {
	lightPrimitive, lightIndex, ok := sc.SampleLight(rng)
	if !ok {
		return core.Vec3{}
	}
	numLights := float64(sc.LightCount())

	surfacePoint := lightPrimitive.SamplePoint(rng)
	area := lightPrimitive.Area()
	if area < pdfFloor {
		return core.Vec3{}
	}

	d := surfacePoint.Point.Subtract(hit.Point)
	rSquared := d.Dot(d)
	if rSquared < pdfFloor {
		return core.Vec3{}
	}
	distance := math.Sqrt(rSquared)
	omega := d.Multiply(1 / distance)

	cosThetaX := math.Max(hit.Normal.Dot(omega), 0)
	cosThetaY := math.Max(surfacePoint.Normal.Dot(omega.Negate()), 0)
	if cosThetaY < pdfFloor {
		return core.Vec3{}
	}

	shadowOrigin := hit.Point.Add(hit.Normal.Multiply(hitEpsilon))
	shadowRay := core.NewRay(shadowOrigin, omega)
	shadowHit, shadowHasHit := sc.Hit(shadowRay, hitEpsilon, distance-hitEpsilon)
	if shadowHasHit && shadowHit.PrimitiveIndex != lightIndex {
		return core.Vec3{}
	}

	eval := b.Eval(view, hit.Normal, omega, mat)
	pdfLight := rSquared / (cosThetaY * area * numLights)
	if eval.PDF < pdfFloor && pdfLight < pdfFloor {
		return core.Vec3{}
	}

	weightLight := core.BalanceHeuristic(pdfLight, eval.PDF)
	emission := lightPrimitive.Material().Emission

	return emission.MultiplyVec(eval.F).Multiply(cosThetaX * cosThetaY / rSquared * area * numLights * weightLight)
}

// brdfSampleMISWeight implements §4.5.2: the MIS weight applied to a
// bounce that lands on an emitter from a non-delta surface.
func (pt *PathTracingIntegrator) brdfSampleMISWeight(sc *scene.Scene, nextHit geometry.HitRecord, nextRay core.Ray, brdfPDF float64) float64 {
	lightPrimitive := sc.Primitives[nextHit.PrimitiveIndex]
	area := lightPrimitive.Area()
	numLights := float64(sc.LightCount())

	cosThetaY := math.Max(nextHit.Normal.Dot(nextRay.Direction.Negate()), 0)
	if cosThetaY < pdfFloor || area < pdfFloor {
		return 0
	}

	d := nextHit.Point.Subtract(nextRay.Origin)
	rSquared := d.Dot(d)
	pdfLight := rSquared / (cosThetaY * area * numLights)

	return core.BalanceHeuristic(brdfPDF, pdfLight)
}
