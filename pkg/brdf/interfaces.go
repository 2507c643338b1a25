// Package brdf implements the surface scattering models evaluated and
// sampled over a material.Material: a plain Lambertian diffuse model
// and the three-lobe Disney principled BRDF. This package has no
// teacher analogue — the teacher's scattering behavior lived on the
// material types themselves (pkg/material's Scatter/EvaluateBRDF/PDF
// methods) — so BRDF here is the polymorphic axis, and material.Material
// is a plain parameter block shared by every implementation.
package brdf

import (
	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/material"
)

// EvalResult is the value and sampling density returned by Eval.
type EvalResult struct {
	F   core.Vec3
	PDF float64
}

// Sample is the outgoing direction and throughput multiplier returned
// by Sample.
type Sample struct {
	Direction   core.Vec3
	Attenuation core.Vec3
	PDF         float64
}

// BRDF is the scattering model evaluated and sampled over a material.
// view and light both point away from the surface (view = -ray.direction).
type BRDF interface {
	// IsDelta reports whether the material's scattering distribution
	// under this BRDF is a Dirac delta. NEE and BRDF-sample MIS must
	// skip delta surfaces; only BRDF sampling can hit them.
	IsDelta(mat *material.Material) bool

	// Eval returns the BRDF value and the pdf (w.r.t. solid angle) of
	// drawing the light direction via Sample. Returns a zero result
	// when normal·light is non-positive.
	Eval(view, normal, light core.Vec3, mat *material.Material) EvalResult

	// Sample draws an outgoing direction and returns the direction,
	// the throughput multiplier f_r·(n·l)/pdf, and the pdf. Returns a
	// zero sample when pdf < 1e-5 or normal·direction <= 0.
	Sample(view, normal core.Vec3, mat *material.Material, rng *core.RNG) Sample
}

const pdfEpsilon = 1e-5
