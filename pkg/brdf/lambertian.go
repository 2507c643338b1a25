package brdf

import (
	"math"

	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/material"
)

// Lambertian is a pure diffuse BRDF: f_r = albedo/π, pdf = cosine-weighted
// hemisphere. Grounded on the teacher's lambertian.go Scatter method,
// reshaped into the Eval/Sample split this package's interface requires.
type Lambertian struct{}

// IsDelta is always false for Lambertian.
func (Lambertian) IsDelta(*material.Material) bool { return false }

// Eval returns {albedo/π, max(n·l,0)/π}.
func (Lambertian) Eval(view, normal, light core.Vec3, mat *material.Material) EvalResult {
	cosTheta := normal.Dot(light)
	if cosTheta <= 0 {
		return EvalResult{}
	}
	return EvalResult{
		F:   mat.Albedo.Multiply(1 / math.Pi),
		PDF: cosTheta / math.Pi,
	}
}

// Sample draws a cosine-weighted hemisphere direction; the attenuation
// simplifies to albedo since f_r·(n·l)/pdf = (albedo/π)·cosθ/(cosθ/π).
func (Lambertian) Sample(view, normal core.Vec3, mat *material.Material, rng *core.RNG) Sample {
	direction := core.RandomCosineDirection(normal, rng)
	cosTheta := normal.Dot(direction)
	if cosTheta <= 0 {
		return Sample{}
	}
	pdf := cosTheta / math.Pi
	if pdf < pdfEpsilon {
		return Sample{}
	}
	return Sample{
		Direction:   direction,
		Attenuation: mat.Albedo,
		PDF:         pdf,
	}
}
