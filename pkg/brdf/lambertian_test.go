package brdf

import (
	"math"
	"testing"

	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/material"
)

func TestLambertian_IsDelta(t *testing.T) {
	if (Lambertian{}).IsDelta(&material.Material{}) {
		t.Errorf("lambertian should never be delta")
	}
}

func TestLambertian_Eval_BelowHemisphere(t *testing.T) {
	mat := material.NewLambertianLike(core.NewVec3(0.8, 0.8, 0.8))
	normal := core.NewVec3(0, 0, 1)
	light := core.NewVec3(0, 0, -1)
	view := core.NewVec3(0, 0, 1)

	result := Lambertian{}.Eval(view, normal, light, &mat)
	if result.PDF != 0 || !result.F.IsZero() {
		t.Errorf("expected zero contribution below hemisphere, got %+v", result)
	}
}

func TestLambertian_Eval_MatchesAlbedoOverPi(t *testing.T) {
	mat := material.NewLambertianLike(core.NewVec3(0.5, 0.6, 0.7))
	normal := core.NewVec3(0, 0, 1)
	light := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, 1)

	result := Lambertian{}.Eval(view, normal, light, &mat)
	expected := mat.Albedo.Multiply(1 / math.Pi)
	if !result.F.Equals(expected) {
		t.Errorf("expected f_r=%v, got %v", expected, result.F)
	}
	if math.Abs(result.PDF-1/math.Pi) > 1e-9 {
		t.Errorf("expected pdf=%f, got %f", 1/math.Pi, result.PDF)
	}
}

func TestLambertian_Sample_AttenuationIsAlbedo(t *testing.T) {
	mat := material.NewLambertianLike(core.NewVec3(0.3, 0.4, 0.5))
	normal := core.NewVec3(0, 1, 0)
	view := core.NewVec3(0, 1, 0)
	rng := core.NewRNG(1, 0)

	for i := 0; i < 50; i++ {
		sample := Lambertian{}.Sample(view, normal, &mat, rng)
		if sample.PDF <= 0 {
			t.Fatalf("expected positive pdf, got %f", sample.PDF)
		}
		if !sample.Attenuation.Equals(mat.Albedo) {
			t.Errorf("expected attenuation=albedo=%v, got %v", mat.Albedo, sample.Attenuation)
		}
		if normal.Dot(sample.Direction) <= 0 {
			t.Errorf("sampled direction below hemisphere: %v", sample.Direction)
		}
	}
}
