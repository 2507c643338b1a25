// Package material defines the surface parameter block the brdf package
// evaluates and samples. Unlike the teacher repo's Lambertian/Metal/
// Dielectric/Emissive hierarchy of scattering types, this package holds
// a single Disney principled parameter record; the scattering behavior
// itself lives in pkg/brdf, which is the polymorphic axis here (one
// BRDF implementation shared by every primitive, rather than one
// material type per primitive).
package material

import "github.com/brightforge/pathtracer/pkg/core"

// Material is the Disney principled parameter block carried by every
// primitive. Only the six parameters referenced by pkg/brdf's Disney
// BRDF are evaluated; Subsurface, Anisotropic, Sheen, SheenTint, and
// SpecularTint are retained for forward compatibility with a fuller
// Disney implementation but are not read anywhere in this engine.
type Material struct {
	IsEmissive bool
	Emission   core.Vec3

	Albedo    core.Vec3
	Metallic  float64
	Specular  float64
	Roughness float64

	Clearcoat      float64
	ClearcoatGloss float64

	// Reserved, unused by evaluation — see the package doc comment.
	Subsurface   float64
	Anisotropic  float64
	Sheen        float64
	SheenTint    float64
	SpecularTint float64
}

// NewLambertianLike returns a Material that behaves as a pure diffuse
// (Lambertian) surface under the Disney BRDF: zero metallic, zero
// specular, zero clearcoat, fully rough.
func NewLambertianLike(albedo core.Vec3) Material {
	return Material{
		Albedo:    albedo,
		Roughness: 1,
	}
}

// NewEmissive returns a Material that emits light and does not scatter
// (the integrator never calls brdf.Sample on a hit whose only use is
// its emission, but callers building light-only geometry can still lean
// on a fully diffuse, fully absorbing base so stray NEE rays read zero).
func NewEmissive(emission core.Vec3) Material {
	return Material{
		IsEmissive: true,
		Emission:   emission,
		Roughness:  1,
	}
}

// NewMetal returns a Material tuned for a metallic conductor: full
// metallic weight, the given roughness, and albedo doubling as the
// reflectance tint.
func NewMetal(albedo core.Vec3, roughness float64) Material {
	return Material{
		Albedo:    albedo,
		Metallic:  1,
		Roughness: roughness,
	}
}

// NewDielectric returns a Material tuned for a smooth, non-metallic
// dielectric surface (e.g. clear-coated plastic) with the given
// specular reflectance and roughness.
func NewDielectric(albedo core.Vec3, specular, roughness float64) Material {
	return Material{
		Albedo:    albedo,
		Specular:  specular,
		Roughness: roughness,
	}
}
