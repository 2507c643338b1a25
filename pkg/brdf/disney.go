package brdf

import (
	"math"

	"github.com/brightforge/pathtracer/pkg/core"
	"github.com/brightforge/pathtracer/pkg/material"
)

// Disney is the three-lobe Disney principled BRDF: a Fresnel-weighted
// diffuse lobe, a GTR2/GGX specular microfacet lobe, and a GTR1
// clearcoat lobe. Helper function shapes (distribution/fresnel/
// geometry/diffuse/specular/clearcoat terms) are grounded on the
// original_source Disney stub; the lobe-selection sampling and joint
// pdf composition follow from first principles since that stub never
// implemented eval/sample itself.
type Disney struct{}

const clearcoatF0 = 0.04
const clearcoatFixedRoughness = 0.25

// IsDelta reports the surface as a perfect mirror when it is both
// fully smooth and fully metallic.
func (Disney) IsDelta(mat *material.Material) bool {
	return mat.Roughness < 1e-5 && math.Abs(1-mat.Metallic) < 1e-5
}

func lobeWeights(mat *material.Material) (pClearcoat, pSpecular, pDiffuse float64) {
	pClearcoat = 0.25 * mat.Clearcoat
	pBase := 1 - pClearcoat
	pSpecular = pBase * (mat.Metallic + (1-mat.Metallic)*mat.Specular)
	pDiffuse = pBase * (1 - mat.Metallic) * (1 - mat.Specular)
	return
}

func schlickFresnel(cosine float64) float64 {
	m := clamp01(1 - cosine)
	m2 := m * m
	return m2 * m2 * m
}

func fresnelTerm(lDotH float64, f0 core.Vec3) core.Vec3 {
	fc := schlickFresnel(lDotH)
	return f0.Add(core.NewVec3(1, 1, 1).Subtract(f0).Multiply(fc))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func distributionGTR2(nDotH, roughness float64) float64 {
	alpha := roughness * roughness
	alpha2 := alpha * alpha
	denomCore := nDotH*nDotH*(alpha2-1) + 1
	denom := math.Pi * denomCore * denomCore
	return alpha2 / math.Max(denom, 1e-5)
}

func distributionGTR1(nDotH, gloss float64) float64 {
	alpha := core.LerpF(0.1, 0.001, gloss)
	alpha2 := alpha * alpha
	denomCore := nDotH*nDotH*(alpha2-1) + 1

	var c float64
	if math.Abs(alpha2-1) < 1e-5 {
		c = 1 / math.Pi
	} else {
		c = (alpha2 - 1) / (math.Pi * math.Log(alpha2))
	}
	return c / math.Max(denomCore, 1e-5)
}

func smithG1(nDotX, k float64) float64 {
	return nDotX / math.Max(nDotX*(1-k)+k, 1e-5)
}

func geometryTerm(nDotV, nDotL, roughness float64) float64 {
	k := (roughness + 1) * (roughness + 1) / 8
	return smithG1(nDotV, k) * smithG1(nDotL, k)
}

func diffuseTerm(nDotV, nDotL, lDotH, roughness float64, albedo core.Vec3) core.Vec3 {
	fd90 := 0.5 + 2*roughness*lDotH*lDotH
	fdv := 1 + (fd90-1)*math.Pow(1-nDotV, 5)
	fdl := 1 + (fd90-1)*math.Pow(1-nDotL, 5)
	scalar := math.Max(fdv*fdl/math.Pi, 0)
	return albedo.Multiply(scalar)
}

func specularTerm(nDotV, nDotL, nDotH, lDotH float64, roughness float64, f0 core.Vec3) core.Vec3 {
	d := distributionGTR2(nDotH, roughness)
	f := fresnelTerm(lDotH, f0)
	g := geometryTerm(nDotV, nDotL, roughness)
	denom := math.Max(4*nDotV*nDotL, 1e-5)
	return f.Multiply(d * g / denom)
}

func clearcoatTerm(nDotV, nDotL, nDotH, lDotH float64, gloss float64) core.Vec3 {
	d := distributionGTR1(nDotH, gloss)
	f := fresnelTerm(lDotH, core.NewVec3(clearcoatF0, clearcoatF0, clearcoatF0))
	g := geometryTerm(nDotV, nDotL, clearcoatFixedRoughness)
	denom := math.Max(4*nDotV*nDotL, 1e-5)
	return f.Multiply(d * g / denom)
}

// Eval composes the three lobes into a single BRDF value and returns
// the joint sampling pdf used by Sample and by NEE's MIS weighting.
func (Disney) Eval(view, normal, light core.Vec3, mat *material.Material) EvalResult {
	nDotL := normal.Dot(light)
	if nDotL < 1e-5 {
		return EvalResult{}
	}
	nDotV := normal.Dot(view)

	half := view.Add(light)
	if half.LengthSquared() < 1e-10 {
		return EvalResult{}
	}
	half = half.Normalize()
	nDotH := normal.Dot(half)
	lDotH := light.Dot(half)

	f0 := core.Lerp(core.NewVec3(mat.Specular*0.08, mat.Specular*0.08, mat.Specular*0.08), mat.Albedo, mat.Metallic)

	diffuseWeight := (1 - mat.Metallic) * (1 - mat.Specular)
	diffuse := diffuseTerm(nDotV, nDotL, lDotH, mat.Roughness, mat.Albedo)
	specular := specularTerm(nDotV, nDotL, nDotH, lDotH, mat.Roughness, f0)
	clearcoat := clearcoatTerm(nDotV, nDotL, nDotH, lDotH, mat.ClearcoatGloss)

	fr := clearcoat.
		Add(specular.Multiply(1 - diffuseWeight)).
		Add(diffuse.Multiply(diffuseWeight))

	pClearcoat, pSpecular, pDiffuse := lobeWeights(mat)
	vDotH := math.Max(view.Dot(half), 1e-5)

	pdfGTR1 := distributionGTR1(nDotH, mat.ClearcoatGloss) * nDotH / (4 * vDotH)
	pdfGTR2 := distributionGTR2(nDotH, mat.Roughness) * nDotH / (4 * vDotH)
	pdfCosine := core.CosineHemispherePDF(nDotL)

	pdf := pClearcoat*pdfGTR1 + pSpecular*pdfGTR2 + pDiffuse*pdfCosine

	return EvalResult{F: fr, PDF: pdf}
}

// Sample draws an outgoing direction by selecting one of the three
// lobes, then re-evaluates via Eval so the returned f_r and pdf can
// never drift apart from what Eval would compute for that direction.
//
// A delta surface (roughness→0, fully metallic) is handled separately:
// distributionGTR2's normalization collapses to 0 at nDotH=1 (a Dirac
// delta has no finite density), so re-evaluating through Eval would
// always yield a zero pdf and silently drop the bounce. Only BRDF
// sampling is allowed to hit a delta surface (NEE skips it via
// IsDelta), so this is the sole path that needs to special-case it.
func (Disney) Sample(view, normal core.Vec3, mat *material.Material, rng *core.RNG) Sample {
	if (Disney{}).IsDelta(mat) {
		return sampleDeltaMirror(view, normal, mat)
	}

	pClearcoat, pSpecular, _ := lobeWeights(mat)

	tangent, bitangent := core.OrthonormalBasis(normal)
	xi := rng.Float64()

	var light core.Vec3
	switch {
	case xi < pClearcoat:
		h := sampleGTR1Half(mat.ClearcoatGloss, rng, tangent, bitangent, normal)
		light = reflectAbout(view, h)
	case xi < pClearcoat+pSpecular:
		h := sampleGTR2Half(mat.Roughness, rng, tangent, bitangent, normal)
		light = reflectAbout(view, h)
	default:
		light = core.RandomCosineDirection(normal, rng)
	}

	if normal.Dot(light) <= 0 {
		return Sample{}
	}

	result := Disney{}.Eval(view, normal, light, mat)
	if result.PDF < pdfEpsilon {
		return Sample{}
	}

	nDotL := normal.Dot(light)
	return Sample{
		Direction:   light,
		Attenuation: result.F.Multiply(nDotL / result.PDF),
		PDF:         result.PDF,
	}
}

// reflectAbout reflects -view about half vector h to obtain the light
// direction symmetric to view about h (both point away from the surface).
func reflectAbout(view, h core.Vec3) core.Vec3 {
	return h.Multiply(2 * view.Dot(h)).Subtract(view)
}

// sampleDeltaMirror handles the perfect-mirror delta surface: the only
// outgoing direction with nonzero density is the exact reflection of
// view about normal, carrying a pdf of 1 and Fresnel-reflectance
// attenuation instead of a finite BRDF value divided by a finite pdf.
func sampleDeltaMirror(view, normal core.Vec3, mat *material.Material) Sample {
	light := reflectAbout(view, normal)
	nDotL := normal.Dot(light)
	if nDotL <= 0 {
		return Sample{}
	}

	f0 := core.Lerp(core.NewVec3(mat.Specular*0.08, mat.Specular*0.08, mat.Specular*0.08), mat.Albedo, mat.Metallic)
	attenuation := fresnelTerm(nDotL, f0)

	return Sample{
		Direction:   light,
		Attenuation: attenuation,
		PDF:         1,
	}
}

func sampleGTR2Half(roughness float64, rng *core.RNG, tangent, bitangent, normal core.Vec3) core.Vec3 {
	alpha := roughness * roughness
	xi1, xi2 := rng.Float64Pair()

	cosTheta := math.Sqrt((1 - xi1) / (1 + (alpha*alpha-1)*xi1))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * xi2

	return localToWorld(sinTheta, cosTheta, phi, tangent, bitangent, normal)
}

func sampleGTR1Half(gloss float64, rng *core.RNG, tangent, bitangent, normal core.Vec3) core.Vec3 {
	alpha := core.LerpF(0.1, 0.001, gloss)
	alpha2 := alpha * alpha
	xi1, xi2 := rng.Float64Pair()

	var cosTheta float64
	if math.Abs(alpha2-1) < 1e-5 {
		cosTheta = math.Sqrt(1 - xi1)
	} else {
		cosTheta = math.Sqrt((1 - math.Pow(alpha2, 1-xi1)) / (1 - alpha2))
	}
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * xi2

	return localToWorld(sinTheta, cosTheta, phi, tangent, bitangent, normal)
}

func localToWorld(sinTheta, cosTheta, phi float64, tangent, bitangent, normal core.Vec3) core.Vec3 {
	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(cosTheta))
}
