package core

import (
	"math"
	"testing"
)

func TestRandomCosineDirection(t *testing.T) {
	rng := NewRNG(42, 0)
	normal := NewVec3(0, 0, 1)

	const numSamples = 10000
	var totalCosine float64
	belowHemisphere := 0

	for i := 0; i < numSamples; i++ {
		dir := RandomCosineDirection(normal, rng)

		if math.Abs(dir.Length()-1.0) > 1e-3 {
			t.Errorf("generated direction not unit length: %f", dir.Length())
		}

		cosTheta := dir.Dot(normal)
		if cosTheta < 0 {
			belowHemisphere++
		}
		totalCosine += math.Max(0, cosTheta)
	}

	if belowHemisphere > 0 {
		t.Errorf("found %d rays below hemisphere out of %d", belowHemisphere, numSamples)
	}

	avgCosine := totalCosine / float64(numSamples)
	expectedAvgCosine := 2.0 / 3.0
	if math.Abs(avgCosine-expectedAvgCosine) > 0.05 {
		t.Errorf("average cosine %f doesn't match expected %f", avgCosine, expectedAvgCosine)
	}
}

func TestRandomCosineDirection_OrthonormalBasis(t *testing.T) {
	rng := NewRNG(42, 1)

	testNormals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0.577, 0.577, 0.577).Normalize(),
	}

	for _, normal := range testNormals {
		for i := 0; i < 100; i++ {
			dir := RandomCosineDirection(normal, rng)

			if math.Abs(dir.Length()-1.0) > 1e-3 {
				t.Errorf("non-unit direction for normal %v: length=%f", normal, dir.Length())
			}

			cosTheta := dir.Dot(normal)
			if cosTheta < -1e-9 {
				t.Errorf("direction below hemisphere for normal %v: cosTheta=%f", normal, cosTheta)
			}
		}
	}
}

func TestOrthonormalBasisIsOrthogonal(t *testing.T) {
	normals := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 1),
		NewVec3(1, 1, 1).Normalize(),
		NewVec3(0.999, 0.001, 0.001).Normalize(),
	}

	for _, n := range normals {
		tangent, bitangent := OrthonormalBasis(n)

		if math.Abs(tangent.Length()-1) > 1e-9 {
			t.Errorf("tangent not unit length for normal %v", n)
		}
		if math.Abs(bitangent.Length()-1) > 1e-9 {
			t.Errorf("bitangent not unit length for normal %v", n)
		}
		if math.Abs(tangent.Dot(n)) > 1e-9 {
			t.Errorf("tangent not orthogonal to normal %v", n)
		}
		if math.Abs(bitangent.Dot(n)) > 1e-9 {
			t.Errorf("bitangent not orthogonal to normal %v", n)
		}
		if math.Abs(tangent.Dot(bitangent)) > 1e-9 {
			t.Errorf("tangent not orthogonal to bitangent for normal %v", n)
		}
	}
}

func TestBalanceHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		pf, pg   float64
		expected float64
	}{
		{"equal pdfs", 0.5, 0.5, 0.5},
		{"first pdf zero", 0.0, 0.5, 0.0},
		{"second pdf zero", 0.5, 0.0, 1.0},
		{"first pdf higher", 0.8, 0.2, 0.8},
		{"both zero", 0.0, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BalanceHeuristic(tt.pf, tt.pg)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("BalanceHeuristic(%f, %f) = %f, want %f", tt.pf, tt.pg, got, tt.expected)
			}
		})
	}
}

func TestBalanceHeuristicPartitionOfUnity(t *testing.T) {
	pairs := [][2]float64{{0.3, 0.7}, {1.0, 1.0}, {0.001, 5.0}, {2.5, 2.5}}
	for _, p := range pairs {
		wLight := BalanceHeuristic(p[0], p[1])
		wBrdf := BalanceHeuristic(p[1], p[0])
		if math.Abs(wLight+wBrdf-1.0) > 1e-9 {
			t.Errorf("MIS weights don't sum to 1 for pdfs %v: %f + %f", p, wLight, wBrdf)
		}
	}
}
