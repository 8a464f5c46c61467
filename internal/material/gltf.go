package material

import (
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// GltfMaterial is a simplified metallic-roughness PBR material for
// meshes imported from glTF. It mixes a Lambertian lobe (weight
// 1-Metallic) with a Metal lobe (weight Metallic, Fuzz = Roughness),
// both sampling the same base-color texture, and stochastically picks
// one lobe per scatter call so the ScatterRecord stays a single
// Specular-or-Diffuse shape.
type GltfMaterial struct {
	BaseColor Texture
	Metallic float64
	Roughness float64
}

func NewGltfMaterial(baseColor Texture, metallic, roughness float64) *GltfMaterial {
	return &GltfMaterial{BaseColor: baseColor, Metallic: metallic, Roughness: roughness}
}

func (g *GltfMaterial) lambertian() *Lambertian { return NewLambertian(g.BaseColor) }

func (g *GltfMaterial) metal(hit HitRecord) *Metal {
	return NewMetal(g.BaseColor.Evaluate(hit.UV, hit.Point), g.Roughness)
}

func (g *GltfMaterial) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	if random.Float64() < g.Metallic {
		return g.metal(hit).Scatter(rayIn, hit, random)
	}
	return g.lambertian().Scatter(rayIn, hit, random)
}

func (g *GltfMaterial) Emit(core.Ray, HitRecord) core.XyzE { return core.XyzE{} }

func (g *GltfMaterial) ScatteringPDF(hit HitRecord, scattered core.Ray) (float64, bool) {
	// Only the diffuse lobe contributes a continuous density; scale it
	// by the probability that the diffuse branch was taken.
	pdf, ok := g.lambertian().ScatteringPDF(hit, scattered)
	if !ok {
		return 0, false
	}
	return pdf * (1 - g.Metallic), true
}

func (g *GltfMaterial) IsWavelengthDependent() bool { return false }
