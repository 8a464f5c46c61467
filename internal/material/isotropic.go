package material

import (
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// Isotropic scatters uniformly in all directions, the phase function
// of the ConstantMedium participating-media primitive.
type Isotropic struct {
	Albedo Texture
}

func NewIsotropic(albedo Texture) *Isotropic { return &Isotropic{Albedo: albedo} }

func (i *Isotropic) Scatter(_ core.Ray, hit HitRecord, _ *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Specular: false,
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
		PDF: UniformSpherePdf{},
	}, true
}

func (i *Isotropic) Emit(core.Ray, HitRecord) core.XyzE { return core.XyzE{} }

func (i *Isotropic) ScatteringPDF(HitRecord, core.Ray) (float64, bool) {
	return 1.0 / (4.0 * 3.141592653589793), true
}

func (i *Isotropic) IsWavelengthDependent() bool { return false }
