package material

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// Lambertian is a perfectly diffuse material: scatter returns a Diffuse
// ScatterRecord with a CosinePdf around the normal and attenuation
// equal to the albedo texture.
type Lambertian struct {
	Albedo Texture
}

func NewLambertian(albedo Texture) *Lambertian { return &Lambertian{Albedo: albedo} }

func (l *Lambertian) Scatter(_ core.Ray, hit HitRecord, _ *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Specular: false,
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
		PDF: NewCosinePdf(hit.Normal),
	}, true
}

func (l *Lambertian) Emit(core.Ray, HitRecord) core.Vec3 { return core.Vec3{} }

// ScatteringPDF returns max(0, cosθ)/π, the density of the Lambertian
// lobe at the given scattered direction.
func (l *Lambertian) ScatteringPDF(hit HitRecord, scattered core.Ray) (float64, bool) {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		cosTheta = 0
	}
	return cosTheta / math.Pi, true
}

func (l *Lambertian) IsWavelengthDependent() bool { return false }
