package material

import (
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// Metal is specular reflection about the normal, optionally perturbed
// by Fuzz for a glossy look. Fuzzed rays that end up
// below the surface are rejected (absorbed).
type Metal struct {
	Albedo core.Vec3
	Fuzz float64 // clamped to [0,1]
}

func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func reflect(v, normal core.Vec3) core.Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	direction := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		direction = direction.Add(randomInUnitSphere(random).Multiply(m.Fuzz)).Normalize()
	}
	if direction.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}
	scattered := core.NewRay(hit.Point, direction, rayIn.Time, rayIn.Wavelength)
	return ScatterRecord{
		Specular: true,
		Attenuation: m.Albedo,
		SpecularRay: scattered,
	}, true
}

func (m *Metal) Emit(core.Ray, HitRecord) core.Vec3 { return core.Vec3{} }

func (m *Metal) ScatteringPDF(HitRecord, core.Ray) (float64, bool) { return 0, false }

func (m *Metal) IsWavelengthDependent() bool { return false }
