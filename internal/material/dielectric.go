package material

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// Dielectric is a transparent material (e.g. glass, water) that
// either reflects or refracts according to Fresnel-Schlick reflectance.
// Attenuation is always white: clear dielectrics do not absorb
// color, only dispersive ones (below) vary with wavelength.
type Dielectric struct {
	RefractiveIndex float64
}

func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func (d *Dielectric) refractiveIndexAt(core.Wavelength) float64 { return d.RefractiveIndex }

func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return scatterDielectric(d.refractiveIndexAt, rayIn, hit, random)
}

func (d *Dielectric) Emit(core.Ray, HitRecord) core.Vec3 { return core.Vec3{} }

func (d *Dielectric) ScatteringPDF(HitRecord, core.Ray) (float64, bool) { return 0, false }

func (d *Dielectric) IsWavelengthDependent() bool { return false }

// Dispersive is a Cauchy-dispersion dielectric: its refractive index
// varies with wavelength as n(λ) = A + B/λ_µm², so a white ray fans
// out into a spectrum. Because the bend
// angle differs per ray wavelength, the integrator must fix a hero
// wavelength for any path that touches a Dispersive surface.
type Dispersive struct {
	A, B float64
}

func NewDispersive(a, b float64) *Dispersive { return &Dispersive{A: a, B: b} }

func (d *Dispersive) refractiveIndexAt(w core.Wavelength) float64 {
	lambdaMicrons := float64(w) / 1000.0
	return d.A + d.B/(lambdaMicrons*lambdaMicrons)
}

func (d *Dispersive) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return scatterDielectric(d.refractiveIndexAt, rayIn, hit, random)
}

func (d *Dispersive) Emit(core.Ray, HitRecord) core.Vec3 { return core.Vec3{} }

func (d *Dispersive) ScatteringPDF(HitRecord, core.Ray) (float64, bool) { return 0, false }

func (d *Dispersive) IsWavelengthDependent() bool { return true }

func scatterDielectric(refractiveIndexAt func(core.Wavelength) float64, rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	n := refractiveIndexAt(rayIn.Wavelength)

	var eta float64
	if hit.FrontFace {
		eta = 1.0 / n
	} else {
		eta = n
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, eta) > random.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, eta, cosTheta)
	}

	scattered := core.NewRay(hit.Point, direction, rayIn.Time, rayIn.Wavelength)
	return ScatterRecord{
		Specular: true,
		Attenuation: core.NewVec3(1, 1, 1),
		SpecularRay: scattered,
	}, true
}

func refract(uv, normal core.Vec3, eta, cosTheta float64) core.Vec3 {
	rOutPerp := uv.Add(normal.Multiply(cosTheta)).Multiply(eta)
	rOutParallel := normal.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// reflectance is the Schlick approximation to the Fresnel reflectance:
// r0 + (1-r0)(1-cosθ)^5 where r0 = ((1-n)/(1+n))^2.
func reflectance(cosTheta, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}
