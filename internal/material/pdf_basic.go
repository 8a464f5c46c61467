package material

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// CosinePdf is a cosine-weighted hemispherical distribution around a
// normal, the Pdf half of Lambertian.Scatter.
type CosinePdf struct {
	onb onb
}

func NewCosinePdf(normal core.Vec3) *CosinePdf {
	return &CosinePdf{onb: newONB(normal)}
}

func (p *CosinePdf) Generate(random *rand.Rand) core.Vec3 {
	return p.onb.local(randomCosineDirection(random))
}

func (p *CosinePdf) Value(direction core.Vec3, _ core.Wavelength, _ float64) float64 {
	cosTheta := direction.Normalize().Dot(p.onb.w)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// UniformSpherePdf samples directions uniformly over the full sphere,
// the Pdf half of Isotropic.Scatter.
type UniformSpherePdf struct{}

func (UniformSpherePdf) Generate(random *rand.Rand) core.Vec3 {
	return randomUnitVector(random)
}

func (UniformSpherePdf) Value(core.Vec3, core.Wavelength, float64) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// onb is an orthonormal basis built around a single axis (w), used to
// map a local-frame cosine sample into world space.
type onb struct {
	u, v, w core.Vec3
}

func newONB(normal core.Vec3) onb {
	w := normal.Normalize()
	a := core.NewVec3(0, 1, 0)
	if math.Abs(w.X) > 0.9 {
		a = core.NewVec3(1, 0, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return onb{u: u, v: v, w: w}
}

func (b onb) local(p core.Vec3) core.Vec3 {
	return b.u.Multiply(p.X).Add(b.v.Multiply(p.Y)).Add(b.w.Multiply(p.Z))
}

func randomCosineDirection(random *rand.Rand) core.Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)
	return core.NewVec3(x, y, z)
}

func randomUnitVector(random *rand.Rand) core.Vec3 {
	for {
		p := core.NewVec3(
			random.Float64()*2-1,
			random.Float64()*2-1,
			random.Float64()*2-1,
		)
		lensq := p.LengthSquared()
		if lensq > 1e-160 && lensq <= 1 {
			return p.Multiply(1 / math.Sqrt(lensq))
		}
	}
}

func randomInUnitSphere(random *rand.Rand) core.Vec3 {
	for {
		p := core.NewVec3(
			random.Float64()*2-1,
			random.Float64()*2-1,
			random.Float64()*2-1,
		)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

func randomInUnitDisk(random *rand.Rand) core.Vec2 {
	r := math.Sqrt(random.Float64())
	theta := 2 * math.Pi * random.Float64()
	return core.NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}
