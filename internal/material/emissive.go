package material

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// DiffuseLight emits a constant XYZ radiance from its front face and
// scatters nothing.
type DiffuseLight struct {
	Emission core.XyzE
}

func NewDiffuseLight(emission core.XyzE) *DiffuseLight { return &DiffuseLight{Emission: emission} }

func (d *DiffuseLight) Scatter(core.Ray, HitRecord, *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

func (d *DiffuseLight) Emit(_ core.Ray, hit HitRecord) core.XyzE {
	if !hit.FrontFace {
		return core.XyzE{}
	}
	return d.Emission
}

func (d *DiffuseLight) ScatteringPDF(HitRecord, core.Ray) (float64, bool) { return 0, false }

func (d *DiffuseLight) IsWavelengthDependent() bool { return false }

// ConeLight emits only within a half-angle cone measured from the
// surface normal, testing the angle between the hit normal and the
// incident ray direction.
type ConeLight struct {
	Emission core.XyzE
	HalfAngle float64 // radians
}

func NewConeLight(emission core.XyzE, halfAngleRadians float64) *ConeLight {
	return &ConeLight{Emission: emission, HalfAngle: halfAngleRadians}
}

func (c *ConeLight) Scatter(core.Ray, HitRecord, *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

func (c *ConeLight) Emit(rayIn core.Ray, hit HitRecord) core.XyzE {
	if !hit.FrontFace {
		return core.XyzE{}
	}
	// Angle between the normal and the direction back toward the
	// viewer (negated incoming ray).
	cosAngle := hit.Normal.Dot(rayIn.Direction.Negate().Normalize())
	if cosAngle < math.Cos(c.HalfAngle) {
		return core.XyzE{}
	}
	return c.Emission
}

func (c *ConeLight) ScatteringPDF(HitRecord, core.Ray) (float64, bool) { return 0, false }

func (c *ConeLight) IsWavelengthDependent() bool { return false }
