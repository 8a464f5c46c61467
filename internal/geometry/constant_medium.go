package geometry

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// ConstantMedium is a homogeneous, isotropic participating medium: the
// ray enters the boundary primitive and, with probability
// proportional to Density, scatters at a distance drawn from
// -ln(u)/Density.
type ConstantMedium struct {
	Boundary Primitive
	Density float64
	Phase material.Material // must be an Isotropic material
}

func NewConstantMedium(boundary Primitive, density float64, phase material.Material) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, Phase: phase}
}

func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	entry, ok := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	exit, ok := c.Boundary.Hit(ray, entry.T+1e-4, math.Inf(1))
	if !ok {
		return nil, false
	}

	entryT := math.Max(entry.T, tMin)
	exitT := math.Min(exit.T, tMax)
	if entryT >= exitT {
		return nil, false
	}
	entryT = math.Max(entryT, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (exitT - entryT) * rayLength
	negInvDensity := -1.0 / c.Density
	hitDistance := negInvDensity * math.Log(rand.Float64())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := entryT + hitDistance/rayLength
	point := ray.At(t)
	hit := &material.HitRecord{
		T: t,
		Point: point,
		Material: c.Phase,
		FrontFace: true,
		Normal: core.NewVec3(1, 0, 0), // arbitrary: isotropic scattering ignores it
	}
	return hit, true
}

// ConstantMedium.Hit draws its free-path distance from the package-level
// rand.Float64, which Go's math/rand documents as safe for concurrent
// use by multiple goroutines (it serializes on the default source's
// own lock). Every other sampling decision in the renderer (materials,
// samplers) threads an explicit *rand.Rand per the "no RNG is
// shared" rule for worker-owned generators; the Primitive interface's
// Hit has no RNG parameter, so this is the one place that falls back
// to the global source rather than widening the interface for a
// single volumetric primitive.

func (c *ConstantMedium) AABB() (core.AABB, bool) { return c.Boundary.AABB() }

func (c *ConstantMedium) Centroid() core.Vec3 { return c.Boundary.Centroid() }

func (c *ConstantMedium) PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	return c.Boundary.PDFValue(origin, direction, wavelength, time)
}

func (c *ConstantMedium) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return c.Boundary.RandomDirectionTo(origin, random)
}
