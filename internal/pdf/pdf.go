// Package pdf implements the probability-density abstractions that
// need the BVH: sampling a direction toward the scene's priority
// (light) primitives, and mixing that with a material's own scattering
// Pdf for multiple importance sampling.
package pdf

import (
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/geometry"
	"github.com/nordlicht/spectra/internal/material"
)

// HitablePdf samples a point on a Primitive (typically the scene's
// MIS priority BVH) and evaluates the solid-angle density of doing so
// from Origin, delegating to the primitive's own PDFValue/
// RandomDirectionTo.
type HitablePdf struct {
	Primitive geometry.Primitive
	Origin core.Vec3
	Wavelength core.Wavelength
	Time float64
}

func NewHitablePdf(p geometry.Primitive, origin core.Vec3, wavelength core.Wavelength, time float64) *HitablePdf {
	return &HitablePdf{Primitive: p, Origin: origin, Wavelength: wavelength, Time: time}
}

func (h *HitablePdf) Generate(random *rand.Rand) core.Vec3 {
	return h.Primitive.RandomDirectionTo(h.Origin, random)
}

func (h *HitablePdf) Value(direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	return h.Primitive.PDFValue(h.Origin, direction, wavelength, time)
}

// MixturePdf combines two Pdfs with equal 0.5/0.5 weight: Generate
// picks one of the two with equal probability,
// Value averages both densities. The light/BSDF weighting is a fixed
// design choice: tuning the mix or switching to a
// power-heuristic MIS weight is an optimization, not part of this
// contract.
type MixturePdf struct {
	A, B material.Pdf
}

func NewMixturePdf(a, b material.Pdf) *MixturePdf {
	return &MixturePdf{A: a, B: b}
}

func (m *MixturePdf) Generate(random *rand.Rand) core.Vec3 {
	if random.Float64() < 0.5 {
		return m.A.Generate(random)
	}
	return m.B.Generate(random)
}

func (m *MixturePdf) Value(direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	return 0.5*m.A.Value(direction, wavelength, time) + 0.5*m.B.Value(direction, wavelength, time)
}
