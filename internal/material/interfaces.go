// Package material implements the BSDF model: the
// Material tagged variant, its ScatterRecord/HitRecord data model, and
// the Pdf abstraction used for diffuse scattering and MIS.
package material

import (
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// HitRecord describes a ray-primitive intersection: the distance along
// the ray, the world-space hit point, the unit normal oriented against
// the incoming ray, surface (u,v), a back-pointer to the hit
// primitive's material, and whether the ray struck the outward side.
//
// This renderer picks one normal convention and sticks to it: Normal
// is always oriented against the incoming ray, and FrontFace records
// which side that was, kept as a separate field rather than folded
// into the sign of Normal.
type HitRecord struct {
	T float64
	Point core.Vec3
	Normal core.Vec3
	UV core.Vec2
	Material Material
	FrontFace bool
}

// SetFaceNormal orients Normal against rayIn and records FrontFace.
// outwardNormal must be a unit vector pointing away from the
// primitive's interior.
func (h *HitRecord) SetFaceNormal(rayIn core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = rayIn.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Pdf is a sampleable probability density over directions, used both
// as the "where to scatter next" half of a diffuse ScatterRecord and
// as one leg of the integrator's light/BSDF MIS mixture. Wavelength
// and time are threaded through because a light's solid angle can
// depend on the hit time (moving lights) in principle, even though no
// current Pdf implementation uses wavelength.
type Pdf interface {
	Generate(random *rand.Rand) core.Vec3
	Value(direction core.Vec3, wavelength core.Wavelength, time float64) float64
}

// ScatterRecord is the outcome of Material.Scatter: either a
// deterministic Specular bounce or a Diffuse bounce described by a
// Pdf. Exactly one of the two shapes is populated, indicated by
// Specular.
type ScatterRecord struct {
	Specular bool
	Attenuation core.Vec3 // XYZ attenuation/albedo
	SpecularRay core.Ray // valid iff Specular
	PDF Pdf // valid iff !Specular
}

// Material is the tagged variant every surface shader implements.
// Every material answers Scatter and Emit; diffuse materials additionally answer
// ScatteringPDF so the integrator can weight them against the light
// sampling strategy in MIS.
type Material interface {
	// Scatter proposes an outgoing direction (specular) or a Pdf to
	// sample one from (diffuse) along with an attenuation. The second
	// return value is false if the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool)

	// Emit returns the XYZ radiance the surface emits toward rayIn at
	// hit. Zero for every material except DiffuseLight and ConeLight.
	Emit(rayIn core.Ray, hit HitRecord) core.XyzE

	// ScatteringPDF evaluates the material's own density at the given
	// scattered direction; ok is false for materials with no continuous
	// density (specular materials and lights). Lambertian returns a zero
	// density with ok=true for directions below the surface.
	ScatteringPDF(hit HitRecord, scattered core.Ray) (pdf float64, ok bool)

	// IsWavelengthDependent reports whether this material's behavior
	// varies with the ray's wavelength (true only for Dispersive and
	// ThinFilm). The path tracer carries one wavelength per ray for
	// every path and does not consult this flag.
	IsWavelengthDependent() bool
}
