// Package integrator implements the spectral path integrator:
// a recursive radiance estimator combining emission,
// BSDF scattering, and multiple importance sampling against the
// scene's priority (light) primitives.
package integrator

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/geometry"
	"github.com/nordlicht/spectra/internal/material"
	"github.com/nordlicht/spectra/internal/pdf"
	"github.com/nordlicht/spectra/internal/spectrum"
)

// shadowEpsilon is the minimum hit distance used to avoid self-
// intersection at the origin of a newly spawned ray.
const shadowEpsilon = 1e-3

// Scene is the minimal view of a scene the integrator needs: the root
// BVH for nearest-hit queries, the MIS priority BVH for direct light
// sampling, and a background emission. Kept as an interface so the
// integrator package does not need to import internal/scene, avoiding
// a dependency cycle (the scene package imports internal/renderer,
// which imports the integrator to drive a render).
type Scene interface {
	Root() geometry.Primitive
	MISPriority() geometry.Primitive
	Background() core.XyzE
}

// PathTracer is the unidirectional spectral path tracer. It holds no
// per-ray state; one PathTracer is shared read-only
// across all render workers.
type PathTracer struct {
	MaxDepth int
}

// NewPathTracer creates a path tracer with the given maximum
// recursion depth.
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// Li estimates the scalar spectral radiance arriving along ray,
// following the seven-step algorithm. random must be a
// per-worker RNG not shared with any other goroutine.
func (pt *PathTracer) Li(ray core.Ray, scene Scene, random *rand.Rand) float64 {
	return pt.li(ray, scene, random, 0)
}

func (pt *PathTracer) li(ray core.Ray, scene Scene, random *rand.Rand, depth int) float64 {
	// Step 1: exceeded max_depth.
	if depth > pt.MaxDepth {
		return spectrum.XyzToSpectralPower(ray.Wavelength, scene.Background())
	}

	// Step 2: nearest hit, or background.
	hit, isHit := scene.Root().Hit(ray, shadowEpsilon, math.Inf(1))
	if !isHit {
		return spectrum.XyzToSpectralPower(ray.Wavelength, scene.Background())
	}

	// Step 3: emission at the hit.
	emitted := spectrum.XyzToSpectralPower(ray.Wavelength, hit.Material.Emit(ray, *hit))

	// Step 4: scatter, or absorb.
	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return emitted
	}

	// Step 5: attenuation.
	attenuation := spectrum.XyzToSpectralPower(ray.Wavelength, scatter.Attenuation)
	if attenuation < 0 {
		attenuation = 0
	}

	// Step 6: specular scattering recurses without MIS; emission from a
	// specular surface is never added here.
	if scatter.Specular {
		incoming := pt.li(scatter.SpecularRay, scene, random, depth+1)
		return attenuation * incoming
	}

	// Step 7: diffuse scattering via MIS.
	return emitted + pt.diffuse(ray, hit, scatter, attenuation, scene, random, depth)
}

func (pt *PathTracer) diffuse(ray core.Ray, hit *material.HitRecord, scatter material.ScatterRecord, attenuation float64, scene Scene, random *rand.Rand, depth int) float64 {
	// 7a: light-sampling PDF over the priority set.
	lightPdf := pdf.NewHitablePdf(scene.MISPriority(), hit.Point, ray.Wavelength, ray.Time)

	// 7b: equal-weight mixture of light sampling and the material's own PDF.
	mixture := pdf.NewMixturePdf(lightPdf, scatter.PDF)

	// 7c: sample a new direction.
	direction := mixture.Generate(random).Normalize()

	// 7d: evaluate the mixture density; bail on a mathematically
	// impossible scatter rather than dividing by zero.
	pVal := mixture.Value(direction, ray.Wavelength, ray.Time)
	if pVal <= 0 {
		return 0
	}

	scatterRay := core.NewRay(hit.Point, direction, ray.Time, ray.Wavelength)

	// 7e: the material's own density for this direction.
	scatteringPdf, ok := hit.Material.ScatteringPDF(*hit, scatterRay)
	if !ok {
		return 0
	}

	// 7f: recurse and combine.
	incoming := pt.li(scatterRay, scene, random, depth+1)
	return attenuation * scatteringPdf * incoming / pVal
}
