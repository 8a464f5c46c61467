// Package sampler implements the Sampler abstraction:
// per-pixel, per-sample draws for pixel offset, lens offset, time, and
// wavelength, in either a uniform-random or blue-noise (Sobol +
// scrambling/ranking tiles) variant.
package sampler

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// Sample is a single draw from a Sampler: where in the pixel to
// integrate, where on the lens, at what time, and at what wavelength.
type Sample struct {
	PixelOffset core.Vec2
	LensOffset core.Vec2
	Time float64
	Wavelength core.Wavelength
}

// Sampler produces Samples for a given pixel and sample index. A
// Sampler must return each dimension only once per sample, in a fixed
// order — required by the blue-noise tile assumptions (the
// ordering invariant) even for the uniform sampler, which doesn't
// technically need it but keeps the two implementations interchangeable.
type Sampler interface {
	Sample(pixelX, pixelY, sampleIndex int, random *rand.Rand) Sample
}

// UniformSampler draws every dimension independently and uniformly at
// random.
type UniformSampler struct{}

func NewUniformSampler() *UniformSampler { return &UniformSampler{} }

func (UniformSampler) Sample(_, _, _ int, random *rand.Rand) Sample {
	r := math.Sqrt(random.Float64())
	theta := 2 * math.Pi * random.Float64()
	return Sample{
		PixelOffset: core.NewVec2(random.Float64(), random.Float64()),
		LensOffset: core.NewVec2(r*math.Cos(theta), r*math.Sin(theta)),
		Time: random.Float64(),
		Wavelength: core.WavelengthMin + core.Wavelength(random.Float64()*float64(core.WavelengthRange)),
	}
}
