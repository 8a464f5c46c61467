// Package spectrum implements conversion between a scalar wavelength
// and CIE XYZ, and the reverse conversion from an
// XYZ color to a per-wavelength spectral power via an analytic
// chromaticity-based basis (chromaticBasis). No precomputed
// spectral-locus grid (such as the Meng-et-al. table) is used, so the
// result approximates that method's spectra rather than reproducing
// them.
package spectrum

import (
	"math"

	"github.com/nordlicht/spectra/internal/core"
)

// gaussian is the analytic CIE-1931 fit building block: a piecewise
// Gaussian with different widths on either side of the peak,
// following the standard Wyman/Sloan/Shirley analytical approximation.
func gaussian(x, alpha, mu, sigma1, sigma2 float64) float64 {
	var sigma float64
	if x < mu {
		sigma = sigma1
	} else {
		sigma = sigma2
	}
	t := (x - mu) / sigma
	return alpha * math.Exp(-0.5*t*t)
}

// WavelengthToXYZ converts a single wavelength in nanometers to CIE
// XYZ using the analytical Gaussian-mixture approximation of the 1931
// color matching functions.
func WavelengthToXYZ(w core.Wavelength) core.XyzE {
	lambda := float64(w)

	x := gaussian(lambda, 1.056, 599.8, 37.9, 31.0) +
		gaussian(lambda, 0.362, 442.0, 16.0, 26.7) +
		gaussian(lambda, -0.065, 501.1, 20.4, 26.2)
	y := gaussian(lambda, 0.821, 568.8, 46.9, 40.5) +
		gaussian(lambda, 0.286, 530.9, 16.3, 31.1)
	z := gaussian(lambda, 1.217, 437.0, 11.8, 36.0) +
		gaussian(lambda, 0.681, 459.0, 26.0, 13.8)

	return core.NewVec3(x, y, z)
}

// HeroWavelengths generates 4 equispaced wavelengths derived from a
// hero wavelength: {λ, λ+100, λ+200, λ+300} mod 400, offset by
// WavelengthMin.
// Provided for future multi-wavelength integrators; the current
// integrator uses a single wavelength per ray.
func HeroWavelengths(hero core.Wavelength) [4]core.Wavelength {
	base := int(hero - core.WavelengthMin)
	var out [4]core.Wavelength
	for i := 0; i < 4; i++ {
		out[i] = core.WavelengthMin + core.Wavelength((base+i*100)%400)
	}
	return out
}
