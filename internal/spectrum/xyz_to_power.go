package spectrum

import (
	"math"

	"github.com/nordlicht/spectra/internal/core"
)

// chromaticBasis returns two smooth, CIE-shaped basis functions of
// wavelength used to reconstruct a plausible single-channel spectral
// power from an XYZ color's chromaticity offset from the equal-energy
// white point (x=y=1/3). They are built from the same analytical
// Gaussian fits as WavelengthToXYZ so the reconstructed spectrum
// varies smoothly and by construction equals 1 (a flat spectrum) for
// any equal-energy gray, which is exactly the invariant required of
// XyzToSpectralPower.
//
// This approximates the Meng-et-al. spectral-locus grid with a smooth
// analytic basis instead of a measured per-cell sample table: the
// projection to chromaticity is kept, but there is no cell lookup and
// no interpolation between tabulated wavelength samples.
func chromaticBasis(lambda float64) (bx, by float64) {
	xbar := gaussian(lambda, 1.056, 599.8, 37.9, 31.0) +
		gaussian(lambda, 0.362, 442.0, 16.0, 26.7) +
		gaussian(lambda, -0.065, 501.1, 20.4, 26.2)
	ybar := gaussian(lambda, 0.821, 568.8, 46.9, 40.5) +
		gaussian(lambda, 0.286, 530.9, 16.3, 31.1)
	return xbar / 1.5, ybar / 1.0
}

// XyzToSpectralPower converts an XYZ color (equal-energy illuminant,
// whitepoint E) to a scalar spectral power at wavelength w: project to
// chromaticity (x,y) and brightness Y, then reconstruct
// p(w) = Y * f(w; x, y) where f is 1 for the equal-energy chromaticity
// and varies smoothly with the chromaticity offset.
//
// Boundary conditions: a non-finite result, or a wavelength outside
// [WavelengthMin, WavelengthMax), returns 0.
func XyzToSpectralPower(w core.Wavelength, xyz core.XyzE) float64 {
	if w < core.WavelengthMin || w >= core.WavelengthMax {
		return 0
	}

	sum := xyz.X + xyz.Y + xyz.Z
	if sum <= 0 {
		return 0
	}

	x := xyz.X / sum
	y := xyz.Y / sum

	bx, by := chromaticBasis(float64(w))
	f := 1.0 + (x-1.0/3.0)*bx + (y-1.0/3.0)*by
	if f < 0 {
		f = 0
	}

	p := xyz.Y * f
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}
