// Package renderer implements the render driver:
// the thin-lens camera, the row-parallel worker pool, and the final
// tone-mapping/encoding pass.
package renderer

import (
	"math"

	"github.com/nordlicht/spectra/internal/core"
)

// CameraConfig describes a thin-lens pinhole camera.
type CameraConfig struct {
	LookFrom core.Vec3
	LookAt core.Vec3
	Up core.Vec3
	VerticalFOV float64 // degrees
	AspectRatio float64
	Aperture float64
	FocusDistance float64
}

// Camera generates primary rays for rendering. Its basis vectors are
// precomputed once at construction and never mutated,
// so a single Camera is shared read-only across render workers.
type Camera struct {
	origin core.Vec3
	lowerLeftCorner core.Vec3
	horizontal core.Vec3
	vertical core.Vec3
	u, v, w core.Vec3
	lensRadius float64
}

// NewCamera builds a Camera from config, precomputing the orthonormal
// basis u,v,w from LookFrom/LookAt/Up and the viewport corners from
// VerticalFOV/AspectRatio/FocusDistance.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VerticalFOV * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * config.AspectRatio

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin: config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal: horizontal,
		vertical: vertical,
		u: u,
		v: v,
		w: w,
		lensRadius: config.Aperture / 2,
	}
}

// Ray generates a ray for pixel-plane coordinate (s,t) ∈ [0,1]²,
// offset on the lens by lensOffset (a point in the unit disk), at the
// given time and wavelength.
func (c *Camera) Ray(s, t float64, lensOffset core.Vec2, time float64, wavelength core.Wavelength) core.Ray {
	offset := c.u.Multiply(lensOffset.X * c.lensRadius).Add(c.v.Multiply(lensOffset.Y * c.lensRadius))
	origin := c.origin.Add(offset)

	target := c.lowerLeftCorner.Add(c.horizontal.Multiply(s)).Add(c.vertical.Multiply(t))
	direction := target.Subtract(origin).Normalize()

	return core.NewRay(origin, direction, time, wavelength)
}

