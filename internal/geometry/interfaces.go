// Package geometry implements the Primitive tagged variant:
// spheres, quads, triangles, boxes, the constant-density
// medium, the rotate/translate wrappers, and the BVH that accelerates
// queries over all of them.
package geometry

import (
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// Primitive is the tagged-variant interface every shape (and the BVH
// itself) implements. PDFValue and RandomDirectionTo exist purely for
// direct light-source sampling: callers use them only on primitives
// placed in the scene's MIS priority set.
type Primitive interface {
	// Hit tests the ray against the primitive over t ∈ [tMin, tMax].
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// AABB returns the primitive's bounding box, or ok=false for
	// primitives with no bound (Empty, and an empty HitableList), so
	// every caller checks ok rather than assuming one exists.
	AABB() (box core.AABB, ok bool)

	// PDFValue returns the solid-angle density of sampling a direction
	// toward this primitive from origin, at the given direction.
	PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64

	// RandomDirectionTo returns a direction from origin toward a
	// random point on the primitive, distributed so that averaging
	// PDFValue over many such directions recovers the same density.
	RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3

	// Centroid returns the primitive's centroid, used by the BVH
	// builders to partition primitives spatially.
	Centroid() core.Vec3
}
