package geometry

import (
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// Empty is the Primitive that never hits, used to fill the unused
// child slot of a BVH leaf.
type Empty struct{}

func (Empty) Hit(core.Ray, float64, float64) (*material.HitRecord, bool) { return nil, false }
func (Empty) AABB() (core.AABB, bool) { return core.AABB{}, false }
func (Empty) Centroid() core.Vec3 { return core.Vec3{} }
func (Empty) PDFValue(core.Vec3, core.Vec3, core.Wavelength, float64) float64 { return 0 }
func (Empty) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5)
}

// IsEmpty reports whether a primitive is the Empty placeholder, used
// by the BVH to skip it during traversal and PDF averaging.
func IsEmpty(p Primitive) bool {
	_, ok := p.(Empty)
	return ok
}
