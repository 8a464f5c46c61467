package geometry

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// Box is an axis-aligned box built from six Quad faces, constructed
// from two opposite corners.
type Box struct {
	faces []*Quad
	box core.AABB
}

func NewBox(a, b core.Vec3, mat material.Material) *Box {
	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	faces := []*Quad{
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat), // front
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat), // left
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat), // bottom
	}

	return &Box{faces: faces, box: core.NewAABBFromPoints(min, max)}
}

func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if hitOK, _ := b.box.Hit(ray, tMin, tMax); !hitOK {
		return nil, false
	}

	var closest *material.HitRecord
	closestT := tMax
	for _, face := range b.faces {
		if hit, ok := face.Hit(ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
		}
	}
	return closest, closest != nil
}

func (b *Box) AABB() (core.AABB, bool) { return b.box, true }

func (b *Box) Centroid() core.Vec3 { return b.box.Center() }

func (b *Box) PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	total := 0.0
	count := 0
	for _, face := range b.faces {
		if v := face.PDFValue(origin, direction, wavelength, time); v > 0 {
			total += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(len(b.faces))
}

func (b *Box) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	face := b.faces[random.Intn(len(b.faces))]
	return face.RandomDirectionTo(origin, random)
}
