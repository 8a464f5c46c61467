package geometry

import (
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// HitableList is a flat, unaccelerated list of primitives, used for
// small primitive groups (e.g. a mesh's degenerate
// leftover triangles) where a full BVH is unnecessary.
type HitableList struct {
	Primitives []Primitive
	box core.AABB
	haveBox bool
}

func NewHitableList(primitives ...Primitive) *HitableList {
	list := &HitableList{Primitives: primitives}
	for _, p := range primitives {
		if b, ok := p.AABB(); ok {
			if list.haveBox {
				list.box = list.box.Union(b)
			} else {
				list.box = b
				list.haveBox = true
			}
		}
	}
	return list
}

func (l *HitableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestT := tMax
	for _, p := range l.Primitives {
		if hit, ok := p.Hit(ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
		}
	}
	return closest, closest != nil
}

func (l *HitableList) AABB() (core.AABB, bool) { return l.box, l.haveBox }

func (l *HitableList) Centroid() core.Vec3 { return l.box.Center() }

func (l *HitableList) PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	if len(l.Primitives) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range l.Primitives {
		total += p.PDFValue(origin, direction, wavelength, time)
	}
	return total / float64(len(l.Primitives))
}

func (l *HitableList) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if len(l.Primitives) == 0 {
		return core.NewVec3(0, 0, 1)
	}
	return l.Primitives[random.Intn(len(l.Primitives))].RandomDirectionTo(origin, random)
}
