package geometry

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// Translate offsets a wrapped primitive by Offset.
type Translate struct {
	Primitive Primitive
	Offset core.Vec3
}

func NewTranslate(p Primitive, offset core.Vec3) *Translate {
	return &Translate{Primitive: p, Offset: offset}
}

func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time, ray.Wavelength)
	hit, ok := t.Primitive.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

func (t *Translate) AABB() (core.AABB, bool) {
	box, ok := t.Primitive.AABB()
	if !ok {
		return box, false
	}
	return core.NewAABBFromPoints(box.Min().Add(t.Offset), box.Max().Add(t.Offset)), true
}

func (t *Translate) Centroid() core.Vec3 { return t.Primitive.Centroid().Add(t.Offset) }

func (t *Translate) PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	return t.Primitive.PDFValue(origin.Subtract(t.Offset), direction, wavelength, time)
}

func (t *Translate) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return t.Primitive.RandomDirectionTo(origin.Subtract(t.Offset), random)
}

// Rotate rotates a wrapped primitive about the Y axis, the common
// case for orienting boxes and quads in a scene file without needing
// a general rotation matrix.
type Rotate struct {
	Primitive Primitive
	sinT, cosT float64
	box core.AABB
	haveBox bool
}

func NewRotateY(p Primitive, angleRadians float64) *Rotate {
	r := &Rotate{Primitive: p, sinT: math.Sin(angleRadians), cosT: math.Cos(angleRadians)}
	if box, ok := p.AABB(); ok {
		r.box = r.rotateBox(box)
		r.haveBox = true
	}
	return r
}

func (r *Rotate) rotatePoint(p core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosT*p.X+r.sinT*p.Z, p.Y, -r.sinT*p.X+r.cosT*p.Z)
}

func (r *Rotate) rotatePointInverse(p core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosT*p.X-r.sinT*p.Z, p.Y, r.sinT*p.X+r.cosT*p.Z)
}

func (r *Rotate) rotateBox(box core.AABB) core.AABB {
	min := box.Min()
	max := box.Max()
	var corners [8]core.Vec3
	i := 0
	for _, x := range [2]float64{min.X, max.X} {
		for _, y := range [2]float64{min.Y, max.Y} {
			for _, z := range [2]float64{min.Z, max.Z} {
				corners[i] = r.rotatePointInverse(core.NewVec3(x, y, z))
				i++
			}
		}
	}
	return core.NewAABBFromPoints(corners[:]...)
}

func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	localRay := core.NewRay(r.rotatePoint(ray.Origin), r.rotatePoint(ray.Direction), ray.Time, ray.Wavelength)
	hit, ok := r.Primitive.Hit(localRay, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = r.rotatePointInverse(hit.Point)
	hit.Normal = r.rotatePointInverse(hit.Normal)
	return hit, true
}

func (r *Rotate) AABB() (core.AABB, bool) { return r.box, r.haveBox }

func (r *Rotate) Centroid() core.Vec3 { return r.Primitive.Centroid() }

func (r *Rotate) PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	return r.Primitive.PDFValue(r.rotatePoint(origin), r.rotatePoint(direction), wavelength, time)
}

func (r *Rotate) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	local := r.Primitive.RandomDirectionTo(r.rotatePoint(origin), random)
	return r.rotatePointInverse(local)
}
