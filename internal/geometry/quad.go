package geometry

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// Quad is a planar parallelogram defined by a corner Q and two edge
// vectors U, V, the common area-light shape.
type Quad struct {
	Q, U, V core.Vec3
	Material material.Material

	normal core.Vec3
	d float64
	w core.Vec3 // used to derive planar (alpha,beta) coordinates
	area float64
}

func NewQuad(q, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	area := n.Length()
	normal := n.Normalize()
	d := normal.Dot(q)
	w := n.Multiply(1 / n.Dot(n))
	return &Quad{Q: q, U: u, V: v, Material: mat, normal: normal, d: d, w: w, area: area}
}

func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denom := q.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}
	t := (q.d - q.normal.Dot(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	planar := point.Subtract(q.Q)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &material.HitRecord{T: t, Point: point, Material: q.Material, UV: core.NewVec2(alpha, beta)}
	hit.SetFaceNormal(ray, q.normal)
	return hit, true
}

func (q *Quad) AABB() (core.AABB, bool) {
	box1 := core.NewAABBFromPoints(q.Q, q.Q.Add(q.U).Add(q.V))
	box2 := core.NewAABBFromPoints(q.Q.Add(q.U), q.Q.Add(q.V))
	return box1.Union(box2), true
}

func (q *Quad) Centroid() core.Vec3 {
	return q.Q.Add(q.U.Multiply(0.5)).Add(q.V.Multiply(0.5))
}

func (q *Quad) PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	hit, ok := q.Hit(core.NewRay(origin, direction, time, wavelength), 1e-3, math.Inf(1))
	if !ok {
		return 0
	}
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Normalize().Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * q.area)
}

func (q *Quad) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	point := q.Q.Add(q.U.Multiply(random.Float64())).Add(q.V.Multiply(random.Float64()))
	return point.Subtract(origin)
}
