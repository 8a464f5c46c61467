package geometry

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// Triangle is a flat-shaded triangle defined by three vertices. Hit
// uses the Möller–Trumbore algorithm and returns barycentric
// (u,v) satisfying u,v >= 0 and u+v <= 1.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material material.Material

	edge1, edge2, normal core.Vec3
}

func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return &Triangle{V0: v0, V1: v1, V2: v2, Material: mat, edge1: edge1, edge2: edge2, normal: edge1.Cross(edge2).Normalize()}
}

func (t *Triangle) moellerTrumbore(ray core.Ray, tMin, tMax float64) (dist, u, v float64, ok bool) {
	const epsilon = 1e-8
	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)
	if math.Abs(a) < epsilon {
		return 0, 0, 0, false // ray parallel to triangle plane
	}
	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u = f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}
	q := s.Cross(t.edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	dist = f * t.edge2.Dot(q)
	if dist < tMin || dist > tMax {
		return 0, 0, 0, false
	}
	return dist, u, v, true
}

func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	dist, u, v, ok := t.moellerTrumbore(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit := &material.HitRecord{T: dist, Point: ray.At(dist), Material: t.Material, UV: core.NewVec2(u, v)}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

func (t *Triangle) AABB() (core.AABB, bool) {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2), true
}

func (t *Triangle) Centroid() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Multiply(1.0 / 3.0)
}

func (t *Triangle) area() float64 {
	return 0.5 * t.edge1.Cross(t.edge2).Length()
}

func (t *Triangle) PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	hit, ok := t.Hit(core.NewRay(origin, direction, time, wavelength), 1e-3, math.Inf(1))
	if !ok {
		return 0
	}
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Normalize().Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}
	a := t.area()
	if a <= 0 {
		return 0
	}
	return distanceSquared / (cosine * a)
}

func (t *Triangle) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	sqrtR1 := math.Sqrt(r1)
	// Uniform barycentric sampling (Shirley & Chiu).
	a := 1 - sqrtR1
	b := r2 * sqrtR1
	point := t.V0.Multiply(a).Add(t.V1.Multiply(b)).Add(t.V2.Multiply(1 - a - b))
	return point.Subtract(origin)
}

// MeshTriangle is a Triangle that additionally carries interpolated
// per-vertex normals and UVs for Phong shading; it differs from the
// flat Triangle in interpolating the shading normal and the UVs.
type MeshTriangle struct {
	*Triangle
	N0, N1, N2 core.Vec3
	UV0, UV1, UV2 core.Vec2
}

func NewMeshTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, uv0, uv1, uv2 core.Vec2, mat material.Material) *MeshTriangle {
	return &MeshTriangle{
		Triangle: NewTriangle(v0, v1, v2, mat),
		N0: n0, N1: n1, N2: n2,
		UV0: uv0, UV1: uv1, UV2: uv2,
	}
}

func (m *MeshTriangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	dist, u, v, ok := m.moellerTrumbore(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	w := 1 - u - v
	smoothNormal := m.N0.Multiply(w).Add(m.N1.Multiply(u)).Add(m.N2.Multiply(v)).Normalize()
	uv := m.UV0.Multiply(w).Add(m.UV1.Multiply(u)).Add(m.UV2.Multiply(v))

	hit := &material.HitRecord{T: dist, Point: ray.At(dist), Material: m.Material, UV: uv}
	hit.SetFaceNormal(ray, smoothNormal)
	return hit, true
}
