package geometry

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// Sphere is a static sphere primitive.
type Sphere struct {
	Center core.Vec3
	Radius float64
	Material material.Material
}

func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func sphereUV(outwardNormal core.Vec3) core.Vec2 {
	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

func (s *Sphere) centerAt(float64) core.Vec3 { return s.Center }

func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.centerAt(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1 / radius)
	hit := &material.HitRecord{T: root, Point: point, Material: mat, UV: sphereUV(outwardNormal)}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

func (s *Sphere) AABB() (core.AABB, bool) {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABBFromPoints(s.Center.Subtract(r), s.Center.Add(r)), true
}

func (s *Sphere) Centroid() core.Vec3 { return s.Center }

// PDFValue is the solid-angle density of uniformly sampling the cone
// subtended by the sphere from origin, used when this sphere is
// sampled as a light.
func (s *Sphere) PDFValue(origin, direction core.Vec3, _ core.Wavelength, time float64) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction, time, 0), 1e-3, math.Inf(1)); !ok {
		return 0
	}
	distanceSquared := s.centerAt(time).Subtract(origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return 1.0 / (4.0 * math.Pi)
	}
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1.0 / solidAngle
}

func (s *Sphere) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	center := s.Center
	direction := center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	uvw := newONBForRandom(direction)

	r1 := random.Float64()
	r2 := random.Float64()
	var z float64
	if distanceSquared <= s.Radius*s.Radius {
		z = 1 - 2*r2
	} else {
		cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
		z = 1 + r2*(cosThetaMax-1)
	}
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(1-z*z)
	y := math.Sin(phi) * math.Sqrt(1-z*z)
	local := core.NewVec3(x, y, z)
	return uvw.local(local)
}

// MovingSphere linearly interpolates its center between Center0 at
// Time0 and Center1 at Time1.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1 float64
	Radius float64
	Material material.Material
}

func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

func (s *MovingSphere) centerAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(t))
}

func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.centerAt(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

func (s *MovingSphere) AABB() (core.AABB, bool) {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABBFromPoints(s.Center0.Subtract(r), s.Center0.Add(r))
	box1 := core.NewAABBFromPoints(s.Center1.Subtract(r), s.Center1.Add(r))
	return box0.Union(box1), true
}

func (s *MovingSphere) Centroid() core.Vec3 {
	return s.Center0.Add(s.Center1).Multiply(0.5)
}

func (s *MovingSphere) PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	sph := Sphere{Center: s.centerAt(time), Radius: s.Radius, Material: s.Material}
	return sph.PDFValue(origin, direction, wavelength, time)
}

func (s *MovingSphere) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	sph := Sphere{Center: s.centerAt(0.5), Radius: s.Radius, Material: s.Material}
	return sph.RandomDirectionTo(origin, random)
}

type randomONB struct{ u, v, w core.Vec3 }

func newONBForRandom(w core.Vec3) randomONB {
	w = w.Normalize()
	a := core.NewVec3(0, 1, 0)
	if math.Abs(w.X) > 0.9 {
		a = core.NewVec3(1, 0, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return randomONB{u: u, v: v, w: w}
}

func (b randomONB) local(p core.Vec3) core.Vec3 {
	return b.u.Multiply(p.X).Add(b.v.Multiply(p.Y)).Add(b.w.Multiply(p.Z))
}
