package core

// AABB is an axis-aligned bounding box made of three Intervals, one
// per axis. Constructors pad degenerate axes so the slab test in Hit
// never degenerates on axis-aligned geometry (quads, triangles
// coplanar with an axis), matching the AABB invariant.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB builds an AABB from three intervals, padding any
// zero-thickness axis.
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x.nonDegenerate(), Y: y.nonDegenerate(), Z: z.nonDegenerate()}
}

// NewAABBFromPoints returns the smallest AABB enclosing all given
// points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vec3{X: minf(min.X, p.X), Y: minf(min.Y, p.Y), Z: minf(min.Z, p.Z)}
		max = Vec3{X: maxf(max.X, p.X), Y: maxf(max.Y, p.Y), Z: maxf(max.Z, p.Z)}
	}
	return NewAABB(NewInterval(min.X, max.X), NewInterval(min.Y, max.Y), NewInterval(min.Z, max.Z))
}

func (a AABB) axis(i int) Interval {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// Min returns the box's minimum corner.
func (a AABB) Min() Vec3 { return Vec3{a.X.Min, a.Y.Min, a.Z.Min} }

// Max returns the box's maximum corner.
func (a AABB) Max() Vec3 { return Vec3{a.X.Max, a.Y.Max, a.Z.Max} }

// Hit implements the slab-method ray-box test: for
// each axis it computes the two crossing distances, swaps them so near
// <= far (required when the direction component is negative), and
// narrows [tMin, tMax] to the intersection of all three slabs. It
// returns both whether the box is hit and the resulting near distance,
// which the BVH uses to order front-to-back traversal.
func (a AABB) Hit(ray Ray, tMin, tMax float64) (bool, float64) {
	near := tMin
	for axis := 0; axis < 3; axis++ {
		iv := a.axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		if direction == 0 {
			// Degenerate direction component: the ray is
			// parallel to this slab; ±∞ crossing distances naturally
			// fall out of the division below for a non-zero origin
			// offset, but guard the literal 0/0 case explicitly.
			if origin < iv.Min || origin > iv.Max {
				return false, near
			}
			continue
		}

		invD := 1.0 / direction
		t1 := (iv.Min - origin) * invD
		t2 := (iv.Max - origin) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMax <= tMin {
			return false, near
		}
	}
	return true, tMin
}

// Union returns an AABB bounding both this box and other.
func (a AABB) Union(other AABB) AABB {
	return AABB{X: a.X.Union(other.X), Y: a.Y.Union(other.Y), Z: a.Z.Union(other.Z)}
}

// Center returns the centroid of the box.
func (a AABB) Center() Vec3 {
	return Vec3{a.X.Center(), a.Y.Center(), a.Z.Center()}
}

// Size returns the extent of the box along each axis.
func (a AABB) Size() Vec3 {
	return Vec3{a.X.Size(), a.Y.Size(), a.Z.Size()}
}

// SurfaceArea returns the total surface area of the box, the cost term
// used by the SAH builder.
func (a AABB) SurfaceArea() float64 {
	s := a.Size()
	return 2.0 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest
// extent, ties broken toward the later axis.
func (a AABB) LongestAxis() int {
	s := a.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

// Expand returns the box padded by amount on every side.
func (a AABB) Expand(amount float64) AABB {
	return AABB{X: a.X.Expand(amount), Y: a.Y.Expand(amount), Z: a.Z.Expand(amount)}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
