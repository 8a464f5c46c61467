package core

// Interval is an ordered pair (Min, Max) with Min <= Max, the
// one-dimensional building block of an AABB.
type Interval struct {
	Min, Max float64
}

// NewInterval creates an Interval, ordering the bounds if necessary.
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Min: a, Max: b}
}

// Size returns Max - Min.
func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Center returns the midpoint of the interval.
func (iv Interval) Center() float64 {
	return (iv.Min + iv.Max) * 0.5
}

// Expand returns the interval padded by delta on both ends.
func (iv Interval) Expand(delta float64) Interval {
	return Interval{Min: iv.Min - delta, Max: iv.Max + delta}
}

// Union returns the smallest interval containing both intervals.
func (iv Interval) Union(other Interval) Interval {
	return Interval{
		Min: min(iv.Min, other.Min),
		Max: max(iv.Max, other.Max),
	}
}

// Contains reports whether x lies within the closed interval.
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// minIntervalThickness is the padding applied to a degenerate
// (zero-size) interval so the slab test in AABB.Hit does not reject a
// ray crossing a flat axis, whose entry and exit distances would
// otherwise coincide.
const minIntervalThickness = 1e-4

// nonDegenerate pads the interval to at least minIntervalThickness,
// expanding symmetrically around its center.
func (iv Interval) nonDegenerate() Interval {
	if iv.Size() >= minIntervalThickness {
		return iv
	}
	pad := minIntervalThickness / 2
	return Interval{Min: iv.Min - pad, Max: iv.Max + pad}
}
