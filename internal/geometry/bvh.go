package geometry

import (
	"math"
	"math/rand"
	"sort"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// BuildKind selects the BVH construction algorithm.
type BuildKind int

const (
	// BuildLongestAxisMidpoint splits the longest axis at its
	// midpoint, a single sort plus a slice split.
	BuildLongestAxisMidpoint BuildKind = iota
	// BuildSAH evaluates the Surface Area Heuristic over 8 candidate
	// positions per axis.
	BuildSAH
)

// BVHNode is a node of the Bounding Volume Hierarchy: two children and
// the union of their AABBs. Leaves store one or two
// actual primitives in Left/Right, with Empty filling the unused slot
// of a single-primitive leaf.
type BVHNode struct {
	Box core.AABB
	Left Primitive
	Right Primitive
}

// NewBVH builds a BVH over primitives using the requested algorithm.
// Building with zero primitives is a caller error; NewBVH panics
// rather than silently returning a traversable-but-empty tree, so the
// error surfaces at scene build time, not at first ray.
func NewBVH(primitives []Primitive, kind BuildKind) *BVHNode {
	if len(primitives) == 0 {
		panic("geometry: NewBVH called with zero primitives")
	}
	shapes := make([]Primitive, len(primitives))
	copy(shapes, primitives)

	switch kind {
	case BuildSAH:
		return buildSAH(shapes)
	default:
		return buildMidpoint(shapes)
	}
}

func unionAABB(shapes []Primitive) core.AABB {
	box, _ := shapes[0].AABB()
	for _, s := range shapes[1:] {
		b, _ := s.AABB()
		box = box.Union(b)
	}
	return box
}

// buildMidpoint implements the longest-axis midpoint
// builder, including its stated degenerate cases and "Greater"
// tie-break on equal bounding boxes.
func buildMidpoint(shapes []Primitive) *BVHNode {
	box := unionAABB(shapes)

	switch len(shapes) {
	case 1:
		return &BVHNode{Box: box, Left: shapes[0], Right: Empty{}}
	case 2:
		return &BVHNode{Box: box, Left: shapes[0], Right: shapes[1]}
	case 3:
		// Asymmetric node: one leaf, one 2-primitive subnode.
		axis := box.LongestAxis()
		sortByAxis(shapes, axis)
		leaf := &BVHNode{Box: mustAABB(shapes[0]), Left: shapes[0], Right: Empty{}}
		sub := &BVHNode{Box: unionAABB(shapes[1:3]), Left: shapes[1], Right: shapes[2]}
		return &BVHNode{Box: box, Left: leaf, Right: sub}
	}

	axis := box.LongestAxis()
	sortByAxis(shapes, axis)
	mid := len(shapes) / 2
	return &BVHNode{
		Box: box,
		Left: buildMidpoint(shapes[:mid]),
		Right: buildMidpoint(shapes[mid:]),
	}
}

// sortByAxis sorts shapes by AABB-minimum along axis, falling back to
// "Greater" (i.e. a stable false for equal keys, which sort.SliceStable
// leaves in place) on ties.
func sortByAxis(shapes []Primitive, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		bi, _ := shapes[i].AABB()
		bj, _ := shapes[j].AABB()
		return bi.Min().Axis(axis) < bj.Min().Axis(axis)
	})
}

func mustAABB(p Primitive) core.AABB {
	box, _ := p.AABB()
	return box
}

const sahCandidates = 8

// buildSAH implements the Surface Area Heuristic builder:
// for each axis and each of 8 evenly-spaced candidate split positions,
// partition by centroid and score cost = |L|·area(L) + |R|·area(R),
// picking the minimum.
func buildSAH(shapes []Primitive) *BVHNode {
	box := unionAABB(shapes)

	if len(shapes) <= 2 {
		if len(shapes) == 1 {
			return &BVHNode{Box: box, Left: shapes[0], Right: Empty{}}
		}
		return &BVHNode{Box: box, Left: shapes[0], Right: shapes[1]}
	}

	bestAxis := -1
	bestPos := 0.0
	bestCost := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		lo := box.Min().Axis(axis)
		hi := box.Max().Axis(axis)
		if hi <= lo {
			continue
		}
		for i := 1; i <= sahCandidates; i++ {
			pos := lo + (hi-lo)*float64(i)/float64(sahCandidates+1)

			var leftCount, rightCount int
			var leftBox, rightBox core.AABB
			haveLeft, haveRight := false, false

			for _, s := range shapes {
				b, _ := s.AABB()
				if s.Centroid().Axis(axis) < pos {
					leftCount++
					if haveLeft {
						leftBox = leftBox.Union(b)
					} else {
						leftBox, haveLeft = b, true
					}
				} else {
					rightCount++
					if haveRight {
						rightBox = rightBox.Union(b)
					} else {
						rightBox, haveRight = b, true
					}
				}
			}

			if leftCount == 0 && rightCount == 0 {
				continue // skip: both sides empty
			}

			cost := 0.0
			if haveLeft {
				cost += float64(leftCount) * leftBox.SurfaceArea()
			}
			if haveRight {
				cost += float64(rightCount) * rightBox.SurfaceArea()
			}
			if cost < bestCost {
				bestCost = cost
				bestAxis = axis
				bestPos = pos
			}
		}
	}

	if bestAxis == -1 {
		// No axis had any extent: degenerate point cloud, emit a leaf
		// via the midpoint path's list-splitting behavior.
		return buildMidpoint(shapes)
	}

	var left, right []Primitive
	for _, s := range shapes {
		// Strict inequality: a centroid exactly at bestPos goes right,
		// guaranteeing progress.
		if s.Centroid().Axis(bestAxis) < bestPos {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	if len(left) == 0 {
		return &BVHNode{Box: box, Left: buildSAHOrLeaf(right), Right: Empty{}}
	}
	if len(right) == 0 {
		return &BVHNode{Box: box, Left: buildSAHOrLeaf(left), Right: Empty{}}
	}

	return &BVHNode{Box: box, Left: buildSAH(left), Right: buildSAH(right)}
}

func buildSAHOrLeaf(shapes []Primitive) Primitive {
	if len(shapes) == 1 {
		return shapes[0]
	}
	// The SAH split left this set unchanged; splitting it again by the
	// same rule would not make progress, so fall back to the midpoint
	// builder.
	return buildMidpoint(shapes)
}

// Hit queries the nearest primitive hit in the subtree, using
// front-to-back traversal: it descends the closer child first and
// only visits the farther child when its AABB entry distance is
// smaller than the closer child's hit distance.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	ok, _ := n.Box.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	leftBox, leftHasBox := n.Left.AABB()
	rightBox, rightHasBox := n.Right.AABB()

	leftHit, leftNear := leftHasBox, tMin
	rightHit, rightNear := rightHasBox, tMin
	if leftHasBox {
		leftHit, leftNear = leftBox.Hit(ray, tMin, tMax)
	}
	if rightHasBox {
		rightHit, rightNear = rightBox.Hit(ray, tMin, tMax)
	}

	first, second := n.Left, n.Right
	firstHit := leftHit
	secondHit, secondNear := rightHit, rightNear
	if rightHasBox && leftHasBox && rightNear < leftNear {
		first, second = n.Right, n.Left
		firstHit = rightHit
		secondHit, secondNear = leftHit, leftNear
	}

	var closest *material.HitRecord
	closestMax := tMax

	if firstHit {
		if hit, ok := first.Hit(ray, tMin, closestMax); ok {
			closest = hit
			closestMax = hit.T
		}
	}

	if secondHit && secondNear < closestMax {
		if hit, ok := second.Hit(ray, tMin, closestMax); ok {
			closest = hit
			closestMax = hit.T
		}
	}

	return closest, closest != nil
}

func (n *BVHNode) AABB() (core.AABB, bool) { return n.Box, true }

func (n *BVHNode) Centroid() core.Vec3 { return n.Box.Center() }

// PDFValue averages the PDF values of the non-Empty children, giving
// the BVH itself a usable PDF for MIS sampling.
func (n *BVHNode) PDFValue(origin, direction core.Vec3, wavelength core.Wavelength, time float64) float64 {
	values := make([]float64, 0, 2)
	if !IsEmpty(n.Left) {
		values = append(values, n.Left.PDFValue(origin, direction, wavelength, time))
	}
	if !IsEmpty(n.Right) {
		values = append(values, n.Right.PDFValue(origin, direction, wavelength, time))
	}
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// RandomDirectionTo uniformly picks one non-Empty child and samples a
// direction toward it.
func (n *BVHNode) RandomDirectionTo(origin core.Vec3, random *rand.Rand) core.Vec3 {
	candidates := make([]Primitive, 0, 2)
	if !IsEmpty(n.Left) {
		candidates = append(candidates, n.Left)
	}
	if !IsEmpty(n.Right) {
		candidates = append(candidates, n.Right)
	}
	if len(candidates) == 0 {
		return core.NewVec3(0, 0, 1)
	}
	return candidates[random.Intn(len(candidates))].RandomDirectionTo(origin, random)
}
