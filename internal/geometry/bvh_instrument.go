package geometry

import (
	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// CountHit walks the same front-to-back traversal as BVHNode.Hit but
// additionally counts the number of BVH node AABB tests and leaf
// primitive tests performed, for the BvhTestCount/PrimitiveTestCount
// render modes. Non-BVH primitives (a leaf reached
// directly, or a scene with no acceleration structure at all) count
// as a single primitive test.
func CountHit(root Primitive, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool, int, int) {
	nodeTests, primTests := 0, 0
	hit, ok := countHit(root, ray, tMin, tMax, &nodeTests, &primTests)
	return hit, ok, nodeTests, primTests
}

func countHit(p Primitive, ray core.Ray, tMin, tMax float64, nodeTests, primTests *int) (*material.HitRecord, bool) {
	n, isNode := p.(*BVHNode)
	if !isNode {
		if IsEmpty(p) {
			return nil, false
		}
		*primTests++
		return p.Hit(ray, tMin, tMax)
	}

	*nodeTests++
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
		if hit, ok := countHit(first, ray, tMin, closestMax, nodeTests, primTests); ok {
			closest = hit
			closestMax = hit.T
		}
	}

	if secondHit && secondNear < closestMax {
		if hit, ok := countHit(second, ray, tMin, closestMax, nodeTests, primTests); ok {
			closest = hit
			closestMax = hit.T
		}
	}

	return closest, closest != nil
}
