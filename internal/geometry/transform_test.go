package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlicht/spectra/internal/core"
)

func TestTranslate_HitRoundTrip(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	moved := NewTranslate(sphere, core.NewVec3(5, 0, 0))

	ray := core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1), 0, 550)
	hit, ok := moved.Hit(ray, 0.001, 1000)
	assert.True(t, ok)
	assert.True(t, hit.Point.Equals(core.NewVec3(5, 0, 1)))
}

func TestTranslate_AABBIsOffsetByOffset(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	moved := NewTranslate(sphere, core.NewVec3(5, 0, 0))
	box, ok := moved.AABB()
	assert.True(t, ok)
	assert.True(t, box.Min().Equals(core.NewVec3(4, -1, -1)))
	assert.True(t, box.Max().Equals(core.NewVec3(6, 1, 1)))
}

func TestRotateY_HitRoundTripPreservesSphere(t *testing.T) {
	// A sphere centered on the rotation axis is invariant under Y rotation.
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	rotated := NewRotateY(sphere, math.Pi/4)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0, 550)
	hit, ok := rotated.Hit(ray, 0.001, 1000)
	assert.True(t, ok)
	assert.InDelta(t, 4, hit.T, 1e-9)
}

func TestRotateY_RotatesOffCenterBox(t *testing.T) {
	box := NewBox(core.NewVec3(0, -1, -1), core.NewVec3(2, 1, 1), nil)
	rotated := NewRotateY(box, math.Pi/2)

	// A 90-degree rotation maps the box's X extent onto the Z axis.
	aabb, ok := rotated.AABB()
	assert.True(t, ok)
	assert.InDelta(t, 0, aabb.Min().Z, 1e-9)
	assert.InDelta(t, 2, aabb.Max().Z, 1e-9)
}
