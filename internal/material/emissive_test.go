package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlicht/spectra/internal/core"
)

func TestDiffuseLight_EmitsOnlyFromFrontFace(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(10, 10, 10))

	front := HitRecord{FrontFace: true}
	assert.Equal(t, core.NewVec3(10, 10, 10), light.Emit(core.Ray{}, front))

	back := HitRecord{FrontFace: false}
	assert.Equal(t, core.Vec3{}, light.Emit(core.Ray{}, back))
}

func TestDiffuseLight_DoesNotScatter(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(1, 1, 1))
	_, ok := light.Scatter(core.Ray{}, HitRecord{}, nil)
	assert.False(t, ok)
}

func TestConeLight_EmitsOnlyWithinHalfAngle(t *testing.T) {
	cone := NewConeLight(core.NewVec3(5, 5, 5), math.Pi/6) // 30 degrees
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}

	// Ray arriving head-on: well within the cone.
	straightOn := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0, 550)
	assert.Equal(t, core.NewVec3(5, 5, 5), cone.Emit(straightOn, hit))

	// Ray arriving at a steep grazing angle: outside the cone.
	grazing := core.NewRay(core.NewVec3(5, 0, 0.01), core.NewVec3(-1, 0, -0.001), 0, 550)
	assert.Equal(t, core.Vec3{}, cone.Emit(grazing, hit))
}

func TestConeLight_EmitsNothingFromBackFace(t *testing.T) {
	cone := NewConeLight(core.NewVec3(5, 5, 5), math.Pi/6)
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: false}
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0, 550)
	assert.Equal(t, core.Vec3{}, cone.Emit(ray, hit))
}
