package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlicht/spectra/internal/core"
)

func TestMetal_ClampsFuzz(t *testing.T) {
	assert.Equal(t, 1.0, NewMetal(core.Vec3{}, 5).Fuzz)
	assert.Equal(t, 0.0, NewMetal(core.Vec3{}, -5).Fuzz)
}

func TestMetal_ScatterReflectsAboutNormal(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1), 0, 550)

	record, ok := metal.Scatter(rayIn, hit, rand.New(rand.NewSource(1)))
	assert.True(t, ok)
	assert.True(t, record.Specular)
	assert.True(t, record.SpecularRay.Direction.Equals(core.NewVec3(0, 1, 1).Normalize()))
}

func TestMetal_FuzzedRayBelowSurfaceIsAbsorbed(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	rayIn := core.NewRay(core.NewVec3(-1, 0.1, 0), core.NewVec3(1, -0.1, 0), 0, 550)

	// A grazing ray reflects just above the surface, so full-strength
	// fuzz pushes the direction below the normal for some of the seeds.
	absorbedAtLeastOnce := false
	for seed := int64(0); seed < 50; seed++ {
		_, ok := metal.Scatter(rayIn, hit, rand.New(rand.NewSource(seed)))
		if !ok {
			absorbedAtLeastOnce = true
			break
		}
	}
	assert.True(t, absorbedAtLeastOnce)
}

func TestMetal_IsNotWavelengthDependent(t *testing.T) {
	assert.False(t, NewMetal(core.Vec3{}, 0).IsWavelengthDependent())
}
