package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/geometry"
	"github.com/nordlicht/spectra/internal/material"
	"github.com/nordlicht/spectra/internal/sampler"
)

type driverTestScene struct {
	root geometry.Primitive
	cam *Camera
}

func (s driverTestScene) Root() geometry.Primitive { return s.root }
func (s driverTestScene) MISPriority() geometry.Primitive { return s.root }
func (s driverTestScene) Background() core.XyzE { return core.XyzE{} }
func (s driverTestScene) Camera() *Camera { return s.cam }
func (s driverTestScene) TimeBounds() (float64, float64) { return 0, 0 }

// A surface with a front-facing normal pointing back along -Z toward
// the camera maps to color (0.5, 0.5, 0) under the NormalMap mode's
// [-1,1] -> [0,1] remap.
func TestSamplePixel_NormalMapFrontFacingMinusZ(t *testing.T) {
	quad := geometry.NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(0, 2, 0), core.NewVec3(2, 0, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0, 550)

	hit, ok := quad.Hit(ray, 1e-3, 1000)
	assert.True(t, ok)
	assert.True(t, hit.Normal.Equals(core.NewVec3(0, 0, -1)))

	color := samplePixel(NormalMap, nil, ray, driverTestScene{root: quad}, nil)
	assert.InDelta(t, 0.5, color.X, 1e-9)
	assert.InDelta(t, 0.5, color.Y, 1e-9)
	assert.InDelta(t, 0.0, color.Z, 1e-9)
}

func TestSamplePixel_NormalMapMissIsBlack(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, 1, 0), 0, 550)
	color := samplePixel(NormalMap, nil, ray, driverTestScene{root: sphere}, nil)
	assert.Equal(t, core.Vec3{}, color)
}

func TestRampColor_ClampsAtOne(t *testing.T) {
	low := rampColor(0)
	assert.Equal(t, core.NewVec3(0, 0, 1), low)

	high := rampColor(1000)
	assert.Equal(t, core.NewVec3(1, 0, 0), high)
}

func TestRender_ProducesCorrectlySizedPixelBuffer(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(1, 1, 1))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 10, light)
	cam := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up: core.NewVec3(0, 1, 0),
		VerticalFOV: 90,
		AspectRatio: 1,
		FocusDistance: 1,
	})
	scene := driverTestScene{root: sphere, cam: cam}

	pixels := Render(Config{Width: 4, Height: 4, Samples: 2, MaxDepth: 1, Mode: PathTracing, NumWorkers: 1}, scene, sampler.NewUniformSampler())
	assert.Len(t, pixels, 16)
	for _, p := range pixels {
		assert.True(t, p.IsFinite())
	}
}

func TestRender_IsDeterministicWithOneWorker(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(1, 1, 1))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 10, light)
	cam := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up: core.NewVec3(0, 1, 0),
		VerticalFOV: 90,
		AspectRatio: 1,
		FocusDistance: 1,
	})
	scene := driverTestScene{root: sphere, cam: cam}
	cfg := Config{Width: 2, Height: 2, Samples: 2, MaxDepth: 1, Mode: PathTracing, NumWorkers: 1}

	a := Render(cfg, scene, sampler.NewUniformSampler())
	b := Render(cfg, scene, sampler.NewUniformSampler())
	assert.Equal(t, a, b)
}
