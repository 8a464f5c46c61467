package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlicht/spectra/internal/core"
)

func TestNewCamera_CenterRayLooksAtTarget(t *testing.T) {
	cam := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up: core.NewVec3(0, 1, 0),
		VerticalFOV: 90,
		AspectRatio: 1,
		Aperture: 0,
		FocusDistance: 1,
	})

	ray := cam.Ray(0.5, 0.5, core.Vec2{}, 0, 550)
	assert.True(t, ray.Origin.Equals(core.NewVec3(0, 0, 0)))
	assert.True(t, ray.Direction.Equals(core.NewVec3(0, 0, -1)))
}

func TestNewCamera_CornerRaysDivergeFromCenter(t *testing.T) {
	cam := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up: core.NewVec3(0, 1, 0),
		VerticalFOV: 90,
		AspectRatio: 1,
		Aperture: 0,
		FocusDistance: 1,
	})

	center := cam.Ray(0.5, 0.5, core.Vec2{}, 0, 550)
	corner := cam.Ray(0, 0, core.Vec2{}, 0, 550)
	assert.NotEqual(t, center.Direction, corner.Direction)
}

func TestNewCamera_ZeroApertureIgnoresLensOffset(t *testing.T) {
	cam := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up: core.NewVec3(0, 1, 0),
		VerticalFOV: 90,
		AspectRatio: 1,
		Aperture: 0,
		FocusDistance: 1,
	})

	a := cam.Ray(0.5, 0.5, core.NewVec2(1, 1), 0, 550)
	b := cam.Ray(0.5, 0.5, core.NewVec2(-1, -1), 0, 550)
	assert.True(t, a.Origin.Equals(b.Origin))
}

func TestNewCamera_NonZeroApertureOffsetsOrigin(t *testing.T) {
	cam := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up: core.NewVec3(0, 1, 0),
		VerticalFOV: 90,
		AspectRatio: 1,
		Aperture: 1,
		FocusDistance: 1,
	})

	a := cam.Ray(0.5, 0.5, core.NewVec2(1, 0), 0, 550)
	b := cam.Ray(0.5, 0.5, core.NewVec2(-1, 0), 0, 550)
	assert.False(t, a.Origin.Equals(b.Origin))
}
