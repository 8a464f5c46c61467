package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordlicht/spectra/internal/geometry"
)

const minimalSceneJSON = `{
  "time_0": 0,
  "time_1": 1,
  "background_color": {"srgb": [0.1, 0.1, 0.1]},
  "camera": {
    "look_from": [0, 0, 0],
    "look_at": [0, 0, -1],
    "up": [0, 1, 0],
    "vertical_fov": 40,
    "aperture": 0,
    "focus_distance": 1
  },
  "materials": [
    {"name": "ground", "type": "lambertian", "albedo": [0.5, 0.5, 0.5]},
    {"name": "sun", "type": "diffuse_light", "emission": [10, 10, 10]}
  ],
  "objects": [
    {"type": "sphere", "material": "ground", "center": [0, -100, -5], "radius": 100},
    {"type": "sphere", "material": "sun", "priority": true, "center": [0, 5, -5], "radius": 1}
  ]
}`

func writeTempScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesMinimalScene(t *testing.T) {
	path := writeTempScene(t, minimalSceneJSON)
	scn, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	require.NoError(t, err)
	assert.NotNil(t, scn.Root())
	assert.False(t, geometry.IsEmpty(scn.MISPriority()))

	t0, t1 := scn.TimeBounds()
	assert.Equal(t, 0.0, t0)
	assert.Equal(t, 1.0, t1)
}

func TestLoad_RejectsUnknownMaterialType(t *testing.T) {
	bad := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{"name": "x", "type": "not_a_real_type"}],
  "objects": [{"type": "sphere", "material": "x", "center": [0,0,-5], "radius": 1}]
}`
	path := writeTempScene(t, bad)
	_, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownMaterialReference(t *testing.T) {
	bad := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{"name": "x", "type": "lambertian", "albedo": [1,1,1]}],
  "objects": [{"type": "sphere", "material": "does_not_exist", "center": [0,0,-5], "radius": 1}]
}`
	path := writeTempScene(t, bad)
	_, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyObjectList(t *testing.T) {
	bad := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [],
  "objects": []
}`
	path := writeTempScene(t, bad)
	_, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	assert.Error(t, err)
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), 1.0, geometry.BuildLongestAxisMidpoint)
	assert.Error(t, err)
}

func TestLoad_ConstantMediumRequiresBoundary(t *testing.T) {
	bad := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{"name": "smoke", "type": "lambertian", "albedo": [1,1,1]}],
  "objects": [{"type": "constant_medium", "material": "smoke", "density": 0.1}]
}`
	path := writeTempScene(t, bad)
	_, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	assert.Error(t, err)
}

func TestLoad_BuildsUsableConstantMedium(t *testing.T) {
	good := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{"name": "smoke", "type": "lambertian", "albedo": [1,1,1]}],
  "objects": [{
    "type": "constant_medium",
    "material": "smoke",
    "density": 0.1,
    "boundary": {"type": "box", "material": "smoke", "a": [-1,-1,-1], "b": [1,1,1]}
  }]
}`
	path := writeTempScene(t, good)
	scn, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	require.NoError(t, err)
	assert.NotNil(t, scn.Root())
}

func TestLoad_ConstantMediumAcceptsIsotropicPhase(t *testing.T) {
	good := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{"name": "fog", "type": "isotropic", "albedo": [0.8, 0.8, 0.9]}],
  "objects": [{
    "type": "constant_medium",
    "material": "fog",
    "density": 0.2,
    "boundary": {"type": "box", "material": "fog", "a": [-1,-1,-1], "b": [1,1,1]}
  }]
}`
	path := writeTempScene(t, good)
	scn, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	require.NoError(t, err)
	assert.NotNil(t, scn.Root())
}

func TestLoad_BuildsMovingSphere(t *testing.T) {
	good := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{"name": "m", "type": "lambertian", "albedo": [1,1,1]}],
  "objects": [{
    "type": "moving_sphere", "material": "m",
    "center": [0,0,-5], "center1": [0,1,-5],
    "time0": 0, "time1": 1, "radius": 0.5
  }]
}`
	path := writeTempScene(t, good)
	scn, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	require.NoError(t, err)
	assert.NotNil(t, scn.Root())
}

func TestLoad_BuildsTriangle(t *testing.T) {
	good := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{"name": "m", "type": "lambertian", "albedo": [1,1,1]}],
  "objects": [{
    "type": "triangle", "material": "m",
    "v0": [0,0,-5], "v1": [1,0,-5], "v2": [0,1,-5]
  }]
}`
	path := writeTempScene(t, good)
	scn, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	require.NoError(t, err)
	assert.NotNil(t, scn.Root())
}

func TestLoad_BuildsRotatedTranslatedBox(t *testing.T) {
	good := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{"name": "m", "type": "lambertian", "albedo": [1,1,1]}],
  "objects": [{
    "type": "translate",
    "offset": [0, 0, -5],
    "object": {
      "type": "rotate",
      "angle": 15,
      "object": {"type": "box", "material": "m", "a": [-1,-1,-1], "b": [1,1,1]}
    }
  }]
}`
	path := writeTempScene(t, good)
	scn, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	require.NoError(t, err)
	assert.NotNil(t, scn.Root())
}

func TestLoad_RotateRequiresObject(t *testing.T) {
	bad := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [],
  "objects": [{"type": "rotate", "angle": 10}]
}`
	path := writeTempScene(t, bad)
	_, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	assert.Error(t, err)
}

func TestLoad_BuildsThinFilmReferencingEarlierMaterial(t *testing.T) {
	good := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [
    {"name": "base", "type": "metal", "albedo": [0.9, 0.9, 0.9], "fuzz": 0},
    {"name": "coated", "type": "thin_film", "base": "base", "film_ior": 1.3, "thickness_nm": 400}
  ],
  "objects": [{"type": "sphere", "material": "coated", "center": [0,0,-5], "radius": 1}]
}`
	path := writeTempScene(t, good)
	scn, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	require.NoError(t, err)
	assert.NotNil(t, scn.Root())
}

func TestLoad_RejectsThinFilmWithUnknownBase(t *testing.T) {
	bad := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{"name": "coated", "type": "thin_film", "base": "missing", "film_ior": 1.3, "thickness_nm": 400}],
  "objects": [{"type": "sphere", "material": "coated", "center": [0,0,-5], "radius": 1}]
}`
	path := writeTempScene(t, bad)
	_, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	assert.Error(t, err)
}

func TestLoad_BuildsCheckerTextureAlbedo(t *testing.T) {
	good := `{
  "camera": {"look_from":[0,0,0],"look_at":[0,0,-1],"up":[0,1,0],"vertical_fov":40,"focus_distance":1},
  "materials": [{
    "name": "tiles", "type": "lambertian",
    "albedo_texture": {"type": "checker", "scale": 0.5, "even": [0.9,0.9,0.9], "odd": [0.1,0.1,0.1]}
  }],
  "objects": [{"type": "sphere", "material": "tiles", "center": [0,0,-5], "radius": 1}]
}`
	path := writeTempScene(t, good)
	scn, err := Load(path, 1.0, geometry.BuildLongestAxisMidpoint)
	require.NoError(t, err)
	assert.NotNil(t, scn.Root())
}
