// Package scene implements the Scene data model: the
// root BVH over all primitives, a second BVH over the priority
// (light) subset used for MIS, a camera, a background emission, and
// time bounds. Scenes are built once by a loader and shared read-only
// across render workers.
package scene

import (
	"fmt"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/geometry"
	"github.com/nordlicht/spectra/internal/renderer"
)

// Scene is the fully-resolved, render-ready scene. Nothing is mutated
// after Build returns; all fields are safe to read concurrently.
type Scene struct {
	root geometry.Primitive
	misPriority geometry.Primitive
	camera *renderer.Camera
	background core.XyzE
	time0, time1 float64
}

// Root returns the root BVH over every primitive in the scene.
func (s *Scene) Root() geometry.Primitive { return s.root }

// MISPriority returns the secondary BVH over the priority (light and
// highly-specular) subset, used by the integrator for direct light
// sampling.
func (s *Scene) MISPriority() geometry.Primitive { return s.misPriority }

// Camera returns the scene's camera.
func (s *Scene) Camera() *renderer.Camera { return s.camera }

// Background returns the XYZ emission returned for rays that escape
// the scene entirely.
func (s *Scene) Background() core.XyzE { return s.background }

// TimeBounds returns [t0, t1], the interval camera shutter times are
// drawn from.
func (s *Scene) TimeBounds() (float64, float64) { return s.time0, s.time1 }

// Build assembles a Scene from already-resolved primitives, a
// subset of priority primitives, a camera, a background color, a BVH
// build strategy, and shutter time bounds. An empty primitive list is
// rejected here: the loader must not produce an empty scene.
func Build(primitives []geometry.Primitive, priority []geometry.Primitive, camera *renderer.Camera, background core.XyzE, buildKind geometry.BuildKind, time0, time1 float64) (*Scene, error) {
	if len(primitives) == 0 {
		return nil, fmt.Errorf("scene: cannot build from zero primitives")
	}

	root := geometry.NewBVH(primitives, buildKind)

	var misPriority geometry.Primitive
	if len(priority) == 0 {
		misPriority = geometry.Empty{}
	} else {
		misPriority = geometry.NewBVH(priority, buildKind)
	}

	return &Scene{
		root: root,
		misPriority: misPriority,
		camera: camera,
		background: background,
		time0: time0,
		time1: time1,
	}, nil
}
