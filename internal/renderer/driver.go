package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/geometry"
	"github.com/nordlicht/spectra/internal/integrator"
	"github.com/nordlicht/spectra/internal/sampler"
	"github.com/nordlicht/spectra/internal/spectrum"
)

// Mode selects what the render driver writes per pixel.
type Mode int

const (
	// PathTracing accumulates the path integrator's estimate.
	PathTracing Mode = iota
	// NormalMap maps the first hit's normal to a color.
	NormalMap
	// BvhTestCount maps the BVH's instrumented node-visit count to a
	// color ramp.
	BvhTestCount
	// PrimitiveTestCount maps the instrumented leaf-primitive test
	// count to a color ramp.
	PrimitiveTestCount
)

// Config holds the render driver's parameters (the CLI
// surface, minus the scene file and output path which are the CLI
// collaborator's concern).
type Config struct {
	Width, Height int
	Samples int
	MaxDepth int
	Mode Mode
	NumWorkers int // 0 = runtime.NumCPU()
}

// Scene is the render driver's view of a scene: everything the
// integrator needs plus the camera and time bounds used to build
// primary rays.
type Scene interface {
	integrator.Scene
	Camera() *Camera
	TimeBounds() (float64, float64)
}

// Render renders the image row by row in parallel: NumWorkers
// goroutines (runtime.NumCPU() when NumWorkers <= 0) each pull single
// rows from a shared channel, and each owns its own RNG. It returns a
// width*height slice of XYZ pixel values in row-major order with row 0
// at the bottom of the image (the camera's own convention); flipping
// to PNG's top-left origin is ToneMapToRGBA's job.
func Render(cfg Config, scn Scene, samp sampler.Sampler) []core.XyzE {
	pixels := make([]core.XyzE, cfg.Width*cfg.Height)
	pt := integrator.NewPathTracer(cfg.MaxDepth)

	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		// Each worker gets its own RNG seeded independently; no RNG is
		// ever shared across goroutines.
		random := rand.New(rand.NewSource(int64(uint64(w)*0x9e3779b97f4a7c15 + 1)))
		go func(random *rand.Rand) {
			defer wg.Done()
			for y := range rows {
				renderRow(cfg, scn, pt, samp, random, pixels, y)
			}
		}(random)
	}
	wg.Wait()

	return pixels
}

func renderRow(cfg Config, scn Scene, pt *integrator.PathTracer, samp sampler.Sampler, random *rand.Rand, pixels []core.XyzE, y int) {
	camera := scn.Camera()
	time0, time1 := scn.TimeBounds()

	for x := 0; x < cfg.Width; x++ {
		var accum core.Vec3
		for s := 0; s < cfg.Samples; s++ {
			smp := samp.Sample(x, y, s, random)
			u := (float64(x) + smp.PixelOffset.X) / float64(cfg.Width)
			v := (float64(y) + smp.PixelOffset.Y) / float64(cfg.Height)
			time := time0 + smp.Time*(time1-time0)

			ray := camera.Ray(u, v, smp.LensOffset, time, smp.Wavelength)

			contribution := samplePixel(cfg.Mode, pt, ray, scn, random)
			if !contribution.IsFinite() {
				continue // drop NaN/non-finite samples
			}
			accum = accum.Add(contribution)
		}
		if cfg.Samples > 0 {
			accum = accum.Multiply(1.0 / float64(cfg.Samples))
		}
		pixels[y*cfg.Width+x] = accum
	}
}

// samplePixel dispatches a single camera ray according to the
// configured render mode.
func samplePixel(mode Mode, pt *integrator.PathTracer, ray core.Ray, scn Scene, random *rand.Rand) core.Vec3 {
	switch mode {
	case PathTracing:
		l := pt.Li(ray, scn, random)
		xyz := spectrum.WavelengthToXYZ(ray.Wavelength)
		return xyz.Multiply(l)

	case NormalMap:
		hit, ok := scn.Root().Hit(ray, 1e-3, math.Inf(1))
		if !ok {
			return core.Vec3{}
		}
		n := hit.Normal
		return core.NewVec3((n.X+1)*0.5, (n.Y+1)*0.5, (n.Z+1)*0.5)

	case BvhTestCount:
		_, _, nodeTests, _ := geometry.CountHit(scn.Root(), ray, 1e-3, math.Inf(1))
		return rampColor(nodeTests)

	case PrimitiveTestCount:
		_, _, _, primTests := geometry.CountHit(scn.Root(), ray, 1e-3, math.Inf(1))
		return rampColor(primTests)

	default:
		return core.Vec3{}
	}
}

// rampColor maps an instrumented traversal count to a blue-to-red heat
// ramp for BvhTestCount/PrimitiveTestCount modes.
func rampColor(count int) core.Vec3 {
	t := math.Min(1, float64(count)/64.0)
	return core.NewVec3(t, 0, 1-t)
}
