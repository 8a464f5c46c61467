package material

import (
	"math"

	"github.com/nordlicht/spectra/internal/core"
)

// Texture evaluates a surface color/albedo at a given (u,v,point).
type Texture interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// ConstantTexture returns the same color everywhere.
type ConstantTexture struct {
	Color core.Vec3
}

func NewConstantTexture(color core.Vec3) *ConstantTexture { return &ConstantTexture{Color: color} }

func (t *ConstantTexture) Evaluate(core.Vec2, core.Vec3) core.Vec3 { return t.Color }

// CheckerTexture alternates between two textures on a 3D grid of the
// given scale.
type CheckerTexture struct {
	Scale float64
	Odd Texture
	Even Texture
}

func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Odd: odd, Even: even}
}

func (t *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	inv := 1.0 / t.Scale
	s := math.Floor(inv*point.X) + math.Floor(inv*point.Y) + math.Floor(inv*point.Z)
	if int(s)%2 == 0 {
		return t.Even.Evaluate(uv, point)
	}
	return t.Odd.Evaluate(uv, point)
}

// ImageTexture samples a decoded raster, row-major top-left origin,
// with nearest-neighbor filtering. Rasters are decoded by
// internal/loaders, which registers golang.org/x/image format
// decoders alongside the stdlib ones so PNG/JPEG/BMP textures all
// reach this type uniformly.
type ImageTexture struct {
	Width, Height int
	Pixels []core.Vec3 // Pixels[y*Width+x], sRGB-decoded linear channels, returned as-is
}

func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

func (t *ImageTexture) Evaluate(uv core.Vec2, _ core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}
	u := uv.X - math.Floor(uv.X)
	v := uv.Y - math.Floor(uv.Y)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return t.Pixels[y*t.Width+x]
}
