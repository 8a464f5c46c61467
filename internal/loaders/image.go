package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp" // registers the "bmp" format with image.Decode
	"golang.org/x/image/draw"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/material"
)

// LoadImageTexture decodes a PNG, JPEG, or BMP raster at path into a
// material.ImageTexture, sRGB-decoding each pixel to linear so it
// composes correctly with the renderer's linear-light math (the
// texture-backed Lambertian albedo). BMP support comes from
// golang.org/x/image/bmp, registered purely for its side effect of
// adding a codec to the stdlib image.Decode registry. maxDim, if
// positive, bilinearly scales the raster down so neither dimension exceeds
// it (a cheap mipmap-lite for meshes whose UV density is coarser than
// the source texture), using golang.org/x/image/draw.
func LoadImageTexture(path string, maxDim int) (*material.ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: failed to open image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loaders: failed to decode image %q: %w", path, err)
	}
	if maxDim > 0 {
		img = downsample(img, maxDim)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				srgbDecode(float64(r)/0xffff),
				srgbDecode(float64(g)/0xffff),
				srgbDecode(float64(b)/0xffff),
			)
		}
	}

	return material.NewImageTexture(width, height, pixels), nil
}

// downsample bilinearly scales img down via golang.org/x/image/draw so that
// neither dimension exceeds maxDim, preserving aspect ratio. Used when
// a mesh's UV density is coarser than the source texture, so full
// resolution would only cost memory and cache misses without adding
// visible detail.
func downsample(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxDim && height <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(width)
	if h := float64(maxDim) / float64(height); h < scale {
		scale = h
	}
	dstWidth := int(float64(width)*scale + 0.5)
	dstHeight := int(float64(height)*scale + 0.5)
	if dstWidth < 1 {
		dstWidth = 1
	}
	if dstHeight < 1 {
		dstHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
