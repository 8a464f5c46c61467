package renderer

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/nordlicht/spectra/internal/core"
)

// bradfordEToD65 is the Bradford chromatic-adaptation matrix from
// whitepoint E (equal-energy) to D65, applied to rendered XYZ pixels
// before sRGB encoding. Values are the standard Bradford
// cone-response transform composed with the E->D65 scaling.
var bradfordEToD65 = [3][3]float64{
	{0.9531874, -0.0265906, 0.0238731},
	{-0.0382467, 1.0288406, 0.0094060},
	{0.0026068, -0.0030332, 1.0892565},
}

func adaptEToD65(xyz core.XyzE) core.XyzE {
	m := bradfordEToD65
	return core.NewVec3(
		m[0][0]*xyz.X+m[0][1]*xyz.Y+m[0][2]*xyz.Z,
		m[1][0]*xyz.X+m[1][1]*xyz.Y+m[1][2]*xyz.Z,
		m[2][0]*xyz.X+m[2][1]*xyz.Y+m[2][2]*xyz.Z,
	)
}

// xyzToLinearSRGB converts a CIE XYZ (D65) color to linear sRGB
// primaries via the standard IEC 61966-2-1 matrix.
func xyzToLinearSRGB(xyz core.XyzE) core.Vec3 {
	return core.NewVec3(
		3.2406*xyz.X-1.5372*xyz.Y-0.4986*xyz.Z,
		-0.9689*xyz.X+1.8758*xyz.Y+0.0415*xyz.Z,
		0.0557*xyz.X-0.2040*xyz.Y+1.0570*xyz.Z,
	)
}

// sRGBEncode applies the sRGB opto-electronic transfer function to a
// single linear channel already in [0,1].
func sRGBEncode(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// ToneMapToRGBA converts a whitepoint-E XYZ pixel buffer to an 8-bit
// sRGB image, applying the E->D65 chromatic adaptation and a vertical
// flip (the camera integrates bottom-left-origin, PNG is top-left).
func ToneMapToRGBA(pixels []core.XyzE, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcY := height - 1 - y // vertical flip
		for x := 0; x < width; x++ {
			xyz := adaptEToD65(pixels[srcY*width+x])
			linear := xyzToLinearSRGB(xyz).ClampMin0()

			r := sRGBEncode(math.Min(1, linear.X))
			g := sRGBEncode(math.Min(1, linear.Y))
			b := sRGBEncode(math.Min(1, linear.Z))

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255*r + 0.5),
				G: uint8(255*g + 0.5),
				B: uint8(255*b + 0.5),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes an RGBA image as PNG to w.
func WritePNG(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}
