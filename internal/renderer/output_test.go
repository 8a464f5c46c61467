package renderer

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlicht/spectra/internal/core"
)

func TestToneMapToRGBA_BlackInputIsBlackOutput(t *testing.T) {
	pixels := make([]core.XyzE, 4)
	img := ToneMapToRGBA(pixels, 2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := img.RGBAAt(x, y)
			assert.Equal(t, uint8(0), c.R)
			assert.Equal(t, uint8(0), c.G)
			assert.Equal(t, uint8(0), c.B)
			assert.Equal(t, uint8(255), c.A)
		}
	}
}

func TestToneMapToRGBA_FlipsVertically(t *testing.T) {
	// Row 0 (bottom, camera convention) is bright; row 1 (top) is dark.
	pixels := []core.XyzE{
		core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), // y=0 (bottom)
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), // y=1 (top)
	}
	img := ToneMapToRGBA(pixels, 2, 2)

	// PNG row 0 (top) should show the source's y=1 (dark) row.
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).R)
	// PNG row 1 (bottom) should show the source's y=0 (bright) row.
	assert.Greater(t, img.RGBAAt(0, 1).R, uint8(0))
}

func TestSRGBEncode_IsMonotonic(t *testing.T) {
	prev := 0.0
	for c := 0.0; c <= 1.0; c += 0.05 {
		v := sRGBEncode(c)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestWritePNG_ProducesDecodablePNG(t *testing.T) {
	img := ToneMapToRGBA([]core.XyzE{{}, {}, {}, {}}, 2, 2)
	var buf bytes.Buffer
	assert.NoError(t, WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 2, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())
}
