package loaders

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nordlicht/spectra/internal/core"
)

// parseColor decodes the background_color field: either a
// legacy [r,g,b] sRGB triple, or a tagged object with exactly one of
// hex, lin_srgb, srgb, xyz_e, xyz_d65, oklch. The result is always a
// whitepoint-E XYZ color, the representation scene.Scene.Background
// expects.
func parseColor(raw json.RawMessage) (core.XyzE, error) {
	if len(raw) == 0 {
		return core.XyzE{}, nil
	}

	var triple [3]float64
	if err := json.Unmarshal(raw, &triple); err == nil {
		return srgbToXyzE(triple), nil
	}

	// Decode into a field-presence map rather than a struct of zero-
	// valued triples: an explicit all-zero (black) triple is a valid
	// tagged color and must not be mistaken for an absent field.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return core.XyzE{}, fmt.Errorf("unrecognized color format: %w", err)
	}

	if v, ok := fields["hex"]; ok {
		var hex string
		if err := json.Unmarshal(v, &hex); err != nil {
			return core.XyzE{}, fmt.Errorf("invalid hex field: %w", err)
		}
		rgb, err := parseHex(hex)
		if err != nil {
			return core.XyzE{}, err
		}
		return srgbToXyzE(rgb), nil
	}
	if v, ok := fields["lin_srgb"]; ok {
		triple, err := decodeTriple(v)
		if err != nil {
			return core.XyzE{}, err
		}
		return xyzD65ToE(linearSRGBToXYZD65(vec3From3(triple[:]))), nil
	}
	if v, ok := fields["srgb"]; ok {
		triple, err := decodeTriple(v)
		if err != nil {
			return core.XyzE{}, err
		}
		return srgbToXyzE(triple), nil
	}
	if v, ok := fields["xyz_e"]; ok {
		triple, err := decodeTriple(v)
		if err != nil {
			return core.XyzE{}, err
		}
		return vec3From3(triple[:]), nil
	}
	if v, ok := fields["xyz_d65"]; ok {
		triple, err := decodeTriple(v)
		if err != nil {
			return core.XyzE{}, err
		}
		return xyzD65ToE(vec3From3(triple[:])), nil
	}
	if v, ok := fields["oklch"]; ok {
		triple, err := decodeTriple(v)
		if err != nil {
			return core.XyzE{}, err
		}
		return xyzD65ToE(oklchToXYZD65(triple)), nil
	}
	return core.XyzE{}, fmt.Errorf("color object has no recognized field (hex/lin_srgb/srgb/xyz_e/xyz_d65/oklch)")
}

func decodeTriple(raw json.RawMessage) ([3]float64, error) {
	var triple [3]float64
	if err := json.Unmarshal(raw, &triple); err != nil {
		return triple, fmt.Errorf("invalid color triple: %w", err)
	}
	return triple, nil
}

func vec3From3(a []float64) core.Vec3 { return core.NewVec3(a[0], a[1], a[2]) }

func parseHex(hex string) ([3]float64, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return [3]float64{}, fmt.Errorf("invalid hex color %q: expected 6 hex digits", hex)
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]float64{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		out[i] = float64(v) / 255.0
	}
	return out, nil
}

func srgbDecode(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func srgbToXyzE(srgb [3]float64) core.XyzE {
	linear := core.NewVec3(srgbDecode(srgb[0]), srgbDecode(srgb[1]), srgbDecode(srgb[2]))
	return xyzD65ToE(linearSRGBToXYZD65(linear))
}

// linearSRGBToXYZD65 is the standard IEC 61966-2-1 forward matrix.
func linearSRGBToXYZD65(linear core.Vec3) core.XyzE {
	return core.NewVec3(
		0.4124564*linear.X+0.3575761*linear.Y+0.1804375*linear.Z,
		0.2126729*linear.X+0.7151522*linear.Y+0.0721750*linear.Z,
		0.0193339*linear.X+0.1191920*linear.Y+0.9503041*linear.Z,
	)
}

// xyzD65ToE applies the inverse of the Bradford E->D65 matrix used by
// internal/renderer/output.go for the render-time E->D65 adaptation,
// so loader-parsed colors round-trip through the same whitepoint
// convention the renderer assumes internally.
func xyzD65ToE(xyz core.XyzE) core.XyzE {
	// Inverse of renderer.bradfordEToD65 (E->D65), i.e. D65->E.
	m := [3][3]float64{
		{1.0502616, 0.0270757, -0.0232523},
		{0.0390650, 0.9729502, -0.0092579},
		{-0.0024047, 0.0026446, 0.9180873},
	}
	return core.NewVec3(
		m[0][0]*xyz.X+m[0][1]*xyz.Y+m[0][2]*xyz.Z,
		m[1][0]*xyz.X+m[1][1]*xyz.Y+m[1][2]*xyz.Z,
		m[2][0]*xyz.X+m[2][1]*xyz.Y+m[2][2]*xyz.Z,
	)
}

// oklchToXYZD65 converts an OKLCH(L,C,H-degrees) color to CIE XYZ
// (D65), following Björn Ottosson's published Oklab formulas.
func oklchToXYZD65(lch [3]float64) core.XyzE {
	l, c, h := lch[0], lch[1], lch[2]*math.Pi/180
	a := c * math.Cos(h)
	b := c * math.Sin(h)

	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l3 := l_ * l_ * l_
	m3 := m_ * m_ * m_
	s3 := s_ * s_ * s_

	x := 1.2270138511*l3 - 0.5577999807*m3 + 0.2812561490*s3
	y := -0.0405801784*l3 + 1.1122568696*m3 - 0.0716766787*s3
	z := -0.0763812845*l3 - 0.4214819784*m3 + 1.5861632204*s3

	return core.NewVec3(x, y, z)
}
