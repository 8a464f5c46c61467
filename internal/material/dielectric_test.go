package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlicht/spectra/internal/core"
)

func TestDielectric_ScatterIsSpecularWithWhiteAttenuation(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	rayIn := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), 0, 550)

	record, ok := glass.Scatter(rayIn, hit, rand.New(rand.NewSource(1)))
	assert.True(t, ok)
	assert.True(t, record.Specular)
	assert.Equal(t, core.NewVec3(1, 1, 1), record.Attenuation)
}

func TestDielectric_IsNotWavelengthDependentButDispersiveIs(t *testing.T) {
	assert.False(t, NewDielectric(1.5).IsWavelengthDependent())
	assert.True(t, NewDispersive(1.5, 0.01).IsWavelengthDependent())
}

func TestDispersive_RefractiveIndexVariesWithWavelength(t *testing.T) {
	glass := NewDispersive(1.5, 0.01)
	shortWave := glass.refractiveIndexAt(400)
	longWave := glass.refractiveIndexAt(700)
	// Cauchy dispersion: shorter wavelengths bend more (higher n).
	assert.Greater(t, shortWave, longWave)
}

func TestReflectance_IsOneAtGrazingAngle(t *testing.T) {
	// At cosTheta = 0 (grazing incidence) Schlick reflectance is 1, full
	// reflection regardless of refractionRatio.
	assert.InDelta(t, 1.0, reflectance(0, 1.0/1.5), 1e-9)
}

func TestReflectance_EqualsR0AtNormalIncidence(t *testing.T) {
	refractionRatio := 1.0 / 1.5
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	assert.InDelta(t, r0, reflectance(1, refractionRatio), 1e-9)
}
