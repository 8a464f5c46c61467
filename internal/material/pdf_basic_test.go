package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlicht/spectra/internal/core"
)

func TestNewONB_BuildsOrthonormalBasis(t *testing.T) {
	b := newONB(core.NewVec3(0, 0, 1))
	assert.InDelta(t, 1, b.u.Length(), 1e-9)
	assert.InDelta(t, 1, b.v.Length(), 1e-9)
	assert.InDelta(t, 1, b.w.Length(), 1e-9)
	assert.InDelta(t, 0, b.u.Dot(b.v), 1e-9)
	assert.InDelta(t, 0, b.v.Dot(b.w), 1e-9)
	assert.InDelta(t, 0, b.u.Dot(b.w), 1e-9)
}

func TestRandomUnitVector_AlwaysUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		v := randomUnitVector(random)
		assert.InDelta(t, 1.0, v.Length(), 1e-9)
	}
}

func TestRandomInUnitSphere_StaysWithinRadiusOne(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		v := randomInUnitSphere(random)
		assert.Less(t, v.LengthSquared(), 1.0)
	}
}

func TestRandomInUnitDisk_StaysWithinRadiusOne(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		p := randomInUnitDisk(random)
		assert.LessOrEqual(t, p.X*p.X+p.Y*p.Y, 1.0+1e-9)
	}
}
