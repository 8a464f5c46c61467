package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_NewOrdersBounds(t *testing.T) {
	iv := NewInterval(5, 1)
	assert.Equal(t, 1.0, iv.Min)
	assert.Equal(t, 5.0, iv.Max)
}

func TestInterval_Expand(t *testing.T) {
	iv := NewInterval(0, 10)
	expanded := iv.Expand(2)
	assert.Equal(t, -2.0, expanded.Min)
	assert.Equal(t, 12.0, expanded.Max)
	// Expanding by delta on both ends grows the size by exactly 2*delta.
	assert.InDelta(t, iv.Size()+4, expanded.Size(), 1e-12)
}

func TestInterval_Union(t *testing.T) {
	a := NewInterval(0, 5)
	b := NewInterval(3, 10)
	u := a.Union(b)
	assert.Equal(t, 0.0, u.Min)
	assert.Equal(t, 10.0, u.Max)
}

func TestInterval_Contains(t *testing.T) {
	iv := NewInterval(0, 1)
	assert.True(t, iv.Contains(0))
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(0.5))
	assert.False(t, iv.Contains(-0.01))
	assert.False(t, iv.Contains(1.01))
}

func TestInterval_NonDegeneratePadsZeroSize(t *testing.T) {
	iv := NewInterval(5, 5)
	padded := iv.nonDegenerate()
	assert.True(t, padded.Size() >= minIntervalThickness)
	assert.InDelta(t, 5, padded.Center(), 1e-12)
}
